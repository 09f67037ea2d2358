// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS() wraps the real OS filesystem for production use.
//   - NewAferoFS(fs) adapts any afero.Fs; NewMemory() is the common
//     in-memory variant for tests.
package filesystem
