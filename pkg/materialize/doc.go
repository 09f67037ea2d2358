// Package materialize writes the flattened directory map to a filesystem.
//
// Every operation is independently best-effort: directory creation is
// idempotent and file creation is non-destructive, so the whole pipeline is
// safe to re-run against a partially built target tree. No rollback is
// attempted; conflicts and per-entry failures are logged and skipped.
package materialize
