// Package types holds the data model shared across the pipeline: the
// tagged spec-node variant, the flattened directory map, the filesystem
// interface and the run result.
package types
