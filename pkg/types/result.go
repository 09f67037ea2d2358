package types

// CreateResult reports what a materialization run touched. Skip counts
// cover both pre-existing targets and per-entry failures, which are logged
// but never fatal.
type CreateResult struct {
	Root         string
	DirsCreated  []string
	FilesCreated []string
	DirsSkipped  int
	FilesSkipped int

	// Plan is the fully flattened, resolved directory map the run was (or
	// would be) materialized from.
	Plan *DirMap

	// DryRun is true when no filesystem writes were attempted.
	DryRun bool
}
