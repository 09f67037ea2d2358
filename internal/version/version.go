package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/treeforge/treeforge/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/treeforge/treeforge/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/treeforge/treeforge/internal/version.Date={{.Date}}
)
