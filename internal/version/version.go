package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/f0rgenet/flowpack/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/f0rgenet/flowpack/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/f0rgenet/flowpack/internal/version.Date={{.Date}}
)
