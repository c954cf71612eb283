package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/globber/pkg/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/globber/pkg/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/globber/pkg/version.Date={{.Date}}
)
