package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/tikotako/takonsole/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/tikotako/takonsole/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/tikotako/takonsole/internal/version.Date={{.Date}}
)
