// Package buildinfo carries build identification for startup logging.
package buildinfo

// Stamped via -ldflags at build time:
//
//	-X 'github.com/WorldDarkMarket/telegram-bot-admin/internal/buildinfo.Version=v1.2.3'
//	-X 'github.com/WorldDarkMarket/telegram-bot-admin/internal/buildinfo.Commit=abcdef0'
//	-X 'github.com/WorldDarkMarket/telegram-bot-admin/internal/buildinfo.Date=2026-08-30T12:00:00Z'
//
// Default values are useful for local dev.
var (
	// Version reports the semantic version or tag of the build.
	Version = "dev"
	// Commit reports the source control commit used for the build.
	Commit = "local"
	// Date reports the build timestamp in RFC3339 format.
	Date = ""
)

// Short renders "version (commit)" for startup log lines. The commit is
// omitted when it still holds the local-dev default.
func Short() string {
	if Commit == "" || Commit == "local" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
