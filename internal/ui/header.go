package ui

import (
	"fmt"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "One piece of content, every platform",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, optional version details in dev mode,
// the tagline and an optional subtitle.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Contentply")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader is only called by Dialog. Forms get their header by
// being wrapped with NewDialog.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle)
}

// renderCredits renders the "N credits left" line shown under the header
func renderCredits(snapshot domain.QuotaSnapshot, mockMode bool) string {
	line := theme.CreditsStyle(snapshot.Remaining).
		Render(fmt.Sprintf("%d/%d credits left this month", snapshot.Remaining, snapshot.Total))
	if mockMode {
		line += theme.MutedStyle.Render("  (demo mode: no webhook configured)")
	}
	return line
}
