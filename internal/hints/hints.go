// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/resumekit/go-resume2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors, depending
// on the selected engine. Detects CI/Docker environments and suggests the
// relevant environment variables.
func ForBrowserConnect(engine string) string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	switch engine {
	case "chromedp":
		if os.Getenv("CHROME_BIN") == "" {
			hints = append(hints, "set CHROME_BIN to an installed Chrome/Chromium, or use --engine rod to auto-download one")
		}
	default:
		if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
			hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
		}
		if os.Getenv("ROD_BROWSER_BIN") == "" {
			hints = append(hints, "set ROD_BROWSER_BIN to use a custom Chrome")
		}
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow renders.
func ForTimeout() string {
	return format("use --timeout to allow more time (e.g. --timeout 60s)")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/resume2pdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
