// Package layout assembles the classified document and the resolved sizing
// parameters into a styled HTML page ready for headless-Chrome printing.
package layout

import "strings"

// FontScheme is a named preset of CSS font stacks. Stacks stick to fonts
// shipped with every desktop OS so the printed PDF stays portable and
// ATS parsers see real text.
type FontScheme struct {
	Name    string
	Body    string
	Heading string
	Mono    string
}

// fontSchemes holds the selectable presets, keyed by lowercase name.
var fontSchemes = map[string]FontScheme{
	"modern": {
		Name:    "modern",
		Body:    "'Helvetica Neue', Helvetica, Arial, sans-serif",
		Heading: "'Helvetica Neue', Helvetica, Arial, sans-serif",
		Mono:    "Menlo, Consolas, 'Courier New', monospace",
	},
	"classic": {
		Name:    "classic",
		Body:    "Georgia, 'Times New Roman', serif",
		Heading: "Georgia, 'Times New Roman', serif",
		Mono:    "'Courier New', Courier, monospace",
	},
	"typewriter": {
		Name:    "typewriter",
		Body:    "'Courier New', Courier, monospace",
		Heading: "'Courier New', Courier, monospace",
		Mono:    "'Courier New', Courier, monospace",
	},
}

// FontSchemeByName resolves a scheme name case-insensitively.
func FontSchemeByName(name string) (FontScheme, bool) {
	s, ok := fontSchemes[strings.ToLower(name)]
	return s, ok
}

// FontSchemeNames lists the valid scheme names for error messages.
func FontSchemeNames() []string {
	return []string{"modern", "classic", "typewriter"}
}
