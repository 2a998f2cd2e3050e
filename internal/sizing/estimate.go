// Package sizing estimates rendered content volume and resolves it into the
// typography and spacing parameters used by the layout builder. Estimation
// is a one-shot heuristic over character counts; there is no measurement
// feedback from the rendered output.
package sizing

import (
	"regexp"
	"unicode/utf8"

	"github.com/resumekit/go-resume2pdf/internal/resume"
)

// bulletWeight inflates bullet text slightly: bullets usually wrap to more
// visual lines than title or meta text of the same length.
const bulletWeight = 1.15

// headerVolume is the fixed contribution of the name/title/contact banner,
// which occupies the same space regardless of its text length.
const headerVolume = 120

// inlineMarkers matches the Markdown syntax characters excluded from the
// character count, so `**Go**` and `Go` weigh the same.
var inlineMarkers = regexp.MustCompile("[#*_`\\[\\]()]")

var collapseSpace = regexp.MustCompile(`\s+`)

// Estimate returns a non-negative scalar approximating the total rendered
// character volume of the document. Deterministic and pure.
func Estimate(doc *resume.Document) int {
	total := float64(headerVolume)
	for _, s := range doc.Sections {
		for _, e := range s.Entries {
			total += float64(plainLength(e.TitleLine))
			total += float64(plainLength(e.RoleLine))
			total += float64(plainLength(e.MetaLine))
			for _, b := range e.Bullets {
				total += float64(plainLength(b)) * bulletWeight
			}
		}
	}
	return int(total)
}

// plainLength counts the runes of text with inline markers stripped and
// whitespace runs collapsed.
func plainLength(text string) int {
	if text == "" {
		return 0
	}
	stripped := inlineMarkers.ReplaceAllString(text, "")
	stripped = collapseSpace.ReplaceAllString(stripped, " ")
	return utf8.RuneCountInString(stripped)
}
