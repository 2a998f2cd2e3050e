package layout

import (
	"fmt"
	"strings"

	"github.com/resumekit/go-resume2pdf/internal/sizing"
)

// Theme is the immutable styling configuration threaded through a render.
type Theme struct {
	// BannerColor is a "#RRGGBB" hex value or "white". Validated before it
	// reaches this package.
	BannerColor string
	Fonts       FontScheme
}

// WhiteBanner reports whether the banner is unstyled (white with dark text)
// rather than a solid color with light text.
func (t Theme) WhiteBanner() bool {
	return strings.EqualFold(t.BannerColor, "white")
}

// Fixed palette shared by both banner variants.
const (
	textColor   = "#0b0f19"
	mutedColor  = "#4a5568"
	accentColor = "#2f6ceb"
	ruleColor   = "#e5e7eb"
	codeBgColor = "#f5f6f8"
)

// Light link tint for readable underlined links on a solid banner.
const bannerLinkTint = "#dce6ff"

// BuildCSS renders the full stylesheet for one document. Every spacing site
// reads from the resolved Parameters so one-page mode tightens whitespace
// everywhere, not just font sizes. Sizes are emitted with two decimals to
// keep adjacent tiers distinct.
func BuildCSS(p sizing.Parameters, theme Theme) string {
	bannerBG := theme.BannerColor
	bannerFG := "#ffffff"
	bannerLink := bannerLinkTint
	if theme.WhiteBanner() {
		bannerBG = "#ffffff"
		bannerFG = textColor
		bannerLink = accentColor
	}

	var b strings.Builder

	fmt.Fprintf(&b, `body {
  font-family: %s;
  font-size: %.2fpt;
  line-height: 1.25;
  color: %s;
  margin: 0;
  background: #ffffff;
}
`, theme.Fonts.Body, p.BaseFontSize, textColor)

	fmt.Fprintf(&b, `.banner {
  background: %s;
  color: %s;
  text-align: center;
  padding: %.2fpt 14pt %.2fpt 14pt;
  margin-bottom: %.2fpt;
}
.banner h1 {
  font-family: %s;
  font-size: %.2fpt;
  margin: 0;
  letter-spacing: 0.5pt;
}
.banner .role {
  font-size: %.2fpt;
  font-style: italic;
  margin: %.2fpt 0 0 0;
}
.banner .contact {
  font-size: %.2fpt;
  margin: %.2fpt 0 0 0;
}
.banner .sep {
  margin: 0 4pt;
  opacity: 0.7;
}
.banner a {
  color: %s;
  text-decoration: underline;
}
`, bannerBG, bannerFG,
		p.HeaderPaddingTop, p.HeaderPaddingBottom, p.ItemSpacing,
		theme.Fonts.Heading, p.NameFontSize,
		p.BaseFontSize, p.BulletSpacing,
		p.MetaFontSize(), p.BulletSpacing,
		bannerLink)

	fmt.Fprintf(&b, `h2 {
  font-family: %s;
  font-size: %.2fpt;
  text-transform: uppercase;
  letter-spacing: 0.5pt;
  border-bottom: 1pt solid %s;
  padding-bottom: 2pt;
  margin: %.2fpt 0 %.2fpt 0;
}
section {
  margin-bottom: %.2fpt;
}
`, theme.Fonts.Heading, p.SectionHeaderFontSize, ruleColor,
		p.ItemSpacing*1.5, p.ItemSpacing*0.75, p.ItemSpacing)

	fmt.Fprintf(&b, `.entry {
  margin-bottom: %.2fpt;
  break-inside: avoid;
  page-break-inside: avoid;
}
.entry-title {
  font-size: %.2fpt;
  font-weight: bold;
  margin: 0;
}
.entry-role {
  font-size: %.2fpt;
  font-weight: bold;
  font-style: italic;
  margin: 0;
}
.meta {
  font-size: %.2fpt;
  font-style: italic;
  color: %s;
  margin: 0 0 %.2fpt 0;
}
.skill {
  font-size: %.2fpt;
  margin: 0 0 %.2fpt 0;
}
`, p.ItemSpacing,
		p.BaseFontSize,
		p.EntryRoleFontSize(),
		p.MetaFontSize(), mutedColor, p.BulletSpacing,
		p.BaseFontSize, p.BulletSpacing)

	fmt.Fprintf(&b, `ul {
  margin: %.2fpt 0 %.2fpt 0;
  padding-left: 14pt;
}
li {
  font-size: %.2fpt;
  margin-bottom: %.2fpt;
}
a {
  color: %s;
  text-decoration: underline;
}
code {
  font-family: %s;
  font-size: %.2fpt;
  background: %s;
  padding: 0 2pt;
  border-radius: 2pt;
}
h2, .entry-title, .entry-role {
  break-after: avoid;
  page-break-after: avoid;
}
`, p.BulletSpacing, p.ItemSpacing,
		p.BaseFontSize, p.BulletSpacing,
		accentColor,
		theme.Fonts.Mono, p.BaseFontSize-1, codeBgColor)

	return b.String()
}
