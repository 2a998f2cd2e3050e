package sizing

// Mode selects the pagination target.
type Mode int

const (
	// ModeMultiPage renders at full size across as many pages as needed.
	ModeMultiPage Mode = iota
	// ModeOnePage compresses typography and spacing to fit a single page.
	ModeOnePage
)

// Font size offsets held constant across every tier. Section headings are
// always more prominent than entry titles; entry roles and meta lines sit
// just under the base size.
const (
	sectionHeaderOffset = 2.0
	entryRoleOffset     = 1.0
	metaOffset          = 1.5
)

// Parameters is the resolved typography/spacing set for one render. Values
// are points except MarginInches, and are kept as unrounded floats so that
// adjacent tiers stay distinct. Parameters is a value object: produced once
// per render, read-only afterwards.
type Parameters struct {
	BaseFontSize          float64
	NameFontSize          float64
	SectionHeaderFontSize float64
	MarginInches          float64
	HeaderPaddingTop      float64
	HeaderPaddingBottom   float64
	ItemSpacing           float64
	BulletSpacing         float64
	ScaleFactor           float64
}

// EntryRoleFontSize is the size of job-title lines: one point under base.
func (p Parameters) EntryRoleFontSize() float64 { return p.BaseFontSize - entryRoleOffset }

// MetaFontSize is the size of dates/location lines.
func (p Parameters) MetaFontSize() float64 { return p.BaseFontSize - metaOffset }

// tier is one volume bracket of the one-page step function.
type tier struct {
	maxVolume int     // inclusive upper bound; the last tier is unbounded
	scale     float64 // applied to the nominal one-page sizes
	nameSize  float64 // name size has its own step, not scaled from base
}

// onePageTiers is ordered by ascending volume. Scale decreases strictly so
// base size and spacing shrink monotonically; the last tier is the
// always-fits fallback, trading readability for fit.
var onePageTiers = []tier{
	{maxVolume: 2000, scale: 1.00, nameSize: 16},
	{maxVolume: 3000, scale: 0.92, nameSize: 15},
	{maxVolume: 4000, scale: 0.84, nameSize: 14},
	{maxVolume: 4500, scale: 0.74, nameSize: 13},
	{maxVolume: -1, scale: 0.65, nameSize: 12},
}

// Nominal one-page values at scale 1.0.
const (
	onePageBaseSize      = 10.5
	onePageHeaderPadding = 8.0
	onePageItemSpacing   = 4.0
	onePageBulletSpacing = 2.0
)

// Resolve maps a volume estimate and a pagination mode to concrete
// Parameters. Multi-page mode ignores the estimate entirely. Pure function,
// no measurement feedback.
func Resolve(volume int, mode Mode) Parameters {
	if mode == ModeMultiPage {
		return Parameters{
			BaseFontSize:          11,
			NameFontSize:          20,
			SectionHeaderFontSize: 11 + sectionHeaderOffset,
			MarginInches:          0.75,
			HeaderPaddingTop:      14,
			HeaderPaddingBottom:   14,
			ItemSpacing:           8,
			BulletSpacing:         4,
			ScaleFactor:           1,
		}
	}

	t := onePageTiers[len(onePageTiers)-1]
	for _, candidate := range onePageTiers {
		if candidate.maxVolume >= 0 && volume <= candidate.maxVolume {
			t = candidate
			break
		}
	}

	base := onePageBaseSize * t.scale
	return Parameters{
		BaseFontSize:          base,
		NameFontSize:          t.nameSize,
		SectionHeaderFontSize: base + sectionHeaderOffset,
		MarginInches:          0.25 + 0.15*t.scale,
		HeaderPaddingTop:      onePageHeaderPadding * t.scale,
		HeaderPaddingBottom:   onePageHeaderPadding * t.scale,
		ItemSpacing:           onePageItemSpacing * t.scale,
		BulletSpacing:         onePageBulletSpacing * t.scale,
		ScaleFactor:           t.scale,
	}
}
