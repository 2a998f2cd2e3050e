package layout

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resumekit/go-resume2pdf/internal/assets"
	"github.com/resumekit/go-resume2pdf/internal/markup"
	"github.com/resumekit/go-resume2pdf/internal/resume"
	"github.com/resumekit/go-resume2pdf/internal/sizing"
)

// Builder renders a classified document into a standalone HTML page.
type Builder struct {
	tmpl *template.Template
	tr   *markup.Translator
}

// NewBuilder creates a Builder with the embedded résumé template.
// Panics if the embedded template cannot be loaded or parsed (programmer
// error, caught by tests).
func NewBuilder() *Builder {
	content, err := assets.LoadTemplate("resume")
	if err != nil {
		panic("layout: loading resume template: " + err.Error())
	}
	tmpl, err := template.New("resume").Parse(content)
	if err != nil {
		panic("layout: parsing resume template: " + err.Error())
	}
	return &Builder{tmpl: tmpl, tr: markup.NewTranslator()}
}

// View types handed to the template. Text-bearing fields are pre-translated
// HTML; plain fields are escaped by the template engine.
type headerView struct {
	Name     string
	Title    template.HTML
	Contacts []template.HTML
}

type entryView struct {
	Title   template.HTML
	Role    template.HTML
	Meta    template.HTML
	Bullets []template.HTML
}

type sectionView struct {
	Title   string
	Flat    bool // Skills sections render as flat lines, no bullet blocks
	Entries []entryView
}

type docView struct {
	Header   headerView
	Sections []sectionView
	CSS      template.CSS
}

// Build renders the document with the given sizing parameters and theme.
// Sections with zero entries are skipped entirely. Sections must already be
// in canonical order; Build does not reorder.
func (b *Builder) Build(doc *resume.Document, params sizing.Parameters, theme Theme) (string, error) {
	view, err := b.buildView(doc, params, theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("executing resume template: %w", err)
	}
	return buf.String(), nil
}

func (b *Builder) buildView(doc *resume.Document, params sizing.Parameters, theme Theme) (*docView, error) {
	view := &docView{CSS: template.CSS(BuildCSS(params, theme))}

	view.Header.Name = doc.Header.Name
	title, err := b.inline(doc.Header.Title)
	if err != nil {
		return nil, err
	}
	view.Header.Title = title

	for _, c := range doc.Header.Contacts {
		frag, err := b.inline(c.Text)
		if err != nil {
			return nil, err
		}
		view.Header.Contacts = append(view.Header.Contacts, frag)
	}

	for _, s := range doc.Sections {
		if s.Empty() {
			continue // never render an empty heading
		}
		sv := sectionView{
			Title: displayTitle(s),
			Flat:  s.Category == resume.CategorySkills,
		}
		for _, e := range s.Entries {
			ev, err := b.buildEntry(e)
			if err != nil {
				return nil, err
			}
			sv.Entries = append(sv.Entries, ev)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view, nil
}

func (b *Builder) buildEntry(e resume.Entry) (entryView, error) {
	var ev entryView
	var err error

	if ev.Title, err = b.inline(e.TitleLine); err != nil {
		return ev, err
	}
	if ev.Role, err = b.inline(e.RoleLine); err != nil {
		return ev, err
	}
	if ev.Meta, err = b.inline(e.MetaLine); err != nil {
		return ev, err
	}
	for _, bullet := range e.Bullets {
		h, err := b.inline(bullet)
		if err != nil {
			return ev, err
		}
		ev.Bullets = append(ev.Bullets, h)
	}
	return ev, nil
}

// inline translates one text fragment to trusted HTML.
func (b *Builder) inline(text string) (template.HTML, error) {
	h, err := b.tr.Inline(text)
	if err != nil {
		return "", err
	}
	return template.HTML(h), nil // #nosec G203 -- goldmark escapes raw HTML in the source text
}

// displayTitle picks the canonical category name for recognized sections
// and keeps the author's own heading for Other sections.
func displayTitle(s resume.Section) string {
	if s.Category == resume.CategoryOther {
		return s.Title
	}
	return s.Category.String()
}
