package resume

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedDocument indicates the input has no top-level heading to use
// as the person's name. Nothing is rendered for such input.
var ErrMalformedDocument = errors.New("malformed document: no top-level heading found")

// Precompiled line patterns.
var (
	crlfOrCR      = regexp.MustCompile(`\r\n?`)
	horizontalBar = regexp.MustCompile(`^\s*-{3,}\s*$`)
	bulletLine    = regexp.MustCompile(`^[-*]\s+`)
	fullyBold     = regexp.MustCompile(`^\*\*([^*].*?)\*\*$`)
	fullyItalic   = regexp.MustCompile(`^(\*[^*].*\*|_[^_].*_)$`)
	linkSpan      = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	boldLinkTitle = regexp.MustCompile(`^\*\*\[([^\]]+)\]\(([^)\s]+)\)\*\*$`)
)

// parseState tracks progress through the header block. The body is handled
// by explicit section/entry accumulators below.
type parseState int

const (
	awaitingName parseState = iota
	awaitingTitle
	awaitingContact
	inBody
)

// Parse converts raw Markdown text into a Document.
//
// The dialect is line-oriented: the first `#` heading is the name, the bold
// line after it the professional title, the next non-empty line the contact
// line (split on `|`). Each `##` heading opens a section. Within a section,
// a bold-led line starts an entry, an italic (or first plain) line becomes
// its meta line, and `-`/`*` list markers append bullets. Blank lines close
// the open entry; horizontal rules are dropped entirely.
func Parse(raw string) (*Document, error) {
	doc := &Document{}
	state := awaitingName

	var section *Section
	closeSection := func() {
		if section != nil {
			doc.Sections = append(doc.Sections, *section)
			section = nil
		}
	}

	// Index of the open entry within section.Entries, -1 when none.
	openEntry := -1

	for _, line := range splitLines(raw) {
		line = strings.TrimSpace(line)

		if horizontalBar.MatchString(line) {
			continue // structural separator, never content
		}

		// Section headings are recognized in every state: a document whose
		// header block is truncated still yields its sections.
		if strings.HasPrefix(line, "## ") {
			closeSection()
			title := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			section = &Section{Title: title, Category: Classify(title)}
			openEntry = -1
			if state != awaitingName {
				state = inBody
			}
			continue
		}

		switch state {
		case awaitingName:
			if name, ok := cutHeading(line); ok {
				doc.Header.Name = name
				state = awaitingTitle
			}
			// Anything before the name line is ignored.

		case awaitingTitle:
			if line == "" {
				continue
			}
			if m := fullyBold.FindStringSubmatch(line); m != nil {
				doc.Header.Title = m[1]
				state = awaitingContact
				continue
			}
			// No bold title; this line is already the contact line.
			doc.Header.Contacts = parseContacts(line)
			state = inBody

		case awaitingContact:
			if line == "" {
				continue
			}
			doc.Header.Contacts = parseContacts(line)
			state = inBody

		case inBody:
			if section == nil {
				continue // stray content between header and first section
			}
			if line == "" {
				openEntry = -1 // blank line separates entries
				continue
			}
			openEntry = section.consume(line, openEntry)
		}
	}
	closeSection()

	if doc.Header.Name == "" {
		return nil, ErrMalformedDocument
	}
	return doc, nil
}

// consume folds one content line into the section and returns the index of
// the entry left open, or -1.
func (s *Section) consume(line string, open int) int {
	// Skills sections render as flat lines: every line is its own entry.
	if s.Category == CategorySkills {
		s.Entries = append(s.Entries, Entry{TitleLine: line})
		return -1
	}

	switch {
	case bulletLine.MatchString(line):
		text := strings.TrimSpace(bulletLine.ReplaceAllString(line, ""))
		if open >= 0 {
			s.Entries[open].Bullets = append(s.Entries[open].Bullets, text)
			return open
		}
		// Bullet with no open entry: promote it to a plain entry so the
		// title-line invariant holds.
		s.Entries = append(s.Entries, Entry{TitleLine: text})
		return len(s.Entries) - 1

	case strings.HasPrefix(line, "**"):
		// A fully bold line directly under a fresh entry is the job title
		// under a company name; anything else starts a new entry.
		if open >= 0 && fullyBold.MatchString(line) {
			e := &s.Entries[open]
			if e.RoleLine == "" && e.MetaLine == "" && len(e.Bullets) == 0 {
				e.RoleLine = fullyBold.FindStringSubmatch(line)[1]
				return open
			}
		}
		return s.openEntry(line)

	case fullyItalic.MatchString(line):
		if open >= 0 && s.Entries[open].MetaLine == "" {
			s.Entries[open].MetaLine = line
			return open
		}
		return s.openEntry(line)

	default:
		// Plain line: dates/location for the open entry, else its own entry.
		if open >= 0 && s.Entries[open].MetaLine == "" && len(s.Entries[open].Bullets) == 0 {
			s.Entries[open].MetaLine = line
			return open
		}
		return s.openEntry(line)
	}
}

// openEntry appends a new entry for a title line and returns its index.
func (s *Section) openEntry(line string) int {
	e := Entry{TitleLine: line}
	if m := boldLinkTitle.FindStringSubmatch(line); m != nil {
		e.Link = m[2]
	}
	s.Entries = append(s.Entries, e)
	return len(s.Entries) - 1
}

// cutHeading returns the text of a top-level heading line.
func cutHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "# ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "# ")), true
}

// parseContacts splits the contact line on `|` and resolves link fragments.
func parseContacts(line string) []ContactFragment {
	parts := strings.Split(line, "|")
	frags := make([]ContactFragment, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		frag := ContactFragment{Text: p}
		if m := linkSpan.FindStringSubmatch(p); m != nil {
			frag.Href = m[2]
		}
		frags = append(frags, frag)
	}
	return frags
}

// splitLines normalizes line endings and splits on newlines.
func splitLines(raw string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(raw, "\n"), "\n")
}
