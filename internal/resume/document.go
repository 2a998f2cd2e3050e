// Package resume parses the constrained Markdown résumé dialect into a
// structured document model and classifies sections into canonical
// categories.
package resume

// Category is the canonical section category used for ordering and styling.
type Category int

// Canonical categories, in render order.
const (
	CategoryEducation Category = iota
	CategoryExperience
	CategorySkills
	CategoryProjects
	CategoryCourses
	CategoryOther
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryEducation:
		return "Education"
	case CategoryExperience:
		return "Experience"
	case CategorySkills:
		return "Skills"
	case CategoryProjects:
		return "Projects"
	case CategoryCourses:
		return "Courses"
	default:
		return "Other"
	}
}

// ContactFragment is one pipe-separated token of the header contact line.
// Order is preserved from the source.
type ContactFragment struct {
	Text string // raw text, may still contain inline markup
	Href string // non-empty if the fragment is a Markdown link
}

// Header holds the name/title/contact banner block.
type Header struct {
	Name     string
	Title    string // raw text of the bold line following the name, markers stripped by rendering
	Contacts []ContactFragment
}

// Entry is one item within a section: a job, a degree, a project, a course,
// or a single skills line.
type Entry struct {
	TitleLine string   // always present; raw text with inline markup
	RoleLine  string   // optional second bold line (job title under a company)
	MetaLine  string   // optional dates/location line
	Bullets   []string // may be empty
	Link      string   // optional URL attached to the title (e.g. project link)
}

// Section is a named block of entries.
type Section struct {
	Title    string
	Category Category
	Entries  []Entry
}

// Empty reports whether the section has no entries.
func (s Section) Empty() bool { return len(s.Entries) == 0 }

// Document is the parsed résumé. It is built once by Parse and never
// mutated afterwards; Order returns a reordered copy of the section list.
type Document struct {
	Header   Header
	Sections []Section
}
