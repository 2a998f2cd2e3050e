package resume

import (
	"errors"
	"testing"
)

// sampleResume mirrors the shape of real input documents: header block,
// horizontal rules, mixed entry styles, skills lines, linked project titles.
const sampleResume = `# John Doe
**Senior Software Engineer**

[john.doe@email.com](mailto:john.doe@email.com) | (555) 123-4567 | [linkedin.com/in/johndoe](https://linkedin.com/in/johndoe) | San Francisco, CA

---

## EDUCATION

**University of California, Berkeley** — *B.S. Computer Science*
Sep 2015 – May 2019 | Berkeley, CA

## WORK EXPERIENCE

**Tech Corp**
**Senior Software Engineer**
*Jan 2020 – present | San Francisco, CA*

- Led development of microservices architecture serving 10M+ users
- Improved system performance by 40% through optimization

## SKILLS

**Programming Languages:** Python, JavaScript, Go
**Frameworks:** Django, React

## PROJECTS

**[Project Alpha](https://github.com/johndoe/alpha)**
- Built scalable web application with React frontend

## COURSES

**Advanced Machine Learning** — Stanford Online
Jan 2023
`

func TestParse_Header(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if doc.Header.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", doc.Header.Name, "John Doe")
	}
	if doc.Header.Title != "Senior Software Engineer" {
		t.Errorf("Title = %q, want %q", doc.Header.Title, "Senior Software Engineer")
	}

	if len(doc.Header.Contacts) != 4 {
		t.Fatalf("got %d contact fragments, want 4", len(doc.Header.Contacts))
	}
	if doc.Header.Contacts[0].Href != "mailto:john.doe@email.com" {
		t.Errorf("Contacts[0].Href = %q", doc.Header.Contacts[0].Href)
	}
	if doc.Header.Contacts[1].Text != "(555) 123-4567" {
		t.Errorf("Contacts[1].Text = %q", doc.Header.Contacts[1].Text)
	}
	if doc.Header.Contacts[2].Href != "https://linkedin.com/in/johndoe" {
		t.Errorf("Contacts[2].Href = %q", doc.Header.Contacts[2].Href)
	}
	if doc.Header.Contacts[3].Href != "" {
		t.Errorf("Contacts[3].Href = %q, want empty for plain location", doc.Header.Contacts[3].Href)
	}
}

func TestParse_Sections(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(doc.Sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(doc.Sections))
	}

	wantCategories := []Category{
		CategoryEducation, CategoryExperience, CategorySkills, CategoryProjects, CategoryCourses,
	}
	for i, want := range wantCategories {
		if doc.Sections[i].Category != want {
			t.Errorf("Sections[%d].Category = %v, want %v", i, doc.Sections[i].Category, want)
		}
	}
}

func TestParse_ExperienceEntry(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	exp := doc.Sections[1]
	if len(exp.Entries) != 1 {
		t.Fatalf("got %d experience entries, want 1", len(exp.Entries))
	}

	e := exp.Entries[0]
	if e.TitleLine != "**Tech Corp**" {
		t.Errorf("TitleLine = %q", e.TitleLine)
	}
	if e.RoleLine != "Senior Software Engineer" {
		t.Errorf("RoleLine = %q, want the second bold line", e.RoleLine)
	}
	if e.MetaLine != "*Jan 2020 – present | San Francisco, CA*" {
		t.Errorf("MetaLine = %q", e.MetaLine)
	}
	if len(e.Bullets) != 2 {
		t.Fatalf("got %d bullets, want 2", len(e.Bullets))
	}
	if e.Bullets[0] != "Led development of microservices architecture serving 10M+ users" {
		t.Errorf("Bullets[0] = %q", e.Bullets[0])
	}
}

func TestParse_EducationPlainMetaLine(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	edu := doc.Sections[0]
	if len(edu.Entries) != 1 {
		t.Fatalf("got %d education entries, want 1", len(edu.Entries))
	}
	e := edu.Entries[0]
	if e.MetaLine != "Sep 2015 – May 2019 | Berkeley, CA" {
		t.Errorf("MetaLine = %q, want the plain date line", e.MetaLine)
	}
	if len(e.Bullets) != 0 {
		t.Errorf("education entry has %d bullets, want 0", len(e.Bullets))
	}
}

func TestParse_SkillsLinesAreOwnEntries(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	skills := doc.Sections[2]
	if len(skills.Entries) != 2 {
		t.Fatalf("got %d skills entries, want 2", len(skills.Entries))
	}
	for i, e := range skills.Entries {
		if len(e.Bullets) != 0 || e.MetaLine != "" || e.RoleLine != "" {
			t.Errorf("skills entry %d is not a flat line: %+v", i, e)
		}
	}
	if skills.Entries[0].TitleLine != "**Programming Languages:** Python, JavaScript, Go" {
		t.Errorf("skills entry 0 = %q", skills.Entries[0].TitleLine)
	}
}

func TestParse_ProjectLinkExtracted(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	proj := doc.Sections[3].Entries[0]
	if proj.Link != "https://github.com/johndoe/alpha" {
		t.Errorf("Link = %q, want the project URL preserved exactly", proj.Link)
	}
}

func TestParse_HorizontalRulesDropped(t *testing.T) {
	t.Parallel()

	input := "# Jane\n---\n## Skills\n---\nGo\n---\n"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(doc.Sections))
	}
	if got := len(doc.Sections[0].Entries); got != 1 {
		t.Errorf("got %d entries, want 1 (rules must produce no content)", got)
	}
}

func TestParse_BlankLineSeparatesEntries(t *testing.T) {
	t.Parallel()

	input := `# Jane
## Experience
**Acme**

**Globex**
`
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := doc.Sections[0].Entries
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (blank line closes the entry)", len(entries))
	}
	if entries[1].TitleLine != "**Globex**" {
		t.Errorf("second entry = %q", entries[1].TitleLine)
	}
}

func TestParse_ConsecutiveBoldIsRole(t *testing.T) {
	t.Parallel()

	input := `# Jane
## Experience
**Acme**
**Staff Engineer**
`
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := doc.Sections[0].Entries
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].RoleLine != "Staff Engineer" {
		t.Errorf("RoleLine = %q", entries[0].RoleLine)
	}
}

func TestParse_EmptySectionRetained(t *testing.T) {
	t.Parallel()

	input := "# Jane\n## Education\n## Skills\nGo\n"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections, want 2 (empty section kept, dropped at render)", len(doc.Sections))
	}
	if !doc.Sections[0].Empty() {
		t.Errorf("education section should be empty")
	}
}

func TestParse_NoTopLevelHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "plain text", input: "just some text\nwith lines\n"},
		{name: "only sections", input: "## Experience\n**Acme**\n"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("Parse() error = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestParse_CRLFInput(t *testing.T) {
	t.Parallel()

	input := "# Jane\r\n## Skills\r\nGo, Rust\r\n"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Header.Name != "Jane" {
		t.Errorf("Name = %q", doc.Header.Name)
	}
	if len(doc.Sections[0].Entries) != 1 {
		t.Errorf("got %d entries", len(doc.Sections[0].Entries))
	}
}

func TestParse_BulletWithoutEntry(t *testing.T) {
	t.Parallel()

	input := "# Jane\n## Experience\n- stray bullet\n"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := doc.Sections[0].Entries
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].TitleLine != "stray bullet" {
		t.Errorf("TitleLine = %q, want bullet promoted to plain entry", entries[0].TitleLine)
	}
}

func TestParse_NoBoldTitleGoesStraightToContact(t *testing.T) {
	t.Parallel()

	input := "# Jane\njane@example.com | Lisbon\n## Skills\nGo\n"
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Header.Title != "" {
		t.Errorf("Title = %q, want empty", doc.Header.Title)
	}
	if len(doc.Header.Contacts) != 2 {
		t.Errorf("got %d contacts, want 2", len(doc.Header.Contacts))
	}
}
