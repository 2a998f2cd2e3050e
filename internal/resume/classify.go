package resume

import "strings"

// categoryRule maps a category to the keywords that select it. Rules are
// checked in declaration order; the first containment match wins.
type categoryRule struct {
	category Category
	keywords []string
}

// classificationRules is the declarative dispatch table for section titles.
var classificationRules = []categoryRule{
	{CategoryEducation, []string{"education", "academic"}},
	{CategoryExperience, []string{"experience", "employment", "work"}},
	{CategorySkills, []string{"skill"}},
	{CategoryProjects, []string{"project"}},
	{CategoryCourses, []string{"course", "certificat"}},
}

// Classify maps a section title to its canonical category by
// case-insensitive keyword containment. Unmatched titles are Other.
func Classify(title string) Category {
	lower := strings.ToLower(title)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Order returns the document's sections re-sorted into canonical order:
// Education, Experience, Skills, Projects, Courses, then Other sections in
// their original relative order. The sort is stable within a category, and
// the operation is idempotent.
func Order(sections []Section) []Section {
	ordered := make([]Section, 0, len(sections))
	for _, want := range []Category{
		CategoryEducation,
		CategoryExperience,
		CategorySkills,
		CategoryProjects,
		CategoryCourses,
		CategoryOther,
	} {
		for _, s := range sections {
			if s.Category == want {
				ordered = append(ordered, s)
			}
		}
	}
	return ordered
}
