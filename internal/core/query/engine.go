// Package query is the read-only facade over one built catalog
//
// An Engine is constructed after the index build has returned and is never mutated,
// so any number of goroutines may call it without locking.
// Absence is reported with a false second result, never an error.
package query

import (
	"sort"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/indexer"
	"coursedex/internal/core/normalize"
)

// SubjectCount pairs a subject code with its offering count
type SubjectCount struct {
	Subject string `json:"subject" yaml:"subject"`
	Count   int    `json:"count" yaml:"count"`
}

// Conflict is one composite key claimed by several course codes
type Conflict struct {
	Key     catalog.Key `json:"key" yaml:"key"`
	Courses []string    `json:"courses" yaml:"courses"`
}

// Instructor groups every listing taught by one canonical instructor name
type Instructor struct {
	Name     string   `json:"name" yaml:"name"`
	Listings []string `json:"listings" yaml:"listings"`
}

// SubjectCourses lists the distinct course codes of one subject
type SubjectCourses struct {
	Subject string   `json:"subject" yaml:"subject"`
	Courses []string `json:"courses" yaml:"courses"`
}

// CourseTerms lists the distinct terms one course ran in
type CourseTerms struct {
	Course string   `json:"course" yaml:"course"`
	Terms  []string `json:"terms" yaml:"terms"`
}

// Totals summarizes catalog size
type Totals struct {
	Offerings int `json:"offerings" yaml:"offerings"`
	Subjects  int `json:"subjects" yaml:"subjects"`
	Conflicts int `json:"conflicts" yaml:"conflicts"`
}

// Engine answers lookups against a frozen primary table and its indices
type Engine struct {
	primary catalog.Primary
	idx     *indexer.Indices
}

// New wraps a built catalog; both arguments must be final
func New(primary catalog.Primary, idx *indexer.Indices) *Engine {
	if primary == nil {
		primary = catalog.Primary{}
	}
	if idx == nil {
		idx = &indexer.Indices{}
	}
	return &Engine{primary: primary, idx: idx}
}

// Lookup returns the offering stored under the exact composite key
func (e *Engine) Lookup(key catalog.Key) (catalog.Offering, bool) {
	o, ok := e.primary[key]
	return o, ok
}

// SubjectCount returns the offering count of a subject, zero when unknown
func (e *Engine) SubjectCount(subject string) int { return e.idx.SubjectCounts[subject] }

// CoursesByInstructor matches the instructor name after lowercasing it and
// uppercasing the first character. Distinct instructors whose names share
// that form are merged, so results may cover more than one person.
func (e *Engine) CoursesByInstructor(name string) ([]string, bool) {
	s, ok := e.idx.InstructorCourses[normalize.Instructor(name)]
	if !ok {
		return nil, false
	}
	return s.Sorted(), true
}

// TermsForCourse matches the course code after uppercasing it
func (e *Engine) TermsForCourse(code string) ([]string, bool) {
	s, ok := e.idx.CourseTerms[normalize.CourseCode(code)]
	if !ok {
		return nil, false
	}
	return s.Sorted(), true
}

// InvalidKeys dumps the conflict report ordered by key
func (e *Engine) InvalidKeys() []Conflict {
	keys := make([]catalog.Key, 0, len(e.idx.Conflicts))
	for k := range e.idx.Conflicts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]Conflict, 0, len(keys))
	for _, k := range keys {
		out = append(out, Conflict{Key: k, Courses: e.idx.Conflicts[k].Sorted()})
	}
	return out
}

// AllSubjectCounts returns every subject with its count, ascending by subject code
func (e *Engine) AllSubjectCounts() []SubjectCount {
	out := make([]SubjectCount, 0, len(e.idx.SubjectCounts))
	for _, s := range sortedKeys(e.idx.SubjectCounts) {
		out = append(out, SubjectCount{Subject: s, Count: e.idx.SubjectCounts[s]})
	}
	return out
}

// TotalValidCourses is the size of the primary table
func (e *Engine) TotalValidCourses() int { return len(e.primary) }

// TotalDistinctSubjects is the number of subjects with at least one offering
func (e *Engine) TotalDistinctSubjects() int { return len(e.idx.SubjectCounts) }

// Totals bundles the size figures shown on the totals report
func (e *Engine) Totals() Totals {
	return Totals{
		Offerings: e.TotalValidCourses(),
		Subjects:  e.TotalDistinctSubjects(),
		Conflicts: len(e.idx.Conflicts),
	}
}

// Offerings returns every stored offering ordered by composite key
func (e *Engine) Offerings() []catalog.Offering {
	keys := e.primary.Keys()
	out := make([]catalog.Offering, 0, len(keys))
	for _, k := range keys {
		out = append(out, e.primary[k])
	}
	return out
}

// Instructors returns every instructor with their listings, ordered by name
func (e *Engine) Instructors() []Instructor {
	out := make([]Instructor, 0, len(e.idx.InstructorCourses))
	for _, name := range sortedKeys(e.idx.InstructorCourses) {
		out = append(out, Instructor{Name: name, Listings: e.idx.InstructorCourses[name].Sorted()})
	}
	return out
}

// CoursesForSubject returns the distinct course codes of one subject
func (e *Engine) CoursesForSubject(subject string) ([]string, bool) {
	s, ok := e.idx.SubjectSections[subject]
	if !ok {
		return nil, false
	}
	return s.Sorted(), true
}

// SubjectCourses returns the course codes of every subject, ordered by subject
func (e *Engine) SubjectCourses() []SubjectCourses {
	out := make([]SubjectCourses, 0, len(e.idx.SubjectSections))
	for _, s := range sortedKeys(e.idx.SubjectSections) {
		out = append(out, SubjectCourses{Subject: s, Courses: e.idx.SubjectSections[s].Sorted()})
	}
	return out
}

// CourseTermsAll returns the terms of every course, ordered by course code
func (e *Engine) CourseTermsAll() []CourseTerms {
	out := make([]CourseTerms, 0, len(e.idx.CourseTerms))
	for _, c := range sortedKeys(e.idx.CourseTerms) {
		out = append(out, CourseTerms{Course: c, Terms: e.idx.CourseTerms[c].Sorted()})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
