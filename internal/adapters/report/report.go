// Package report renders catalog queries as the plain text screens of the console menu
package report

import (
	"fmt"
	"io"
	"strings"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/normalize"
	"coursedex/internal/core/query"
)

// ConflationNote is printed under every instructor search hit
const ConflationNote = "Important note: results may include additional courses because some instructors share the same name."

// Catalog is the read surface the screens need; *query.Engine satisfies it
type Catalog interface {
	Offerings() []catalog.Offering
	AllSubjectCounts() []query.SubjectCount
	Totals() query.Totals
	Instructors() []query.Instructor
	CoursesByInstructor(name string) ([]string, bool)
	InvalidKeys() []query.Conflict
	SubjectCourses() []query.SubjectCourses
	CourseTermsAll() []query.CourseTerms
	TermsForCourse(code string) ([]string, bool)
}

var (
	heavy = strings.Repeat("=", 50)
	rule  = strings.Repeat("-", 30)
	bar   = strings.Repeat("=", 30)
)

// printer keeps the first write error so screens read as straight line code
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func render(w io.Writer, fn func(p *printer)) error {
	p := &printer{w: w}
	fn(p)
	return p.err
}

// All prints every offering under its composite key
func All(w io.Writer, c Catalog) error {
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		for _, o := range c.Offerings() {
			p.f("%s\n%s\n", o.Key(), strings.Repeat("-", 50))
			p.f("Course: %s\t%s\nInstructor: %s\nWhen/Where: %s\n\n", o.CourseCode, o.SubjectCode, o.Instructor, o.Schedule)
		}
	})
}

// SubjectCounts prints the offering count of every subject
func SubjectCounts(w io.Writer, c Catalog) error {
	counts := c.AllSubjectCounts()
	return render(w, func(p *printer) {
		p.f("\n%s\nSUBJ-CODE & COUNT(s)\n%s\n", heavy, strings.Repeat("=", 32))
		for _, s := range counts {
			p.f("%-10s %10d section(s)\n", s.Subject, s.Count)
		}
		p.f("%s\nTotal number of subjects: %d\n\n", strings.Repeat("-", 32), len(counts))
	})
}

// Totals prints catalog size figures
func Totals(w io.Writer, c Catalog) error {
	t := c.Totals()
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		p.f("Total valid courses: %d\nTotal different subjects: %d\nInvalid term/section pairs: %d\n", t.Offerings, t.Subjects, t.Conflicts)
	})
}

// InstructorSearch prints the listings of one instructor
func InstructorSearch(w io.Writer, c Catalog, name string) error {
	listings, ok := c.CoursesByInstructor(name)
	name = normalize.Instructor(name)
	return render(w, func(p *printer) {
		if !ok {
			p.f("\nCourses could not be found for %s.\n", name)
			return
		}
		p.f("\nCourses found for %s(s):\n%s\n", name, rule)
		for _, l := range listings {
			p.f("%s\n", l)
		}
		p.f("\n%s\n", ConflationNote)
	})
}

// Instructors prints every instructor with their listings
func Instructors(w io.Writer, c Catalog) error {
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		for _, in := range c.Instructors() {
			p.f("\nProfessor: %s\n%s\n", in.Name, bar)
			for _, l := range in.Listings {
				p.f("%s\n", l)
			}
			p.f("%s\nTotal classes taught: %d\n", rule, len(in.Listings))
		}
	})
}

// Conflicts prints every term and section claimed by more than one course
func Conflicts(w io.Writer, c Catalog) error {
	bad := c.InvalidKeys()
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		for i, k := range bad {
			p.f("Invalid Term/Section:\n%s\n", strings.Repeat("-", 20))
			p.f("%d. %s\n%s\n", i+1, k.Key, strings.Repeat("=", 20))
			for _, course := range k.Courses {
				p.f("Course: %s\n", course)
			}
			p.f("\n\n")
		}
		p.f("There are a total of %d invalid term section pairs.\n\n", len(bad))
	})
}

// SubjectSections prints the courses of every subject with the number of terms each ran
func SubjectSections(w io.Writer, c Catalog) error {
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		for _, s := range c.SubjectCourses() {
			p.f("%s, %d course(s)\n%s\n", s.Subject, len(s.Courses), bar)
			for _, course := range s.Courses {
				terms, _ := c.TermsForCourse(course)
				p.f("%-15s-> %d term(s)\n", course, len(terms))
			}
			p.f("%s\n\n", rule)
		}
	})
}

// CourseTerms prints the terms of every course
func CourseTerms(w io.Writer, c Catalog) error {
	return render(w, func(p *printer) {
		p.f("\n%s\n", heavy)
		for _, ct := range c.CourseTermsAll() {
			p.f("%s, %d terms/year\n%s\n", ct.Course, len(ct.Terms), bar)
			for _, term := range ct.Terms {
				p.f("%s\n", term)
			}
			p.f("%s\n\n", rule)
		}
	})
}

// CourseSearch prints the terms of one course
func CourseSearch(w io.Writer, c Catalog, code string) error {
	terms, ok := c.TermsForCourse(code)
	shown := strings.ToUpper(code)
	return render(w, func(p *printer) {
		if !ok {
			p.f("\nCourses could not be found for %s.\n", shown)
			return
		}
		p.f("\nTerms found for %s(s):\n%s\n", shown, rule)
		for _, term := range terms {
			p.f("%s\n", term)
		}
	})
}
