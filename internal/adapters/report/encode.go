package report

import (
	"encoding/json"
	"io"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/query"
	perr "coursedex/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// Formats accepted by Encode
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Dump is every report in one document
type Dump struct {
	Totals         query.Totals           `json:"totals" yaml:"totals"`
	Subjects       []query.SubjectCount   `json:"subjects" yaml:"subjects"`
	SubjectCourses []query.SubjectCourses `json:"subject_courses" yaml:"subject_courses"`
	CourseTerms    []query.CourseTerms    `json:"course_terms" yaml:"course_terms"`
	Instructors    []query.Instructor     `json:"instructors" yaml:"instructors"`
	Conflicts      []query.Conflict       `json:"conflicts" yaml:"conflicts"`
	Offerings      []catalog.Offering     `json:"offerings" yaml:"offerings"`
}

// DumpOf collects every report from c
func DumpOf(c Catalog) Dump {
	return Dump{
		Totals:         c.Totals(),
		Subjects:       c.AllSubjectCounts(),
		SubjectCourses: c.SubjectCourses(),
		CourseTerms:    c.CourseTermsAll(),
		Instructors:    c.Instructors(),
		Conflicts:      c.InvalidKeys(),
		Offerings:      c.Offerings(),
	}
}

// Encode writes every report from c in format
func Encode(w io.Writer, format string, c Catalog) error {
	switch format {
	case FormatText, "":
		for _, screen := range []func(io.Writer, Catalog) error{
			Totals, SubjectCounts, SubjectSections, CourseTerms, Instructors, Conflicts,
		} {
			if err := screen(w, c); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(DumpOf(c))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(DumpOf(c)); err != nil {
			return err
		}
		return enc.Close()
	}
	return perr.WithField(perr.InvalidArgf("unknown report format %q", format), "format")
}
