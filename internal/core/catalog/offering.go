// Package catalog holds the primary course offering table and the conflict seed
// that an ingest source fills jointly, one row at a time
package catalog

import (
	"strings"

	perr "coursedex/internal/platform/errors"
)

// Offering is one course offering row, immutable once constructed
type Offering struct {
	Term        string `json:"term" yaml:"term"`
	Section     string `json:"section" yaml:"section"`
	CourseCode  string `json:"course_code" yaml:"course_code"`
	Instructor  string `json:"instructor" yaml:"instructor"`
	Schedule    string `json:"schedule" yaml:"schedule"`
	SubjectCode string `json:"subject_code" yaml:"subject_code"`
}

// NewOffering validates the course code and derives the subject code
// the course code must contain a dash, SUBJECT-NUMBER
func NewOffering(term, section, courseCode, instructor, schedule string) (Offering, error) {
	subj, ok := SubjectOf(courseCode)
	if !ok {
		return Offering{}, perr.WithField(
			perr.InvalidArgf("course code %q has no subject separator", courseCode),
			"course_code",
		)
	}
	return Offering{
		Term:        term,
		Section:     section,
		CourseCode:  courseCode,
		Instructor:  instructor,
		Schedule:    schedule,
		SubjectCode: subj,
	}, nil
}

// SubjectOf returns the part of a course code before the first dash
func SubjectOf(courseCode string) (string, bool) {
	i := strings.IndexByte(courseCode, '-')
	if i < 0 {
		return "", false
	}
	return courseCode[:i], true
}

// Key returns the composite term+section key of the offering
func (o Offering) Key() Key { return KeyOf(o.Term, o.Section) }

// Listing is the instructor-facing label, COURSE-SECTION: TERM
func (o Offering) Listing() string {
	return o.CourseCode + "-" + o.Section + ": " + o.Term
}

// Key is the composite identity of an offering, term and section joined by one space
type Key string

// KeyOf builds the composite key
func KeyOf(term, section string) Key { return Key(term + " " + section) }

// String satisfies fmt.Stringer
func (k Key) String() string { return string(k) }
