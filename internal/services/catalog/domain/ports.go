package domain

import (
	"context"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/query"
)

// Source yields the batch a catalog is built from
type Source interface {
	Name() string
	Load(ctx context.Context) (*catalog.Batch, error)
}

// ServicePort is consumed by handlers and other modules
// every method fails with ErrorCodeUnavailable until a load succeeds
type ServicePort interface {
	Ready() bool
	Totals(ctx context.Context) (query.Totals, error)
	Offerings(ctx context.Context, in PageInput) (OfferingPage, error)
	Lookup(ctx context.Context, in LookupInput) (catalog.Offering, error)
	SubjectCounts(ctx context.Context) ([]query.SubjectCount, error)
	SubjectCount(ctx context.Context, subject string) (query.SubjectCount, error)
	SubjectCourses(ctx context.Context) ([]query.SubjectCourses, error)
	CoursesForSubject(ctx context.Context, subject string) (query.SubjectCourses, error)
	Instructors(ctx context.Context) ([]query.Instructor, error)
	SearchInstructor(ctx context.Context, in InstructorInput) (InstructorMatch, error)
	CourseTermsAll(ctx context.Context) ([]query.CourseTerms, error)
	TermsForCourse(ctx context.Context, code string) (query.CourseTerms, error)
	Conflicts(ctx context.Context) ([]query.Conflict, error)
}

// ReadyPort is the narrow port the meta module probes
type ReadyPort interface {
	Ready() bool
}

// LoaderPort builds and publishes the catalog once
type LoaderPort interface {
	Load(ctx context.Context, src Source) (LoadResult, error)
}
