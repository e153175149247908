// Package service contains the build-once catalog workflow
//
// Load builds the catalog exactly once and publishes it through an atomic pointer,
// so readers either see nothing or a fully built engine. Queries never lock.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/indexer"
	"coursedex/internal/core/query"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/logger"
	"coursedex/internal/services/catalog/domain"
)

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
	Load(ctx context.Context, src domain.Source) (domain.LoadResult, error)
	Engine() (*query.Engine, error)
}

// Svc implements the catalog service
type Svc struct {
	loading atomic.Bool
	engine  atomic.Pointer[query.Engine]
}

// New constructs an empty catalog service
func New() *Svc { return &Svc{} }

// Load reads a batch from src, builds every index and publishes the result.
// A second call after a successful load fails with ErrorCodeConflict; a failed
// load publishes nothing and may be retried.
func (s *Svc) Load(ctx context.Context, src domain.Source) (domain.LoadResult, error) {
	if src == nil {
		return domain.LoadResult{}, perr.InvalidArgf("nil catalog source")
	}
	if !s.loading.CompareAndSwap(false, true) {
		return domain.LoadResult{}, perr.Conflictf("catalog already loaded")
	}
	published := false
	defer func() {
		if !published {
			s.loading.Store(false)
		}
	}()

	log := logger.C(ctx).With().Str("component", "catalog").Str("source", src.Name()).Logger()
	start := time.Now()

	b, err := src.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("catalog source failed")
		return domain.LoadResult{}, perr.WithOp(err, "catalog.load")
	}
	ctx = logger.WithBatch(ctx, b.ID.String())
	log = log.With().Str("batch_id", b.ID.String()).Logger()
	rowsRejected.WithLabelValues(src.Name()).Add(float64(b.Stats.Rejected))

	ix, err := indexer.Build(ctx, b.Primary, b.Seed)
	if err != nil {
		log.Error().Err(err).Msg("index build failed")
		return domain.LoadResult{}, perr.WithOp(err, "catalog.build")
	}
	eng := query.New(b.Primary, ix)
	s.engine.Store(eng)
	published = true

	elapsed := time.Since(start)
	totals := eng.Totals()
	buildDuration.Observe(elapsed.Seconds())
	offeringsGauge.Set(float64(totals.Offerings))
	conflictsGauge.Set(float64(totals.Conflicts))

	log.Info().
		Int("offerings", totals.Offerings).
		Int("subjects", totals.Subjects).
		Int("conflicts", totals.Conflicts).
		Int("rejected", b.Stats.Rejected).
		Dur("elapsed", elapsed).
		Msg("catalog published")

	return domain.LoadResult{
		BatchID: b.ID.String(),
		Source:  src.Name(),
		Stats:   b.Stats,
		Totals:  totals,
		Elapsed: elapsed,
	}, nil
}

// Ready reports whether a catalog has been published
func (s *Svc) Ready() bool { return s.engine.Load() != nil }

// Engine returns the published engine for callers that render whole reports
func (s *Svc) Engine() (*query.Engine, error) {
	if e := s.engine.Load(); e != nil {
		return e, nil
	}
	return nil, perr.Unavailablef("catalog not loaded")
}

// read runs fn against the published engine and counts the outcome under op
func read[T any](s *Svc, op string, fn func(*query.Engine) (T, error)) (T, error) {
	e, err := s.Engine()
	if err != nil {
		queriesTotal.WithLabelValues(op, perr.CodeOf(err).String()).Inc()
		var zero T
		return zero, err
	}
	out, err := fn(e)
	result := resultOK
	if err != nil {
		result = perr.CodeOf(err).String()
	}
	queriesTotal.WithLabelValues(op, result).Inc()
	return out, err
}

// Totals returns offering, subject and conflict counts
func (s *Svc) Totals(_ context.Context) (query.Totals, error) {
	return read(s, "totals", func(e *query.Engine) (query.Totals, error) { return e.Totals(), nil })
}

// Offerings returns one page of offerings ordered by composite key
func (s *Svc) Offerings(_ context.Context, in domain.PageInput) (domain.OfferingPage, error) {
	in = in.Normalized()
	return read(s, "offerings", func(e *query.Engine) (domain.OfferingPage, error) {
		all := e.Offerings()
		// pages past the end are empty; the bound check keeps the product from overflowing
		lo := len(all)
		if in.Page-1 <= len(all)/in.PageSize {
			lo = min((in.Page-1)*in.PageSize, len(all))
		}
		hi := min(lo+in.PageSize, len(all))
		return domain.OfferingPage{Items: all[lo:hi], Total: len(all), Page: in}, nil
	})
}

// Lookup returns the offering stored under one term and section
func (s *Svc) Lookup(_ context.Context, in domain.LookupInput) (catalog.Offering, error) {
	return read(s, "lookup", func(e *query.Engine) (catalog.Offering, error) {
		k := catalog.KeyOf(in.Term, in.Section)
		o, ok := e.Lookup(k)
		if !ok {
			return o, perr.NotFoundf("no offering for %q", k)
		}
		return o, nil
	})
}

// SubjectCounts returns every subject with its offering count
func (s *Svc) SubjectCounts(_ context.Context) ([]query.SubjectCount, error) {
	return read(s, "subject_counts", func(e *query.Engine) ([]query.SubjectCount, error) {
		return e.AllSubjectCounts(), nil
	})
}

// SubjectCount returns the offering count of one subject, zero when unknown
func (s *Svc) SubjectCount(_ context.Context, subject string) (query.SubjectCount, error) {
	return read(s, "subject_count", func(e *query.Engine) (query.SubjectCount, error) {
		return query.SubjectCount{Subject: subject, Count: e.SubjectCount(subject)}, nil
	})
}

// SubjectCourses returns the distinct course codes of every subject
func (s *Svc) SubjectCourses(_ context.Context) ([]query.SubjectCourses, error) {
	return read(s, "subject_courses", func(e *query.Engine) ([]query.SubjectCourses, error) {
		return e.SubjectCourses(), nil
	})
}

// CoursesForSubject returns the distinct course codes of one subject
func (s *Svc) CoursesForSubject(_ context.Context, subject string) (query.SubjectCourses, error) {
	return read(s, "courses_for_subject", func(e *query.Engine) (query.SubjectCourses, error) {
		courses, ok := e.CoursesForSubject(subject)
		if !ok {
			return query.SubjectCourses{}, perr.WithField(perr.NotFoundf("subject %q not found", subject), "subject")
		}
		return query.SubjectCourses{Subject: subject, Courses: courses}, nil
	})
}

// Instructors returns every instructor with their listings
func (s *Svc) Instructors(_ context.Context) ([]query.Instructor, error) {
	return read(s, "instructors", func(e *query.Engine) ([]query.Instructor, error) {
		return e.Instructors(), nil
	})
}

// SearchInstructor returns the listings of one instructor with the same-name warning
func (s *Svc) SearchInstructor(_ context.Context, in domain.InstructorInput) (domain.InstructorMatch, error) {
	return read(s, "search_instructor", func(e *query.Engine) (domain.InstructorMatch, error) {
		listings, ok := e.CoursesByInstructor(in.Name)
		if !ok {
			return domain.InstructorMatch{}, perr.WithField(perr.NotFoundf("no courses for instructor %q", in.Name), "name")
		}
		return domain.InstructorMatch{
			Name:     normalizeName(in.Name),
			Listings: listings,
			Warning:  domain.ConflationWarning,
		}, nil
	})
}

// CourseTermsAll returns the distinct terms of every course
func (s *Svc) CourseTermsAll(_ context.Context) ([]query.CourseTerms, error) {
	return read(s, "course_terms", func(e *query.Engine) ([]query.CourseTerms, error) {
		return e.CourseTermsAll(), nil
	})
}

// TermsForCourse returns the distinct terms of one course
func (s *Svc) TermsForCourse(_ context.Context, code string) (query.CourseTerms, error) {
	return read(s, "terms_for_course", func(e *query.Engine) (query.CourseTerms, error) {
		terms, ok := e.TermsForCourse(code)
		if !ok {
			return query.CourseTerms{}, perr.WithField(perr.NotFoundf("course %q not found", code), "code")
		}
		return query.CourseTerms{Course: normalizeCode(code), Terms: terms}, nil
	})
}

// Conflicts returns the conflict report ordered by key
func (s *Svc) Conflicts(_ context.Context) ([]query.Conflict, error) {
	return read(s, "conflicts", func(e *query.Engine) ([]query.Conflict, error) {
		return e.InvalidKeys(), nil
	})
}
