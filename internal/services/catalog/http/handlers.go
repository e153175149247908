// Package http provides http transport for the catalog
package http

import (
	stdhttp "net/http"

	"coursedex/internal/modkit/httpkit"
	"coursedex/internal/services/catalog/domain"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// offerings by composite key
	httpkit.Get(r, "/offerings", h.offerings)
	httpkit.Get(r, "/offerings/lookup", h.lookup)

	// subjects
	httpkit.Get(r, "/subjects", h.subjectCounts)
	httpkit.Get(r, "/subjects/courses", h.subjectCourses)
	httpkit.Get(r, "/subjects/{subject}/count", h.subjectCount)
	httpkit.Get(r, "/subjects/{subject}/courses", h.coursesForSubject)

	// instructors
	httpkit.Get(r, "/instructors", h.instructors)
	httpkit.Get(r, "/instructors/search", h.searchInstructor)

	// courses
	httpkit.Get(r, "/courses/terms", h.courseTermsAll)
	httpkit.Get(r, "/courses/{code}/terms", h.termsForCourse)

	httpkit.Get(r, "/conflicts", h.conflicts)
	httpkit.Get(r, "/totals", h.totals)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /catalog/offerings Catalog catalogOfferings
// @Summary Every offering ordered by composite key
// @Tags Catalog
// @Produce json
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, at most 500"
// @Success 200 {array} catalog.Offering "ok"
// @Router /catalog/offerings [get]
func (h *handlers) offerings(r *stdhttp.Request) (any, error) {
	in, err := httpkit.Query[domain.PageInput](r)
	if err != nil {
		return nil, err
	}
	p, err := h.svc.Offerings(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(p.Items, p.Total, p.Page.Page, p.Page.PageSize), nil
}

// swagger:route GET /catalog/offerings/lookup Catalog catalogLookup
// @Summary Offering stored under one term and section
// @Tags Catalog
// @Produce json
// @Param term query string true "Term"
// @Param section query string true "Section"
// @Success 200 {object} catalog.Offering "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/offerings/lookup [get]
func (h *handlers) lookup(r *stdhttp.Request) (any, error) {
	in, err := httpkit.Query[domain.LookupInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Lookup(r.Context(), in)
}

// @Summary Offering count of every subject
// @Tags Catalog
// @Success 200 {array} query.SubjectCount "ok"
// @Router /catalog/subjects [get]
func (h *handlers) subjectCounts(r *stdhttp.Request) (any, error) {
	return h.svc.SubjectCounts(r.Context())
}

// @Summary Distinct course codes of every subject
// @Tags Catalog
// @Success 200 {array} query.SubjectCourses "ok"
// @Router /catalog/subjects/courses [get]
func (h *handlers) subjectCourses(r *stdhttp.Request) (any, error) {
	return h.svc.SubjectCourses(r.Context())
}

// @Summary Offering count of one subject, zero when unknown
// @Tags Catalog
// @Param subject path string true "Subject code"
// @Success 200 {object} query.SubjectCount "ok"
// @Router /catalog/subjects/{subject}/count [get]
func (h *handlers) subjectCount(r *stdhttp.Request) (any, error) {
	return h.svc.SubjectCount(r.Context(), httpkit.Param(r, "subject"))
}

// @Summary Distinct course codes of one subject
// @Tags Catalog
// @Param subject path string true "Subject code"
// @Success 200 {object} query.SubjectCourses "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/subjects/{subject}/courses [get]
func (h *handlers) coursesForSubject(r *stdhttp.Request) (any, error) {
	return h.svc.CoursesForSubject(r.Context(), httpkit.Param(r, "subject"))
}

// @Summary Every instructor with their listings
// @Tags Catalog
// @Success 200 {array} query.Instructor "ok"
// @Router /catalog/instructors [get]
func (h *handlers) instructors(r *stdhttp.Request) (any, error) {
	return h.svc.Instructors(r.Context())
}

// swagger:route GET /catalog/instructors/search Catalog catalogInstructorSearch
// @Summary Listings of one instructor
// @Description names are case folded before matching, so different people with one name merge
// @Tags Catalog
// @Param name query string true "Instructor name"
// @Success 200 {object} domain.InstructorMatch "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/instructors/search [get]
func (h *handlers) searchInstructor(r *stdhttp.Request) (any, error) {
	in, err := httpkit.Query[domain.InstructorInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.SearchInstructor(r.Context(), in)
}

// @Summary Distinct terms of every course
// @Tags Catalog
// @Success 200 {array} query.CourseTerms "ok"
// @Router /catalog/courses/terms [get]
func (h *handlers) courseTermsAll(r *stdhttp.Request) (any, error) {
	return h.svc.CourseTermsAll(r.Context())
}

// @Summary Distinct terms of one course
// @Tags Catalog
// @Param code path string true "Course code, any case"
// @Success 200 {object} query.CourseTerms "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/courses/{code}/terms [get]
func (h *handlers) termsForCourse(r *stdhttp.Request) (any, error) {
	return h.svc.TermsForCourse(r.Context(), httpkit.Param(r, "code"))
}

// @Summary Composite keys claimed by more than one course
// @Tags Catalog
// @Success 200 {array} query.Conflict "ok"
// @Router /catalog/conflicts [get]
func (h *handlers) conflicts(r *stdhttp.Request) (any, error) {
	return h.svc.Conflicts(r.Context())
}

// @Summary Offering, subject and conflict totals
// @Tags Catalog
// @Success 200 {object} query.Totals "ok"
// @Router /catalog/totals [get]
func (h *handlers) totals(r *stdhttp.Request) (any, error) {
	return h.svc.Totals(r.Context())
}
