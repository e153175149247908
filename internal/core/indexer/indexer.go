// Package indexer derives the secondary course indices and the conflict report
// from a filled primary table and conflict seed
//
// Build runs two passes concurrently and waits for both:
// derive walks the primary table and writes the four derived maps,
// detectConflicts filters the seed into the conflict report.
// Each destination map has exactly one writer and neither pass reads the other's output,
// so the passes need no locking beyond the final join.
package indexer

import (
	"context"
	"fmt"
	"runtime/debug"

	"coursedex/internal/core/catalog"
	perr "coursedex/internal/platform/errors"

	"golang.org/x/sync/errgroup"
)

// Indices is the frozen output of one build
// nothing mutates it after Build returns
type Indices struct {
	SubjectCounts     map[string]int
	InstructorCourses map[string]catalog.Set
	SubjectSections   map[string]catalog.Set
	CourseTerms       map[string]catalog.Set
	Conflicts         map[catalog.Key]catalog.Set
}

// Build produces every derived index and the conflict report for one batch.
// It returns either all five outputs or an error and nil, never a partial result.
// The caller must not write to primary or seed while Build runs.
func Build(ctx context.Context, primary catalog.Primary, seed catalog.ConflictSeed) (*Indices, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "index build not started")
	}

	var (
		derived   derivedMaps
		conflicts map[catalog.Key]catalog.Set
	)

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		defer recoverPass("derive", &err)
		derived = derivePass(primary)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverPass("conflicts", &err)
		conflicts = conflictPass(seed)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Indices{
		SubjectCounts:     derived.subjectCounts,
		InstructorCourses: derived.instructorCourses,
		SubjectSections:   derived.subjectSections,
		CourseTerms:       derived.courseTerms,
		Conflicts:         conflicts,
	}, nil
}

// pass seams, swapped in tests
var (
	derivePass   = derive
	conflictPass = detectConflicts
)

type derivedMaps struct {
	subjectCounts     map[string]int
	instructorCourses map[string]catalog.Set
	subjectSections   map[string]catalog.Set
	courseTerms       map[string]catalog.Set
}

// derive is pass A; every aggregation is commutative so iteration order is irrelevant
func derive(primary catalog.Primary) derivedMaps {
	d := derivedMaps{
		subjectCounts:     make(map[string]int),
		instructorCourses: make(map[string]catalog.Set),
		subjectSections:   make(map[string]catalog.Set),
		courseTerms:       make(map[string]catalog.Set),
	}
	for _, o := range primary {
		d.subjectCounts[o.SubjectCode]++
		insert(d.instructorCourses, o.Instructor, o.Listing())
		insert(d.subjectSections, o.SubjectCode, o.CourseCode)
		insert(d.courseTerms, o.CourseCode, o.Term)
	}
	return d
}

// detectConflicts is pass B, a filter over the seed keeping keys claimed by
// more than one course code; sets are copied so the report never aliases the seed
func detectConflicts(seed catalog.ConflictSeed) map[catalog.Key]catalog.Set {
	out := make(map[catalog.Key]catalog.Set)
	for k, codes := range seed {
		if codes.Len() > 1 {
			out[k] = codes.Clone()
		}
	}
	return out
}

func insert(m map[string]catalog.Set, k, v string) {
	s, ok := m[k]
	if !ok {
		s = catalog.Set{}
		m[k] = s
	}
	s.Add(v)
}

// recoverPass turns a panic inside a pass into a build error
func recoverPass(pass string, err *error) {
	if r := recover(); r != nil {
		*err = perr.WithOp(perr.PanicErrf("index pass %s failed: %v\n%s", pass, r, debug.Stack()), "indexer."+pass)
	}
}

func (ix *Indices) String() string {
	return fmt.Sprintf("indices{subjects=%d instructors=%d courses=%d conflicts=%d}",
		len(ix.SubjectCounts), len(ix.InstructorCourses), len(ix.CourseTerms), len(ix.Conflicts))
}
