// Package domain holds DTOs for catalog http and service contracts
package domain

import (
	"time"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/query"
)

// Page sizing for offering lists
const (
	DefaultPageSize = 100
	MaxPageSize     = 500
	MaxPage         = 1000000
)

// PageInput selects one page of a list, zero values take defaults
type PageInput struct {
	Page     int `query:"page" validate:"omitempty,min=1,max=1000000" example:"1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=500" example:"100"`
}

// Normalized returns the input with defaults applied
func (p PageInput) Normalized() PageInput {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// LookupInput names one composite key
type LookupInput struct {
	Term    string `query:"term" validate:"required,max=32" example:"F23"`
	Section string `query:"section" validate:"required,max=32" example:"01"`
}

// InstructorInput is an instructor search
type InstructorInput struct {
	Name string `query:"name" validate:"required,max=200" example:"smith"`
}

// OfferingPage is one page of offerings with the full count
type OfferingPage struct {
	Items []catalog.Offering
	Total int
	Page  PageInput
}

// InstructorMatch is an instructor search hit
// Name is the canonical form the index was searched with
type InstructorMatch struct {
	Name     string   `json:"name" yaml:"name"`
	Listings []string `json:"listings" yaml:"listings"`
	Warning  string   `json:"warning" yaml:"warning"`
}

// ConflationWarning accompanies every instructor match
const ConflationWarning = "instructor names are matched case-insensitively, so results may merge different people who share a name"

// LoadResult summarizes a successful catalog load
type LoadResult struct {
	BatchID string        `json:"batch_id"`
	Source  string        `json:"source"`
	Stats   catalog.Stats `json:"stats"`
	Totals  query.Totals  `json:"totals"`
	Elapsed time.Duration `json:"elapsed"`
}
