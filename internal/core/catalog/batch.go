package catalog

import (
	"sort"

	"github.com/google/uuid"
)

// Primary maps a composite key to the last offering seen for it
type Primary map[Key]Offering

// Keys returns the composite keys in ascending order
func (p Primary) Keys() []Key {
	out := make([]Key, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ConflictSeed maps a composite key to every distinct course code claimed for it
type ConflictSeed map[Key]Set

// Stats counts what a source did with its input rows
type Stats struct {
	Rows     int `json:"rows" yaml:"rows"`
	Accepted int `json:"accepted" yaml:"accepted"`
	Blank    int `json:"blank" yaml:"blank"`
	Rejected int `json:"rejected" yaml:"rejected"`
}

// Batch is the hand-off unit between a source and the index builder
// a source owns it while filling and must not touch it after returning it
type Batch struct {
	ID      uuid.UUID
	Primary Primary
	Seed    ConflictSeed
	Stats   Stats
}

// NewBatch returns an empty batch stamped with a fresh id
func NewBatch() *Batch {
	return &Batch{
		ID:      uuid.New(),
		Primary: Primary{},
		Seed:    ConflictSeed{},
	}
}

// Add records o; the primary table keeps the latest row per key while
// the seed accumulates every distinct course code for that key
func (b *Batch) Add(o Offering) {
	k := o.Key()
	b.Primary[k] = o

	codes, ok := b.Seed[k]
	if !ok {
		codes = Set{}
		b.Seed[k] = codes
	}
	codes.Add(o.CourseCode)
	b.Stats.Accepted++
}

// Len returns the number of distinct keys in the primary table
func (b *Batch) Len() int { return len(b.Primary) }
