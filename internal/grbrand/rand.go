package grbrand

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws independent Uniform(0,1) samples. Two Sources built from
// the same seed draw the same sequence, which is what makes a seeded
// MaximalIndependentSet run reproducible.
type Source struct {
	dist distuv.Uniform
}

// New returns a Source seeded from seed.
func New(seed uint64) *Source {
	return &Source{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: xrand.New(xrand.NewSource(seed)),
		},
	}
}

// Float64 draws the next Uniform(0,1) sample.
func (s *Source) Float64() float64 {
	return s.dist.Rand()
}
