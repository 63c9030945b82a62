// Package grbrand provides the seeded uniform random source the
// maximal independent set algorithm draws its per-vertex tie-breaking
// probabilities from. It wraps gonum's stat/distuv.Uniform rather than
// building directly on math/rand.
package grbrand
