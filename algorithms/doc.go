// Package algorithms implements graph algorithms expressed entirely in
// terms of the engine and algebra packages: MaximalIndependentSet, a
// randomized Luby-variant maximal independent set computation.
package algorithms
