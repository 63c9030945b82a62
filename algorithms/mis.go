package algorithms

import (
	"fmt"

	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/engine"
	"github.com/amulmgr/graphblas/internal/grbrand"
	"github.com/amulmgr/graphblas/sparse"
)

// maxIterationMultiplier bounds the main loop against a pathological
// seed that never breaks a tie; a genuine run converges in a handful of
// rounds, so this is a defensive backstop, not a tuning knob.
const maxIterationMultiplier = 8

func alwaysTrue[T any]() algebra.UnaryOp[T, bool] {
	return algebra.NewUnaryOp("alwaysTrue", func(T) bool { return true })
}

// MaximalIndependentSet computes a maximal independent set of the
// undirected graph described by graph's structural pattern, using a
// randomized round-based algorithm: each round draws a random
// tie-breaking value per candidate, keeps the candidates that locally
// beat every neighbor's value, and removes the new members and their
// neighbors from further consideration.
//
// graph must be square and is read as a 0/1 adjacency matrix: structural
// presence decides who neighbors whom, and each row's stored values are
// summed into the vertex degree that scales its random draw. A stored
// diagonal entry (self-loop) is treated like any other edge.
func MaximalIndependentSet(graph *sparse.Matrix[float64], seed uint64) (*sparse.Vector[bool], error) {
	n := graph.NRows()
	if graph.NCols() != n {
		return nil, fmt.Errorf("algorithms: %w: graph must be square, got %d x %d", core.ErrDimensionMismatch, n, graph.NCols())
	}

	independentSet := sparse.NewVector[bool](n)
	rng := grbrand.New(seed)

	degrees := sparse.NewVector[float64](n)
	engine.Reduce(degrees, core.NoMask{}, core.NoAccumulate{}, algebra.Plus[float64](), graph, core.Replace)

	// Isolated vertices (no stored degree) can never conflict with a
	// neighbor and join the independent set immediately.
	engine.AssignConstantVector(independentSet, sparse.Complement(degrees), core.NoAccumulate{}, true, engine.AllIndices(), core.Merge)

	candidates := sparse.NewVector[bool](n)
	engine.ApplyVector(candidates, core.NoMask{}, core.NoAccumulate{}, alwaysTrue[float64](), degrees, core.Replace)

	boolGraph := sparse.NewMatrix[bool](n, n)
	engine.ApplyMatrix(boolGraph, core.NoMask{}, core.NoAccumulate{}, alwaysTrue[float64](), graph, core.Replace)

	probOp := algebra.NewBinaryOp("mis-probability", func(r, degree float64) float64 {
		return 0.0001 + r/(1+2*degree)
	})

	maxRounds := int(n)*maxIterationMultiplier + 16
	for round := 0; candidates.Nvals() > 0; round++ {
		if round >= maxRounds {
			core.PanicInvariant("MaximalIndependentSet", "exceeded maximum rounds without converging")
		}

		r := sparse.NewVector[float64](n)
		for i := core.Index(0); i < n; i++ {
			_ = r.SetElement(i, rng.Float64())
		}

		prob := sparse.NewVector[float64](n)
		engine.EWiseMultVector(prob, candidates, core.NoAccumulate{}, probOp, r, degrees, core.Replace)

		neighborMax := sparse.NewVector[float64](n)
		engine.Mxv(neighborMax, candidates, core.NoAccumulate{}, algebra.MaxSecondSemiring[float64](), graph, prob, core.Replace)

		// A candidate becomes a new member when its own draw beats every
		// neighbor's draw, or it has no neighbor left among the
		// remaining candidates at all.
		newMembers := sparse.NewVector[bool](n)
		for _, e := range prob.Contents() {
			nm, err := neighborMax.ExtractElement(e.Index)
			if err != nil || e.Value > nm {
				_ = newMembers.SetElement(e.Index, true)
			}
		}

		engine.EWiseAddVector(independentSet, core.NoMask{}, core.NoAccumulate{}, algebra.LogicalOr(), independentSet, newMembers, core.Merge)

		newNeighbors := sparse.NewVector[bool](n)
		engine.Mxv(newNeighbors, core.NoMask{}, core.NoAccumulate{}, algebra.LogicalSemiring(), boolGraph, newMembers, core.Replace)

		pruned := sparse.NewVector[bool](n)
		engine.EWiseMultVector(pruned, sparse.Complement(newMembers), core.NoAccumulate{}, algebra.LogicalAnd(), candidates, candidates, core.Replace)
		engine.EWiseMultVector(candidates, sparse.Complement(newNeighbors), core.NoAccumulate{}, algebra.LogicalAnd(), pruned, pruned, core.Replace)
	}

	return independentSet, nil
}

// VertexIDs returns the sorted indices of every vertex set contains with
// value true.
func VertexIDs(set *sparse.Vector[bool]) []core.Index {
	var ids []core.Index
	for _, e := range set.Contents() {
		if e.Value {
			ids = append(ids, e.Index)
		}
	}
	return ids
}
