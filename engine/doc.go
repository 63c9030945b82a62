// Package engine implements the uniform masked-accumulate-write pipeline
// and every operation built on it: EWiseMult, EWiseAdd, Mxv, Vxm, Mxm,
// Reduce, ReduceToScalar, Apply, Assign, and Extract.
//
// Every operation with a vector or matrix output follows the same three
// phases: compute a fresh result T from the operands alone, fold T into
// the output's prior contents with accum to get Z (or take Z = T directly
// when accum is core.NoAccumulate), then write Z into the output under
// mask and OutputControl. mergeWrite in writeback.go implements that third
// phase once, generically over Entry[T]; each of these operations calls it
// (directly, or through writeVector/writeMatrixRow, which skip it for
// core.NoMask) rather than reimplementing masked writeback.
// ReduceToScalar and ReduceMatrixToScalar return a scalar and have no mask
// or write phase.
package engine
