// Package core defines the fundamental scalar and control types shared by
// every other package in this module: the Index type used for all row,
// column, and vector positions, the OutputControl enum that governs how a
// kernel's result is merged into its output container, the NoMask and
// NoAccumulate sentinels that let a kernel statically skip masking or
// accumulation work, and the error taxonomy every package returns through.
//
// core has no dependency on algebra, sparse, or engine — everything here is
// a value type or a sentinel, never a container or an operation.
package core
