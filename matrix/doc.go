// Package matrix offers the dense linear-algebra primitives used by the
// embedding pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     raw-slice access for hot kernels (Row, RawData).
//   - Kernels the pipeline runs on its matrices: ScaleInPlace, Symmetrize,
//     ZerosLike, RowSums, ClampMin, FrobeniusNorm.
//   - Centralized validators (ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal, ValidateRowStochastic) returning sentinel errors.
//
// Distance and affinity matrices are O(n²) in memory; they are best for the
// low-thousands of points the embedding optimizer is designed for.
//
// All errors are package sentinels (see errors.go) and must be matched with
// errors.Is. No exported function panics on user input.
package matrix
