// Package affinity turns a high-dimensional distance matrix into
// neighbour-selection probabilities.
//
// For every point i a precision β_i is searched so that the Shannon entropy
// of the row
//
//	p_j|i = exp(-β_i·d_ij) / Σ_k≠i exp(-β_i·d_ik),   p_i|i = 0
//
// equals log(perplexity). The search brackets β from both sides: while one
// side of the bracket is still open it doubles (or halves) β, afterwards it
// bisects. It is an explicit bounded loop; when the iteration budget runs
// out the last candidate row is kept and the row is reported as
// unconverged. No error is raised for a single hard point.
//
// Estimate returns the conditional (row-stochastic) matrix. Joint converts
// it to the symmetric joint form (P + Pᵀ)/(2n) used by the optimizer by
// default.
//
// Complexity: O(n²·iter) time for Estimate, O(n²) space.
package affinity
