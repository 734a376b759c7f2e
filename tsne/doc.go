// Package tsne embeds high-dimensional samples into a low-dimensional
// space with a t-distributed stochastic neighbour objective.
//
// Pipeline of one Embed call:
//
//  1. Pre-flight: column kinds are checked against the configured metric.
//  2. Pairwise distances of the samples (package pairwise).
//  3. Per-row perplexity bandwidth search (package affinity), then the joint
//     form (P+Pᵀ)/(2n) unless WithConditionalAffinities is set. P is
//     multiplied by the exaggeration factor for the early phase.
//  4. Epoch loop over an n×d embedding Y drawn from N(0, 1e-4²):
//     squared distances of Y, Student-t similarities Q with
//     dof = max(d−1, 1), gradient c·Σ_j (p_ij − q_ij)·k_ij·(y_i − y_j) with
//     c = 2(1+dof)/dof, per-coordinate gains, momentum, and Y += V.
//  5. After every epoch the stopping policy looks at the gain-scaled
//     gradient norm: NaN, below MinGradient, Patience epochs without a new
//     best, or the epoch budget. At the early exaggeration boundary P is
//     divided back and momentum receives its boost.
//
// Nothing inside the loop is an error: divergence ends the run with
// StopDiverged and the last finite embedding. Context cancellation is
// checked at every epoch boundary.
//
// Inside an epoch the O(n²) kernels run row-parallel (WithWorkers); every
// row is reduced in a fixed order, so a fixed seed gives bit-identical
// output for any worker count.
package tsne
