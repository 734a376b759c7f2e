// Package manifold turns high-dimensional samples into a low-dimensional
// point cloud that keeps local neighbourhoods intact (t-SNE style
// stochastic-neighbour embedding).
//
// What is inside?
//
//	• metric/   distance functions and their value-kind compatibility
//	• pairwise/ dense symmetric distance matrices, row-parallel
//	• affinity/ per-row bandwidth search to a target perplexity
//	• tsne/     gradient-descent optimizer with gains, momentum and
//	            early exaggeration, plus stopping rules
//	• dataset/  CSV samples, optionally zstd or lz4 compressed
//	• matrix/   the Dense row-major matrix shared by all of the above
//
// Pipeline:
//
//	rows ──metric──▶ D ──perplexity──▶ P ──gradient descent──▶ Y
//
// Quick start:
//
//	e, err := tsne.New(tsne.WithPerplexity(20), tsne.WithSeed(7))
//	if err != nil { ... }
//	res, err := e.EmbedRows(ctx, rows)
//	// res.Embedding is n×2, res.Reason says why the optimizer stopped.
//
// The command-line front end lives in cmd/manifold:
//
//	go install github.com/katalvlaran/manifold/cmd/manifold@latest
package manifold
