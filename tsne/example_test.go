package tsne_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/manifold/tsne"
)

// ExampleEmbedder_EmbedRows embeds two points; a huge minimum gradient makes
// the very first epoch count as converged.
func ExampleEmbedder_EmbedRows() {
	e, err := tsne.New(
		tsne.WithDimensions(2),
		tsne.WithPerplexity(1),
		tsne.WithMinGradient(1e6),
		tsne.WithSeed(7),
	)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	res, err := e.EmbedRows(context.Background(), [][]float64{{0, 0, 0}, {1, 2, 3}})
	if err != nil {
		fmt.Println("embed:", err)
		return
	}
	r, c := res.Embedding.Shape()
	fmt.Printf("shape=%dx%d epochs=%d reason=%s\n", r, c, res.Epochs, res.Reason)
	// Output:
	// shape=2x2 epochs=1 reason=converged
}

// ExampleNew shows that every invalid field is reported at construction.
func ExampleNew() {
	_, err := tsne.New(tsne.WithDimensions(0), tsne.WithLearningRate(-1))
	fmt.Println(err)
	// Output:
	// tsne: invalid configuration: dimensions=0, want >= 1
	// learning rate=-1, want > 0
}
