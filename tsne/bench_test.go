package tsne_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/manifold/tsne"
)

func BenchmarkEmbed(b *testing.B) {
	for _, n := range []int{50, 200} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rows, _ := blobs(1, n/2, 1, []float64{0, 0, 0, 0}, []float64{8, 0, 0, 0})
			e, err := tsne.New(tsne.WithEpochs(20), tsne.WithMinGradient(0), tsne.WithPatience(20))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.EmbedRows(context.Background(), rows); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
