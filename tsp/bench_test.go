package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/twoopt/distance"
	"github.com/katalvlaran/twoopt/tsp"
)

func BenchmarkNearestNeighbor(b *testing.B) {
	for _, n := range []int{100, 1000} {
		in := randomInstance(b, n, seedDet, distance.Euclidean2D)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tsp.NearestNeighbor(in)
			}
		})
	}
}

func BenchmarkOptimize(b *testing.B) {
	for _, n := range []int{100, 1000} {
		in := randomInstance(b, n, seedDet, distance.Euclidean2D)
		start, _ := tsp.NearestNeighbor(in)
		for _, dense := range []bool{false, true} {
			var c tsp.Costs = in
			if dense {
				c = tsp.Dense(in)
			}
			b.Run(fmt.Sprintf("n=%d/dense=%t", n, dense), func(b *testing.B) {
				tour := make([]int, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(tour, start)
					_, _ = tsp.Optimize(c, tour)
				}
			})
		}
	}
}

func BenchmarkReverse(b *testing.B) {
	tour := tsp.IdentityTour(10000)
	for i := 0; i < b.N; i++ {
		_ = tsp.Reverse(tour, 1, 9998)
	}
}
