package simplex_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lexsimplex/row"
	"github.com/katalvlaran/lexsimplex/simplex"
)

// denseProblem builds an m×n bounded program with a fixed seed.
func denseProblem(m, n int) simplex.Problem {
	rng := rand.New(rand.NewSource(int64(m*n + 1)))
	p := simplex.Problem{
		Tableau:  make([]row.Row, m),
		Costs:    make([]float64, n),
		Solution: make([]float64, n),
	}
	for i := 0; i < m; i++ {
		coeffs := make([]float64, n)
		coeffs[i] = 1
		for j := m; j < n; j++ {
			coeffs[j] = 0.1 + rng.Float64()
		}
		b := 1 + 10*rng.Float64()
		p.Tableau[i] = row.New(coeffs, b)
		p.Solution[i] = b
	}
	for j := m; j < n; j++ {
		p.Costs[j] = rng.Float64()
	}

	return p
}

// benchmarkSolve runs Solve on an m×n program and fails on unexpected errors.
func benchmarkSolve(b *testing.B, m, n int) {
	p := denseProblem(m, n)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(ctx, p, simplex.WithTolerance(1e-9)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_10x20(b *testing.B)   { benchmarkSolve(b, 10, 20) }
func BenchmarkSolve_50x100(b *testing.B)  { benchmarkSolve(b, 50, 100) }
func BenchmarkSolve_100x300(b *testing.B) { benchmarkSolve(b, 100, 300) }
