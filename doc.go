// Package lexsimplex is a dense tableau simplex solver with a lexicographic
// anti-cycling rule, plus the small surfaces needed to use it.
//
// 🚀 What is in the box?
//
//	row/          Row value type: Reduce (Gauss-Jordan step), NormalizeToUnit
//	simplex/      admission checks, relative costs, lexicographic pivot
//	              selection, the step-wise engine and solution extraction
//	linsys/       Gauss-Jordan solver for A·x = b without an objective
//	lpio/         JSON/YAML input records and the tagged response record
//	httpapi/      HTTP front end with CORS and Prometheus metrics
//	cmd/lpsolve/  CLI: `solve FILE` and `serve`
//
// ✨ Guarantees:
//   - the first failing admission check is the one reported
//   - degenerate programs terminate within C(N, M) pivots
//   - Unbound is an outcome, never an error
//   - no global state; each solve owns its program
//
// Quick example (max x2 + 2·x3 from the slack basis):
//
//	p := simplex.Problem{
//		Tableau: []row.Row{
//			row.New([]float64{1, 0, 1, 1}, 1),
//			row.New([]float64{0, 1, 2, 1}, 1),
//		},
//		Costs:    []float64{0, 0, 1, 2},
//		Solution: []float64{1, 1, 0, 0},
//	}
//	res, _ := simplex.Solve(ctx, p) // Finished, objective 2
//
//	go get github.com/katalvlaran/lexsimplex
package lexsimplex
