package simplex_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lexsimplex/row"
	"github.com/katalvlaran/lexsimplex/simplex"
)

// ExampleSolve maximizes x2 + 2·x3 over
//
//	x0      +  x2 + x3 = 1
//	     x1 + 2x2 + x3 = 1
//
// starting from the slack basis (x0, x1) = (1, 1).
func ExampleSolve() {
	p := simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 1, 1}, 1),
			row.New([]float64{0, 1, 2, 1}, 1),
		},
		Costs:    []float64{0, 0, 1, 2},
		Solution: []float64{1, 1, 0, 0},
	}

	res, err := simplex.Solve(context.Background(), p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.State, res.Objective, res.Solution)
	// Output:
	// Finished 2 [0 0 0 1]
}

// ExampleLinearProgram_Step drives the engine one transition at a time.
func ExampleLinearProgram_Step() {
	lp, err := simplex.New(simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 0, 1}, 1),
			row.New([]float64{0, 1, 0, 1}, 1),
		},
		Costs:    []float64{0, 0, 1, 2},
		Solution: []float64{1, 1, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		st, err := lp.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(st)
		if st.Terminal() {
			break
		}
	}
	// Output:
	// IterationComplete
	// Unbound
}

// ExampleKindOf shows the admission error reported for a negative entry.
func ExampleKindOf() {
	_, err := simplex.New(simplex.Problem{
		Tableau: []row.Row{
			row.New([]float64{1, 0, 1, 1}, 1),
			row.New([]float64{0, 1, 2, 1}, 1),
		},
		Costs:    []float64{0, 0, 1, 2},
		Solution: []float64{1, 1, 0, -1},
	})
	fmt.Println(simplex.KindOf(err))
	fmt.Println(err)
	// Output:
	// Infeasible
	// New: ValidateFeasible: entry 3: simplex: solution is not feasible
}
