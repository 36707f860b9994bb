package simplex

import "fmt"

// ExtractSolution reads the basis back out of the tableau into the solution
// vector. It is run by Step when the program reaches Finished.
//
// The solution is zeroed, then for every column whose relative cost is
// exactly 0:
//   - rows holding exactly 1 in that column are collected;
//   - more than one such row → ErrAmbiguousBasicColumn;
//   - exactly one row, and every other entry of the column is 0 →
//     solution[column] = that row's Constant;
//   - otherwise the column is non-basic and stays 0.
//
// On error the previous solution is kept.
// Complexity: O(M·N).
func (lp *LinearProgram) ExtractSolution() error {
	sol := make([]float64, lp.Cols())
	for col, rc := range lp.relativeCosts.Coefficients {
		if rc != 0 {
			continue
		}
		basic := -1
		unit := true
		for i, r := range lp.tableau {
			switch v := r.Coefficients[col]; {
			case v == 1:
				if basic >= 0 {
					return simplexErrorf(opExtract,
						fmt.Errorf("column %d (rows %d and %d): %w", col, basic, i, ErrAmbiguousBasicColumn))
				}
				basic = i
			case v != 0:
				unit = false
			}
		}
		if basic >= 0 && unit {
			sol[col] = lp.tableau[basic].Constant
		}
	}
	lp.solution = sol

	return nil
}
