package simplex

import "github.com/katalvlaran/lexsimplex/row"

// BuildRelativeCosts derives the initial relative-cost row from raw costs.
// The first m entries (initial basic variables) are 0; every later entry is
// -costs[j], so a column improves the objective exactly when its relative
// cost is negative. Constant starts at 0 and accumulates the objective value
// as pivots are applied.
// Complexity: O(N).
func BuildRelativeCosts(costs []float64, m int) row.Row {
	rc := make([]float64, len(costs))
	for j := m; j < len(costs); j++ {
		rc[j] = -costs[j]
	}

	return row.Row{Coefficients: rc}
}
