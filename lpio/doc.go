// Package lpio reads linear programs from JSON or YAML and writes the
// tagged response record.
//
// Input shape (field names are the public contract):
//
//	{"tableau": [{"coefficients": [...], "constant": b}, ...],
//	 "costs": [...], "relative_costs": {...}, "solution": [...]}
//
// Response shapes, exactly one key set:
//
//	{"LinearProgram": {"coefficients": solution, "constant": objective}}
//	{"Unbound": "Problem is unbound and the optimal solution is infinity"}
//	{"Error": "<error message>"}
package lpio
