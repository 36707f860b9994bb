// Package httpapi serves the solver over HTTP.
//
// Routes:
//
//	POST /        body: JSON input record; reply: tagged response record
//	GET  /        "Hello world"
//	OPTIONS /     preflight
//	GET  /metrics Prometheus exposition of the server's own registry
//
// Every reply carries permissive CORS headers. Outcomes of a well-formed
// request (optimal, unbound, rejected) are all 200; only a body that cannot
// be decoded is 400, and a solve cut short by its deadline is 503.
//
// Each request builds its own LinearProgram, so the handler is safe for
// concurrent use.
package httpapi
