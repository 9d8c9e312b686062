// Package server exposes the analyzer over HTTP.
//
// Routes:
//
//	GET /api/v1/options/top  — run the analysis pipeline, return the ranking
//	GET /health              — liveness probe
//
// Success maps to 200, empty result sets to 404, and query failures or poll
// timeouts to 500. Responses carry permissive CORS headers so the ranking can
// be read straight from a browser dashboard.
package server
