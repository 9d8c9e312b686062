// Package config loads and validates configuration for the collector and
// analyzer binaries.
//
// Configuration is YAML with ${VAR} environment expansion, so secrets like
// the Polygon API key stay out of the file:
//
//	polygon:
//	  api_key: ${POLYGON_API_KEY}
//
// Missing optional fields fall back to defaults; each binary validates only
// the sections it uses.
package config
