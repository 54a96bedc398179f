// Package registry provides the central "glue" for the output formats.
//
// The Registry maps the format names accepted on the command line (e.g.
// "header", "json") to the compiled emitters that render a resolved build unit
// in that format. Each package under modules/ contributes its emitters through
// the Module interface during application startup.
package registry
