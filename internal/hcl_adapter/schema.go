package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// Profile is the HCL schema of a `profile "name" { ... }` block.
type Profile struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	StandardMin int      `hcl:"standard_min,optional"`
	Compiler    string   `hcl:"compiler,optional"`
	Flags       []string `hcl:"flags,optional"`
	Dump        string   `hcl:"dump,optional"`
	// Defines is kept as an expression so values of mixed type can be
	// rendered one by one.
	Defines   hcl.Expression `hcl:"defines,optional"`
	Undefines []string       `hcl:"undefines,optional"`
}
