// Package hcl_adapter implements config.Loader for HCL files.
//
// A configuration file may contain a `log` block, a `reader` block and the
// top-level `workers` and `output` attributes. Expressions can read the
// process environment through the `env` object and call lower, upper,
// trimspace and coalesce. Referring to an unset variable is an error.
//
//	reader {
//	  id_prefix = "${lower(env.USER)}-"
//	}
package hcl_adapter
