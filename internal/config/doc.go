// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as the HCL one, live in separate packages and only
// fill in the fields a file actually sets; everything else keeps the value
// from Default.
package config
