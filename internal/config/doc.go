// Package config defines the format-agnostic graph model loaded from disk,
// along with the Loader interface implemented by each file format.
//
// The `config.Model` is the single source of truth handed to the `graph`
// package by the application. Concrete loaders, such as for HCL and YAML,
// are provided in separate packages.
package config
