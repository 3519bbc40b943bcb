// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for file parsing, translating `graph` and
// `node` blocks into the format-agnostic model, and CTY-to-Go data binding
// for the map-valued attributes.
package hcl
