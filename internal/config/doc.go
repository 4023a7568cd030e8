// Package config handles report definition files and render settings.
//
// A definition file is a YAML document describing a report tree: the title,
// its sections, and their tables and charts. Definitions are an alternative
// to building the tree in Go code and are what the CLI consumes. Loading a
// definition and calling Build produces a validated model tree; all
// structural validation is delegated to the model constructors so a
// definition cannot describe a tree that code could not construct.
//
// Settings carry the render options resolved from CLI flags: output format,
// archive location, and preview server address.
package config
