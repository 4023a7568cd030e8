// Package main provides the entry point for the mkreport CLI.
//
// mkreport renders declarative report definitions into HTML, Markdown,
// or JSON documents, archives past renders, and serves them for local
// preview.
//
// Usage:
//
//	mkreport render <definition.yml>
//	mkreport serve
//
// See --help for all available options.
package main

// main is the entry point for mkreport.
func main() {
	Execute()
}
