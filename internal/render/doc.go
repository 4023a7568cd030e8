// Package render turns a report tree into a serialized document.
//
// This package contains one engine per output format:
//   - HTMLEngine: self-contained HTML with inline SVG charts
//   - MarkdownEngine: GitHub Flavored Markdown with mermaid charts
//   - JSONEngine: structured JSON for tool integration
//
// Design decision: We separate rendering from the tree data structures
// (which are in the model package) to follow the single responsibility
// principle. New output formats can be added without modifying the core
// data structures.
//
// Engines implement the Engine interface, allowing them to be used
// interchangeably and composed for multi-format output. Rendering is
// all-or-nothing: an engine buffers the whole document internally and
// nothing reaches the caller's writer on failure.
package render
