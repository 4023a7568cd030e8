// Package model defines the report tree: a declarative, immutable document
// structure built by callers and consumed by the render engines.
//
// A tree is rooted at a Report and contains Sections, which in turn contain
// Tables, Charts, Boxes, or nested Sections. Child order is preserved
// end-to-end: insertion order equals render order.
//
// Design decision: Node kinds form a closed set (Report, Section, Box, Table,
// LineChart, BarChart, ComboChart) sealed by an unexported marker method.
// Engines dispatch with a type switch over this set rather than reflection,
// so an engine that encounters a kind it cannot handle fails with an explicit
// unsupported-node error instead of silently skipping content.
//
// Structural validation happens at construction time, not render time:
// a Table rejects ragged rows, a Chart rejects an empty series list, and a
// DataSeries rejects mismatched coordinate lengths. A tree that constructs
// successfully always has a well-defined rendering.
package model
