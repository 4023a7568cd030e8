package model

// Section is a titled grouping of report content. Sections may nest; the
// nesting depth determines the heading level when rendered.
//
// Design decision: Nesting depth is computed by the engines during traversal
// rather than stored on the node. Storing it would require mutating the tree
// before rendering, and the tree is immutable once constructed.
type Section struct {
	title    string
	children []Node
}

// NewSection creates a Section with the given title and children.
// Children render in the order given.
func NewSection(title string, children ...Node) *Section {
	return &Section{
		title:    title,
		children: children,
	}
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.title
}

// Children returns the section's children in insertion order.
// The returned slice must not be modified.
func (s *Section) Children() []Node {
	return s.children
}

func (s *Section) node() {}

// Report is the root of a report tree. It carries the document title and an
// ordered sequence of top-level content, typically Sections.
//
// A Report is built once by the caller, handed to an engine, and discarded
// after rendering. It has no identity beyond the in-memory reference and is
// never mutated by the engines, so a single tree can safely be rendered by
// multiple engines concurrently.
type Report struct {
	title    string
	children []Node
}

// NewReport creates a Report with the given title and top-level content.
// A Report with no children is valid and renders an empty document shell.
func NewReport(title string, children ...Node) *Report {
	return &Report{
		title:    title,
		children: children,
	}
}

// Title returns the report title.
func (r *Report) Title() string {
	return r.title
}

// Children returns the report's top-level content in insertion order.
// The returned slice must not be modified.
func (r *Report) Children() []Node {
	return r.children
}

func (r *Report) node() {}
