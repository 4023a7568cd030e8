package model

// Node is a single item of report content.
//
// The set of implementations is closed: Report, Section, Box, Table,
// LineChart, BarChart, and ComboChart. The unexported marker method prevents
// outside packages from adding kinds the engines do not know how to render.
type Node interface {
	// node seals the interface to this package.
	node()
}

// Orientation controls how a Box lays out its children.
type Orientation string

// Box orientations.
const (
	// Vertical stacks children top to bottom. This is the default.
	Vertical Orientation = "vertical"

	// Horizontal places children side by side.
	Horizontal Orientation = "horizontal"
)

// Box groups content without introducing a heading. It is used to place
// related content together, for example two charts side by side.
type Box struct {
	orientation Orientation
	children    []Node
}

// BoxOption configures a Box.
type BoxOption func(*Box)

// WithOrientation sets the layout direction of the Box.
func WithOrientation(o Orientation) BoxOption {
	return func(b *Box) {
		b.orientation = o
	}
}

// NewBox creates a Box grouping the given children.
// The default orientation is Vertical.
func NewBox(children []Node, opts ...BoxOption) *Box {
	b := &Box{
		orientation: Vertical,
		children:    append([]Node(nil), children...),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Orientation returns the layout direction of the Box.
func (b *Box) Orientation() Orientation {
	return b.orientation
}

// Children returns the Box's children in insertion order.
// The returned slice must not be modified.
func (b *Box) Children() []Node {
	return b.children
}

func (b *Box) node() {}
