package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/mkreport/mkreport/internal/model"
)

// ErrUnsupportedNode is returned when an engine encounters a node kind it has
// no renderer for. The error is wrapped with a description of the offending
// node so the caller can locate it in the tree.
var ErrUnsupportedNode = errors.New("no renderer for node kind")

// Engine renders a report tree into one concrete output format.
//
// Engines are stateless with respect to the input: rendering is read-only
// over the tree, so a single tree can be rendered by multiple engines
// concurrently. Two renders of an identical tree produce byte-identical
// output unless an engine is explicitly configured otherwise.
type Engine interface {
	// Name returns the short format name, e.g. "html" or "markdown".
	Name() string

	// Render renders the report into a complete document.
	// On error no partial document is returned.
	Render(report *model.Report) (string, error)
}

// RenderTo renders the report with the given engine and writes the document
// to w. Returns the number of bytes written. Nothing is written on render
// failure.
func RenderTo(w io.Writer, e Engine, report *model.Report) (int, error) {
	doc, err := e.Render(report)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, doc)
}

// Target pairs an engine with its output destination for multi-format
// rendering.
type Target struct {
	// Engine renders the report for this target.
	Engine Engine

	// Output receives the rendered document.
	Output io.Writer
}

// MultiEngine renders one report tree into several formats at once.
// This is useful for writing a terminal summary and an HTML file from the
// same render call.
//
// Design decision: We implement this as a separate type rather than an
// Engine because each target produces a different document; there is no
// single output string to return.
type MultiEngine struct {
	targets []Target
}

// NewMultiEngine creates a MultiEngine rendering to all given targets.
func NewMultiEngine(targets ...Target) *MultiEngine {
	return &MultiEngine{targets: targets}
}

// Render renders the report to every target in order.
// Returns the total bytes written across all targets.
// Stops on the first error encountered.
func (m *MultiEngine) Render(report *model.Report) (int, error) {
	var total int
	for _, t := range m.targets {
		n, err := RenderTo(t.Output, t.Engine, report)
		total += n
		if err != nil {
			return total, fmt.Errorf("%s: %w", t.Engine.Name(), err)
		}
	}
	return total, nil
}

// describeNode returns a short human-readable description of a node for
// error messages, e.g. `table "Totals"` or `section "Sales"`.
func describeNode(n model.Node) string {
	switch v := n.(type) {
	case *model.Report:
		return fmt.Sprintf("report %q", v.Title())
	case *model.Section:
		return fmt.Sprintf("section %q", v.Title())
	case *model.Box:
		return fmt.Sprintf("%s box", v.Orientation())
	case *model.Table:
		if v.Title() != "" {
			return fmt.Sprintf("table %q", v.Title())
		}
		return "table"
	case *model.LineChart:
		return fmt.Sprintf("line chart %q", v.Title())
	case *model.BarChart:
		return fmt.Sprintf("bar chart %q", v.Title())
	case *model.ComboChart:
		return fmt.Sprintf("combo chart %q", v.Title())
	case nil:
		return "nil node"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// unsupported returns an ErrUnsupportedNode wrapped with the node description
// and the engine name.
func unsupported(engine string, n model.Node) error {
	return fmt.Errorf("%w: %s engine cannot render %s", ErrUnsupportedNode, engine, describeNode(n))
}
