package render

import (
	"encoding/json"
	"fmt"

	"github.com/mkreport/mkreport/internal/model"
)

// JSONEngine renders a report tree into JSON.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We serialize an explicit view of the tree with a "kind"
// discriminator per node rather than marshaling the model types directly.
// This keeps the wire format stable when the model grows internal fields,
// and map keys marshal in sorted order, so output stays deterministic.
type JSONEngine struct {
	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONOption configures a JSONEngine.
type JSONOption func(*JSONEngine)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONOption {
	return func(e *JSONEngine) {
		e.indent = true
		e.indentPrefix = prefix
		e.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONOption {
	return func(e *JSONEngine) {
		e.indent = true
		e.indentPrefix = ""
		e.indentString = "  "
	}
}

// NewJSONEngine creates a JSONEngine.
func NewJSONEngine(opts ...JSONOption) *JSONEngine {
	e := &JSONEngine{}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name returns "json".
func (e *JSONEngine) Name() string {
	return "json"
}

// jsonNode is the serialized form of a single tree node.
// Fields are populated per kind; unused fields are omitted.
type jsonNode struct {
	Kind        string               `json:"kind"`
	Title       string               `json:"title,omitempty"`
	Orientation string               `json:"orientation,omitempty"`
	Size        string               `json:"size,omitempty"`
	Columns     []string             `json:"columns,omitempty"`
	Rows        [][]string           `json:"rows,omitempty"`
	Header      *bool                `json:"header,omitempty"`
	Index       *bool                `json:"index,omitempty"`
	Styles      map[string]jsonStyle `json:"column_styles,omitempty"`
	Series      []jsonSeries         `json:"series,omitempty"`
	Bars        []jsonSeries         `json:"bars,omitempty"`
	Lines       []jsonSeries         `json:"lines,omitempty"`
	Children    []jsonNode           `json:"children,omitempty"`
}

// jsonSeries is the serialized form of a DataSeries.
type jsonSeries struct {
	Title string    `json:"title,omitempty"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// jsonStyle is the serialized form of a TextStyle.
type jsonStyle struct {
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Align  string `json:"align,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Render renders the report into a JSON document with a trailing newline.
func (e *JSONEngine) Render(report *model.Report) (string, error) {
	children, err := e.buildChildren(report.Children())
	if err != nil {
		return "", err
	}

	root := jsonNode{
		Kind:     "report",
		Title:    report.Title(),
		Children: children,
	}

	var data []byte
	if e.indent {
		data, err = json.MarshalIndent(root, e.indentPrefix, e.indentString)
	} else {
		data, err = json.Marshal(root)
	}
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(report), err)
	}

	return string(data) + "\n", nil
}

// buildChildren serializes a node list in order.
func (e *JSONEngine) buildChildren(children []model.Node) ([]jsonNode, error) {
	out := make([]jsonNode, 0, len(children))
	for _, child := range children {
		node, err := e.buildNode(child)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

// buildNode serializes a single node.
func (e *JSONEngine) buildNode(n model.Node) (jsonNode, error) {
	switch v := n.(type) {
	case *model.Section:
		children, err := e.buildChildren(v.Children())
		if err != nil {
			return jsonNode{}, fmt.Errorf("in %s: %w", describeNode(v), err)
		}
		return jsonNode{Kind: "section", Title: v.Title(), Children: children}, nil

	case *model.Box:
		children, err := e.buildChildren(v.Children())
		if err != nil {
			return jsonNode{}, fmt.Errorf("in %s: %w", describeNode(v), err)
		}
		return jsonNode{
			Kind:        "box",
			Orientation: string(v.Orientation()),
			Children:    children,
		}, nil

	case *model.Table:
		return e.buildTable(v), nil

	case *model.LineChart:
		return jsonNode{
			Kind:   "line_chart",
			Title:  v.Title(),
			Size:   string(v.Size()),
			Series: buildSeries(v.Series()),
		}, nil

	case *model.BarChart:
		return jsonNode{
			Kind:   "bar_chart",
			Title:  v.Title(),
			Size:   string(v.Size()),
			Series: buildSeries(v.Series()),
		}, nil

	case *model.ComboChart:
		return jsonNode{
			Kind:  "combo_chart",
			Title: v.Title(),
			Size:  string(v.Size()),
			Bars:  buildSeries(v.Bars()),
			Lines: buildSeries(v.Lines()),
		}, nil

	default:
		return jsonNode{}, unsupported("json", n)
	}
}

// buildTable serializes a tabular node.
func (e *JSONEngine) buildTable(t *model.Table) jsonNode {
	header := t.Header()
	index := t.Index()

	node := jsonNode{
		Kind:    "table",
		Title:   t.Title(),
		Columns: t.Columns(),
		Rows:    t.Rows(),
		Header:  &header,
		Index:   &index,
	}

	for _, col := range t.Columns() {
		style := t.ColumnStyle(col)
		if style.IsZero() {
			continue
		}
		if node.Styles == nil {
			node.Styles = make(map[string]jsonStyle)
		}
		node.Styles[col] = jsonStyle{
			Size:   style.Size,
			Weight: style.Weight,
			Align:  style.Align,
			Color:  style.Color,
		}
	}

	return node
}

// buildSeries serializes a series list.
func buildSeries(series []model.DataSeries) []jsonSeries {
	out := make([]jsonSeries, 0, len(series))
	for _, s := range series {
		out = append(out, jsonSeries{
			Title: s.Title(),
			X:     s.X(),
			Y:     s.Y(),
		})
	}
	return out
}
