package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/mkreport/mkreport/internal/model"
)

// MarkdownEngine renders a report tree into GitHub Flavored Markdown.
// This format is designed for documentation and sharing: tables become
// markdown tables and charts become mermaid code blocks that GitHub and
// most markdown viewers render inline.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. Mermaid code block support for chart embedding
type MarkdownEngine struct{}

// NewMarkdownEngine creates a MarkdownEngine.
func NewMarkdownEngine() *MarkdownEngine {
	return &MarkdownEngine{}
}

// Name returns "markdown".
func (e *MarkdownEngine) Name() string {
	return "markdown"
}

// Render renders the report into a complete Markdown document.
func (e *MarkdownEngine) Render(report *model.Report) (string, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1(report.Title())
	md.PlainText("")

	if err := e.writeChildren(md, report.Children(), 2); err != nil {
		return "", err
	}

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(report), err)
	}

	return buf.String(), nil
}

// writeChildren writes a node list in order at the given heading depth.
func (e *MarkdownEngine) writeChildren(md *markdown.Markdown, children []model.Node, depth int) error {
	for _, child := range children {
		if err := e.writeNode(md, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// writeNode writes a single node.
func (e *MarkdownEngine) writeNode(md *markdown.Markdown, n model.Node, depth int) error {
	switch v := n.(type) {
	case *model.Section:
		return e.writeSection(md, v, depth)
	case *model.Box:
		// Markdown is linear; orientation has no rendering here.
		if err := e.writeChildren(md, v.Children(), depth); err != nil {
			return fmt.Errorf("in %s: %w", describeNode(v), err)
		}
		return nil
	case *model.Table:
		e.writeTable(md, v)
		return nil
	case *model.LineChart:
		e.writeChart(md, v.Title(), nil, v.Series())
		return nil
	case *model.BarChart:
		e.writeChart(md, v.Title(), v.Series(), nil)
		return nil
	case *model.ComboChart:
		e.writeChart(md, v.Title(), v.Bars(), v.Lines())
		return nil
	default:
		return unsupported("markdown", n)
	}
}

// writeSection writes a section heading and its children.
// Depth 2 renders as H2; deeper sections emit raw heading markers because
// markdown stops at six levels anyway.
func (e *MarkdownEngine) writeSection(md *markdown.Markdown, s *model.Section, depth int) error {
	if s.Title() != "" {
		if depth <= 2 {
			md.H2(s.Title())
		} else {
			md.PlainText(strings.Repeat("#", min(depth, 6)) + " " + s.Title())
		}
		md.PlainText("")
	}

	if err := e.writeChildren(md, s.Children(), depth+1); err != nil {
		return fmt.Errorf("in %s: %w", describeNode(s), err)
	}
	return nil
}

// writeTable writes a tabular node as a markdown table.
// Markdown tables always carry a header row, so a table constructed without
// a header still shows its column names.
func (e *MarkdownEngine) writeTable(md *markdown.Markdown, t *model.Table) {
	if t.Title() != "" {
		md.PlainTextf("**%s**", t.Title())
		md.PlainText("")
	}

	header := append([]string(nil), t.Columns()...)
	if t.Index() {
		header = append([]string{"#"}, header...)
	}

	rows := make([][]string, 0, len(t.Rows()))
	for i, row := range t.Rows() {
		cells := append([]string(nil), row...)
		if t.Index() {
			cells = append([]string{strconv.Itoa(i + 1)}, cells...)
		}
		rows = append(rows, cells)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})
	md.PlainText("")
}

// writeChart writes a chart as a mermaid xychart code block.
// Mermaid xycharts have no legend, so series titles are listed before the
// chart.
func (e *MarkdownEngine) writeChart(md *markdown.Markdown, title string, bars, lines []model.DataSeries) {
	var names []string
	for _, s := range append(append([]model.DataSeries{}, bars...), lines...) {
		if s.Title() != "" {
			names = append(names, s.Title())
		}
	}
	if len(names) > 0 {
		md.PlainTextf("*Series: %s*", strings.Join(names, ", "))
		md.PlainText("")
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, xyChart(title, bars, lines))
	md.PlainText("")
}

// xyChart builds mermaid xychart-beta text for the given bar and line series.
func xyChart(title string, bars, lines []model.DataSeries) string {
	var sb strings.Builder
	sb.WriteString("xychart-beta\n")
	if title != "" {
		fmt.Fprintf(&sb, "    title %q\n", title)
	}

	// The x axis comes from the first series that has points.
	for _, s := range append(append([]model.DataSeries{}, bars...), lines...) {
		if s.Len() > 0 {
			fmt.Fprintf(&sb, "    x-axis [%s]\n", joinNums(s.X()))
			break
		}
	}

	for _, s := range bars {
		fmt.Fprintf(&sb, "    bar [%s]\n", joinNums(s.Y()))
	}
	for _, s := range lines {
		fmt.Fprintf(&sb, "    line [%s]\n", joinNums(s.Y()))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// joinNums formats values as a comma-separated list.
func joinNums(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmtNum(v))
	}
	return strings.Join(parts, ", ")
}
