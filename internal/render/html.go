package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mkreport/mkreport/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// HTMLEngine renders a report tree into a single self-contained HTML
// document. Sections become nested headings, tables become styled grids,
// and charts are embedded as inline SVG so the document needs no external
// resources or scripts.
//
// Design decision: Templates live in an embedded filesystem rather than
// string literals so the markup can be read and edited as markup. Charts
// are rendered as SVG directly instead of delegating to a JavaScript
// charting library; this keeps output deterministic and viewable offline.
type HTMLEngine struct {
	tmpl *template.Template

	// colors is the chart series color palette.
	colors []string

	// generatedAt is the preformatted footer timestamp.
	// Empty means no footer, keeping output deterministic.
	generatedAt string
}

// HTMLOption configures an HTMLEngine.
type HTMLOption func(*HTMLEngine)

// WithGeneratedAt adds a footer with the given generation timestamp.
// Without this option two renders of an identical tree are byte-identical.
func WithGeneratedAt(t time.Time) HTMLOption {
	return func(e *HTMLEngine) {
		e.generatedAt = t.UTC().Format(time.RFC3339)
	}
}

// WithChartColors overrides the chart series color palette.
// Colors are applied to series in order and recycled when exhausted.
func WithChartColors(colors ...string) HTMLOption {
	return func(e *HTMLEngine) {
		if len(colors) > 0 {
			e.colors = colors
		}
	}
}

// NewHTMLEngine creates an HTMLEngine.
func NewHTMLEngine(opts ...HTMLOption) *HTMLEngine {
	e := &HTMLEngine{
		tmpl:   template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
		colors: defaultChartColors,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name returns "html".
func (e *HTMLEngine) Name() string {
	return "html"
}

// documentView is the data passed to the document shell template.
type documentView struct {
	Title       string
	Body        template.HTML
	GeneratedAt string
}

// Render renders the report into a complete HTML document.
func (e *HTMLEngine) Render(report *model.Report) (string, error) {
	body, err := e.renderChildren(report.Children(), 2)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = e.tmpl.ExecuteTemplate(&buf, "document.html.tmpl", documentView{
		Title:       report.Title(),
		Body:        body,
		GeneratedAt: e.generatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(report), err)
	}

	return buf.String(), nil
}

// renderChildren renders a node list in order and concatenates the fragments.
// level is the heading level nested sections render at.
func (e *HTMLEngine) renderChildren(children []model.Node, level int) (template.HTML, error) {
	var sb strings.Builder
	for _, child := range children {
		fragment, err := e.renderNode(child, level)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(fragment))
	}
	return template.HTML(sb.String()), nil //nolint:gosec // fragments are template output or escaped SVG
}

// renderNode renders a single node into an HTML fragment.
func (e *HTMLEngine) renderNode(n model.Node, level int) (template.HTML, error) {
	switch v := n.(type) {
	case *model.Section:
		return e.renderSection(v, level)
	case *model.Box:
		return e.renderBox(v, level)
	case *model.Table:
		return e.renderTable(v)
	case *model.LineChart:
		return template.HTML(renderLineChartSVG(v, e.colors)), nil //nolint:gosec // SVG text is escaped by the plot builder
	case *model.BarChart:
		return template.HTML(renderBarChartSVG(v, e.colors)), nil //nolint:gosec // SVG text is escaped by the plot builder
	case *model.ComboChart:
		return template.HTML(renderComboChartSVG(v, e.colors)), nil //nolint:gosec // SVG text is escaped by the plot builder
	default:
		return "", unsupported("html", n)
	}
}

// sectionView is the data passed to the section template.
type sectionView struct {
	Heading template.HTML
	Body    template.HTML
}

// renderSection renders a titled section with its children.
func (e *HTMLEngine) renderSection(s *model.Section, level int) (template.HTML, error) {
	body, err := e.renderChildren(s.Children(), level+1)
	if err != nil {
		return "", fmt.Errorf("in %s: %w", describeNode(s), err)
	}

	// Heading tags only go down to h6; deeper nesting stays at h6.
	h := min(level, 6)
	var heading template.HTML
	if s.Title() != "" {
		heading = template.HTML(fmt.Sprintf("<h%d>%s</h%d>", //nolint:gosec // title is escaped
			h, template.HTMLEscapeString(s.Title()), h))
	}

	var buf bytes.Buffer
	err = e.tmpl.ExecuteTemplate(&buf, "section.html.tmpl", sectionView{
		Heading: heading,
		Body:    body,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(s), err)
	}

	return template.HTML(buf.String()), nil //nolint:gosec // template output
}

// boxView is the data passed to the box template.
type boxView struct {
	Orientation string
	Items       []template.HTML
}

// renderBox renders a content group. Children keep the current heading level.
func (e *HTMLEngine) renderBox(b *model.Box, level int) (template.HTML, error) {
	items := make([]template.HTML, 0, len(b.Children()))
	for _, child := range b.Children() {
		fragment, err := e.renderNode(child, level)
		if err != nil {
			return "", fmt.Errorf("in %s: %w", describeNode(b), err)
		}
		items = append(items, fragment)
	}

	var buf bytes.Buffer
	err := e.tmpl.ExecuteTemplate(&buf, "box.html.tmpl", boxView{
		Orientation: string(b.Orientation()),
		Items:       items,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(b), err)
	}

	return template.HTML(buf.String()), nil //nolint:gosec // template output
}

// columnView is a single header cell in the table template.
type columnView struct {
	Name  string
	Style template.CSS
}

// cellView is a single body cell in the table template.
type cellView struct {
	Value string
	Style template.CSS
}

// rowView is a single body row in the table template.
type rowView struct {
	Number int
	Cells  []cellView
}

// tableView is the data passed to the table template.
type tableView struct {
	Title   string
	Header  bool
	Index   bool
	Columns []columnView
	Rows    []rowView
}

// renderTable renders a tabular node. Column styles become inline CSS on
// every cell of the column, mirroring how the style hints are defined.
func (e *HTMLEngine) renderTable(t *model.Table) (template.HTML, error) {
	view := tableView{
		Title:   t.Title(),
		Header:  t.Header(),
		Index:   t.Index(),
		Columns: make([]columnView, 0, len(t.Columns())),
		Rows:    make([]rowView, 0, len(t.Rows())),
	}

	styles := make([]template.CSS, len(t.Columns()))
	for i, col := range t.Columns() {
		styles[i] = styleCSS(t.ColumnStyle(col))
		view.Columns = append(view.Columns, columnView{Name: col, Style: styles[i]})
	}

	for i, row := range t.Rows() {
		cells := make([]cellView, 0, len(row))
		for j, value := range row {
			cells = append(cells, cellView{Value: value, Style: styles[j]})
		}
		view.Rows = append(view.Rows, rowView{Number: i + 1, Cells: cells})
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "table.html.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering %s: %w", describeNode(t), err)
	}

	return template.HTML(buf.String()), nil //nolint:gosec // template output
}

// styleCSS converts a TextStyle into an inline CSS declaration list.
// The zero style converts to the empty string.
func styleCSS(s model.TextStyle) template.CSS {
	if s.IsZero() {
		return ""
	}

	parts := make([]string, 0, 4)
	if s.Weight != "" {
		parts = append(parts, "font-weight: "+s.Weight)
	}
	if s.Size != "" {
		parts = append(parts, "font-size: "+s.Size)
	}
	if s.Align != "" {
		parts = append(parts, "text-align: "+s.Align)
	}
	if s.Color != "" {
		parts = append(parts, "color: "+s.Color)
	}

	return template.CSS(strings.Join(parts, "; ")) //nolint:gosec // values come from typed style fields
}
