package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkreport/mkreport/internal/model"
)

// TestLoadDefinition tests loading definition files from disk.
func TestLoadDefinition(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid definition file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.yml")
		doc := `title: Quarterly Report
content:
  - kind: section
    title: Revenue
    content:
      - kind: table
        columns: [Region, Total]
        rows:
          - [North, "120"]
          - [South, "95"]
`
		if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
			t.Fatalf("failed to write definition: %v", err)
		}

		def, err := LoadDefinition(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if def.Title != "Quarterly Report" {
			t.Errorf("expected title %q, got %q", "Quarterly Report", def.Title)
		}
		if len(def.Content) != 1 || def.Content[0].Kind != "section" {
			t.Fatal("expected one section entry")
		}
	})

	t.Run("returns ErrDefinitionNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDefinition(filepath.Join(t.TempDir(), "missing.yml"))
		if !errors.Is(err, ErrDefinitionNotFound) {
			t.Errorf("expected ErrDefinitionNotFound, got %v", err)
		}
	})

	t.Run("returns error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.yml")
		if err := os.WriteFile(path, []byte("title: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write definition: %v", err)
		}

		if _, err := LoadDefinition(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

// TestDefinitionBuild tests converting definitions into report trees.
func TestDefinitionBuild(t *testing.T) {
	t.Parallel()

	t.Run("builds nested sections in order", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{Kind: "section", Title: "First"},
				{Kind: "section", Title: "Second", Content: []ContentDef{
					{Kind: "section", Title: "Inner"},
				}},
			},
		}

		report, err := def.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		children := report.Children()
		if len(children) != 2 {
			t.Fatalf("expected 2 children, got %d", len(children))
		}
		first, ok := children[0].(*model.Section)
		if !ok || first.Title() != "First" {
			t.Error("expected first section in place")
		}
		second, ok := children[1].(*model.Section)
		if !ok || second.Title() != "Second" {
			t.Fatal("expected second section in place")
		}
		if len(second.Children()) != 1 {
			t.Error("expected nested section to be built")
		}
	})

	t.Run("builds box with horizontal orientation", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{Kind: "box", Orientation: "horizontal", Content: []ContentDef{
					{Kind: "table", Columns: []string{"A"}, Rows: [][]string{{"1"}}},
				}},
			},
		}

		report, err := def.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		box, ok := report.Children()[0].(*model.Box)
		if !ok {
			t.Fatal("expected a box node")
		}
		if box.Orientation() != model.Horizontal {
			t.Error("expected horizontal orientation")
		}
	})

	t.Run("builds table with flags and styles", func(t *testing.T) {
		t.Parallel()

		noHeader := false
		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{
					Kind:    "table",
					Title:   "Totals",
					Columns: []string{"Region", "Total"},
					Rows:    [][]string{{"North", "120"}},
					Header:  &noHeader,
					Index:   true,
					Styles: map[string]StyleDef{
						"Total": {Weight: "bold", Align: "right"},
					},
				},
			},
		}

		report, err := def.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		table, ok := report.Children()[0].(*model.Table)
		if !ok {
			t.Fatal("expected a table node")
		}
		if table.Title() != "Totals" {
			t.Errorf("expected title %q, got %q", "Totals", table.Title())
		}
		if table.Header() {
			t.Error("expected header to be disabled")
		}
		if !table.Index() {
			t.Error("expected index column to be enabled")
		}
		if style := table.ColumnStyle("Total"); style.Weight != model.WeightBold {
			t.Error("expected bold style on Total column")
		}
	})

	t.Run("builds charts with size hints", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{
					Kind:   "line_chart",
					Title:  "Growth",
					Size:   "large",
					Series: []SeriesDef{{Title: "s", X: []float64{1, 2}, Y: []float64{3, 4}}},
				},
				{
					Kind:   "bar_chart",
					Title:  "Volume",
					Series: []SeriesDef{{Title: "v", X: []float64{1}, Y: []float64{2}}},
				},
				{
					Kind:  "combo_chart",
					Title: "Market",
					Bars:  []SeriesDef{{Title: "b", X: []float64{1}, Y: []float64{2}}},
					Lines: []SeriesDef{{Title: "l", X: []float64{1}, Y: []float64{3}}},
				},
			},
		}

		report, err := def.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		line, ok := report.Children()[0].(*model.LineChart)
		if !ok {
			t.Fatal("expected a line chart node")
		}
		if line.Size() != model.SizeLarge {
			t.Error("expected large size hint")
		}
		if _, ok := report.Children()[1].(*model.BarChart); !ok {
			t.Error("expected a bar chart node")
		}
		combo, ok := report.Children()[2].(*model.ComboChart)
		if !ok {
			t.Fatal("expected a combo chart node")
		}
		if len(combo.Bars()) != 1 || len(combo.Lines()) != 1 {
			t.Error("expected one bar and one line series")
		}
	})

	t.Run("rejects entry without kind", func(t *testing.T) {
		t.Parallel()

		def := &Definition{Title: "R", Content: []ContentDef{{Title: "no kind"}}}

		_, err := def.Build()
		if !errors.Is(err, ErrMissingKind) {
			t.Errorf("expected ErrMissingKind, got %v", err)
		}
	})

	t.Run("rejects unknown kind with position", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{Kind: "section", Title: "ok"},
				{Kind: "pie_chart"},
			},
		}

		_, err := def.Build()
		if !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("expected ErrUnknownKind, got %v", err)
		}
		if !strings.Contains(err.Error(), "content[1]") {
			t.Errorf("expected position in error, got %q", err.Error())
		}
	})

	t.Run("rejects unknown orientation", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title:   "R",
			Content: []ContentDef{{Kind: "box", Orientation: "diagonal"}},
		}

		_, err := def.Build()
		if !errors.Is(err, ErrUnknownOrientation) {
			t.Errorf("expected ErrUnknownOrientation, got %v", err)
		}
	})

	t.Run("rejects unknown chart size", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{
					Kind:   "line_chart",
					Size:   "gigantic",
					Series: []SeriesDef{{Title: "s", X: []float64{1}, Y: []float64{1}}},
				},
			},
		}

		_, err := def.Build()
		if !errors.Is(err, ErrUnknownSize) {
			t.Errorf("expected ErrUnknownSize, got %v", err)
		}
	})

	t.Run("propagates model validation errors", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{
					Kind:    "table",
					Columns: []string{"A", "B"},
					Rows:    [][]string{{"only one"}},
				},
			},
		}

		_, err := def.Build()
		if !errors.Is(err, model.ErrRaggedRow) {
			t.Errorf("expected ErrRaggedRow, got %v", err)
		}
	})

	t.Run("rejects mismatched series lengths", func(t *testing.T) {
		t.Parallel()

		def := &Definition{
			Title: "R",
			Content: []ContentDef{
				{
					Kind:   "line_chart",
					Series: []SeriesDef{{Title: "s", X: []float64{1, 2}, Y: []float64{1}}},
				},
			},
		}

		_, err := def.Build()
		if !errors.Is(err, model.ErrSeriesLength) {
			t.Errorf("expected ErrSeriesLength, got %v", err)
		}
	})

	t.Run("builds empty definition", func(t *testing.T) {
		t.Parallel()

		def := &Definition{Title: "Empty"}

		report, err := def.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Children()) != 0 {
			t.Error("expected no children")
		}
	})
}
