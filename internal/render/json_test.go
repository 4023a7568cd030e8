package render

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mkreport/mkreport/internal/model"
)

// TestJSONEngine tests the JSON render engine.
func TestJSONEngine(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		doc, err := NewJSONEngine().Render(createTestReport(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed jsonNode
		if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Kind != "report" {
			t.Errorf("expected kind %q, got %q", "report", parsed.Kind)
		}
		if parsed.Title != "Test Report" {
			t.Errorf("expected title %q, got %q", "Test Report", parsed.Title)
		}
		if len(parsed.Children) != 2 {
			t.Fatalf("expected 2 children, got %d", len(parsed.Children))
		}
		if parsed.Children[0].Title != "Section #1" || parsed.Children[1].Title != "Section #2" {
			t.Error("expected children in insertion order")
		}
	})

	t.Run("serializes table with shape flags", func(t *testing.T) {
		t.Parallel()

		table := mustTable(t,
			[]string{"A"},
			[][]string{{"1"}},
			model.WithColumnStyle("A", model.TextStyle{Weight: model.WeightBold}),
		)

		doc, err := NewJSONEngine().Render(model.NewReport("T", table))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed jsonNode
		if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		node := parsed.Children[0]
		if node.Kind != "table" {
			t.Fatalf("expected table node, got %q", node.Kind)
		}
		if node.Header == nil || !*node.Header {
			t.Error("expected header flag true")
		}
		if node.Index == nil || *node.Index {
			t.Error("expected index flag false")
		}
		if node.Styles["A"].Weight != model.WeightBold {
			t.Error("expected bold column style for A")
		}
	})

	t.Run("serializes chart series", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("C",
			mustLineChart(t, "Kuku", "squares", []float64{1, 2, 3}, []float64{1, 4, 9}),
		)

		doc, err := NewJSONEngine().Render(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed jsonNode
		if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		node := parsed.Children[0]
		if node.Kind != "line_chart" {
			t.Fatalf("expected line_chart node, got %q", node.Kind)
		}
		if len(node.Series) != 1 || node.Series[0].Title != "squares" {
			t.Error("expected series with title squares")
		}
		if len(node.Series[0].Y) != 3 || node.Series[0].Y[2] != 9 {
			t.Error("expected series y values preserved")
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		doc, err := NewJSONEngine().Render(createTestReport(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(doc), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		doc, err := NewJSONEngine(WithPrettyPrint()).Render(createTestReport(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(doc), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})

	t.Run("custom prefix and indent", func(t *testing.T) {
		t.Parallel()

		doc, err := NewJSONEngine(WithIndent(">>", "\t")).Render(createTestReport(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(doc, ">>") {
			t.Error("expected custom prefix '>>' in output")
		}
		if !strings.Contains(doc, "\t") {
			t.Error("expected tab indentation in output")
		}
	})

	t.Run("rejects node kind without renderer", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("Outer", model.NewReport("Inner"))

		_, err := NewJSONEngine().Render(report)
		if !errors.Is(err, ErrUnsupportedNode) {
			t.Fatalf("expected ErrUnsupportedNode, got %v", err)
		}
	})

	t.Run("renders are deterministic", func(t *testing.T) {
		t.Parallel()

		report := createTestReport(t)
		e := NewJSONEngine()

		first, err := e.Render(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := e.Render(report)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first != second {
			t.Error("expected byte-identical output for identical input")
		}
	})
}
