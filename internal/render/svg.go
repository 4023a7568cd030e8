package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/mkreport/mkreport/internal/model"
)

// defaultChartColors is the series color palette, applied in order and
// recycled when a chart has more series than colors.
var defaultChartColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b",
}

// chartDims maps a chart size hint to pixel dimensions.
// Medium and large match the proportions of the HTML report layout;
// auto renders with medium dimensions and scales to its container.
func chartDims(size model.ChartSize) (width, height int) {
	switch size {
	case model.SizeSmall:
		return 360, 240
	case model.SizeLarge:
		return 700, 450
	case model.SizeMedium, model.SizeAuto:
		return 500, 350
	default:
		return 500, 350
	}
}

// svgPlot accumulates SVG markup for a single chart.
// All coordinates are formatted with fixed precision so that identical
// input data always produces byte-identical markup.
type svgPlot struct {
	b      strings.Builder
	width  int
	height int

	// plot area margins
	left, right, top, bottom int
}

// newSVGPlot opens an SVG document with the chart title and axis frame.
// When auto is true the SVG scales to its container via viewBox.
func newSVGPlot(title string, width, height int, auto bool) *svgPlot {
	p := &svgPlot{
		width:  width,
		height: height,
		left:   50,
		right:  20,
		top:    45,
		bottom: 30,
	}

	if auto {
		fmt.Fprintf(&p.b,
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="100%%" class="chart">`,
			width, height)
	} else {
		fmt.Fprintf(&p.b,
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" class="chart">`,
			width, height, width, height)
	}

	if title != "" {
		fmt.Fprintf(&p.b,
			`<text x="%d" y="20" text-anchor="middle" font-size="14" font-weight="bold">%s</text>`,
			width/2, template.HTMLEscapeString(title))
	}

	return p
}

// plotWidth returns the width of the data area in pixels.
func (p *svgPlot) plotWidth() float64 {
	return float64(p.width - p.left - p.right)
}

// plotHeight returns the height of the data area in pixels.
func (p *svgPlot) plotHeight() float64 {
	return float64(p.height - p.top - p.bottom)
}

// x maps a data value onto the horizontal pixel axis.
func (p *svgPlot) x(v, min, max float64) float64 {
	span := max - min
	if span == 0 {
		span = 1
	}
	return float64(p.left) + (v-min)/span*p.plotWidth()
}

// y maps a data value onto the vertical pixel axis. SVG y grows downward.
func (p *svgPlot) y(v, min, max float64) float64 {
	span := max - min
	if span == 0 {
		span = 1
	}
	return float64(p.height-p.bottom) - (v-min)/span*p.plotHeight()
}

// frame draws the x and y axis lines and their min/max labels.
func (p *svgPlot) frame(minX, maxX, minY, maxY float64, hasData bool) {
	bottom := p.height - p.bottom
	fmt.Fprintf(&p.b,
		`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="1"/>`,
		p.left, p.top, p.left, bottom)
	fmt.Fprintf(&p.b,
		`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="1"/>`,
		p.left, bottom, p.width-p.right, bottom)

	if !hasData {
		return
	}

	fmt.Fprintf(&p.b,
		`<text x="%d" y="%d" text-anchor="start" font-size="10">%s</text>`,
		p.left, bottom+15, fmtNum(minX))
	fmt.Fprintf(&p.b,
		`<text x="%d" y="%d" text-anchor="end" font-size="10">%s</text>`,
		p.width-p.right, bottom+15, fmtNum(maxX))
	fmt.Fprintf(&p.b,
		`<text x="%d" y="%d" text-anchor="end" font-size="10">%s</text>`,
		p.left-5, bottom, fmtNum(minY))
	fmt.Fprintf(&p.b,
		`<text x="%d" y="%d" text-anchor="end" font-size="10">%s</text>`,
		p.left-5, p.top+10, fmtNum(maxY))
}

// polyline draws a data series as a connected line.
func (p *svgPlot) polyline(points []string, color string) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(&p.b,
		`<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`,
		color, strings.Join(points, " "))
}

// bar draws a single vertical bar.
func (p *svgPlot) bar(x, y, w, h float64, color string) {
	fmt.Fprintf(&p.b,
		`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		fmtNum(x), fmtNum(y), fmtNum(w), fmtNum(h), color)
}

// legend draws a color swatch and label per series below the title.
// Series without a title are skipped.
func (p *svgPlot) legend(names []string, colors []string) {
	x := p.left
	for i, name := range names {
		if name == "" {
			continue
		}
		color := colors[i%len(colors)]
		fmt.Fprintf(&p.b,
			`<rect x="%d" y="28" width="10" height="10" fill="%s"/>`, x, color)
		fmt.Fprintf(&p.b,
			`<text x="%d" y="37" font-size="11">%s</text>`,
			x+14, template.HTMLEscapeString(name))
		x += 14 + 7*len(name) + 16
	}
}

// String closes and returns the SVG document.
func (p *svgPlot) String() string {
	return p.b.String() + "</svg>"
}

// fmtNum formats a coordinate or label value with fixed precision,
// dropping a trailing ".00" so axis labels stay readable.
func fmtNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	return strings.TrimSuffix(s, ".00")
}

// seriesBounds computes the data bounds across all given series.
// ok is false when no series contains any point.
func seriesBounds(series []model.DataSeries) (minX, maxX, minY, maxY float64, ok bool) {
	for _, s := range series {
		for i := range s.X() {
			x, y := s.X()[i], s.Y()[i]
			if !ok {
				minX, maxX, minY, maxY = x, x, y, y
				ok = true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return minX, maxX, minY, maxY, ok
}

// renderLineChartSVG renders a LineChart as a self-contained SVG fragment.
func renderLineChartSVG(c *model.LineChart, colors []string) string {
	w, h := chartDims(c.Size())
	p := newSVGPlot(c.Title(), w, h, c.Size() == model.SizeAuto)

	minX, maxX, minY, maxY, ok := seriesBounds(c.Series())
	p.frame(minX, maxX, minY, maxY, ok)

	names := make([]string, 0, len(c.Series()))
	for i, s := range c.Series() {
		names = append(names, s.Title())
		points := make([]string, 0, s.Len())
		for j := range s.X() {
			points = append(points, fmtNum(p.x(s.X()[j], minX, maxX))+","+fmtNum(p.y(s.Y()[j], minY, maxY)))
		}
		p.polyline(points, colors[i%len(colors)])
	}

	p.legend(names, colors)
	return p.String()
}

// renderBarChartSVG renders a BarChart as a self-contained SVG fragment.
// Bars are grouped by point index; the x values of the first series provide
// the category labels.
func renderBarChartSVG(c *model.BarChart, colors []string) string {
	w, h := chartDims(c.Size())
	p := newSVGPlot(c.Title(), w, h, c.Size() == model.SizeAuto)

	series := c.Series()
	slots := 0
	for _, s := range series {
		slots = max(slots, s.Len())
	}

	_, _, minY, maxY, ok := seriesBounds(series)
	// Bars are drawn from the zero line.
	minY = min(minY, 0)
	maxY = max(maxY, 0)
	p.frame(0, float64(max(slots-1, 0)), minY, maxY, ok)

	names := make([]string, 0, len(series))
	if slots > 0 {
		slotW := p.plotWidth() / float64(slots)
		barW := slotW * 0.8 / float64(len(series))
		zero := p.y(0, minY, maxY)

		for i, s := range series {
			names = append(names, s.Title())
			color := colors[i%len(colors)]
			for j := range s.X() {
				x := float64(p.left) + float64(j)*slotW + slotW*0.1 + float64(i)*barW
				top := p.y(s.Y()[j], minY, maxY)
				if top > zero {
					p.bar(x, zero, barW, top-zero, color)
				} else {
					p.bar(x, top, barW, zero-top, color)
				}
			}
		}

		// Category labels from the first series' x values.
		bottom := p.height - p.bottom
		for j := range series[0].X() {
			cx := float64(p.left) + float64(j)*slotW + slotW/2
			fmt.Fprintf(&p.b,
				`<text x="%s" y="%d" text-anchor="middle" font-size="10">%s</text>`,
				fmtNum(cx), bottom+15, fmtNum(series[0].X()[j]))
		}
	}

	p.legend(names, colors)
	return p.String()
}

// renderComboChartSVG renders a ComboChart: bar series against a secondary
// axis on the right, line series against the primary axis on the left.
func renderComboChartSVG(c *model.ComboChart, colors []string) string {
	w, h := chartDims(c.Size())
	p := newSVGPlot(c.Title(), w, h, c.Size() == model.SizeAuto)
	p.right = 50 // room for the secondary axis labels

	lineMinX, lineMaxX, lineMinY, lineMaxY, lineOK := seriesBounds(c.Lines())
	_, _, barMinY, barMaxY, barOK := seriesBounds(c.Bars())
	barMinY = min(barMinY, 0)
	barMaxY = max(barMaxY, 0)

	p.frame(lineMinX, lineMaxX, lineMinY, lineMaxY, lineOK)

	names := make([]string, 0, len(c.Bars())+len(c.Lines()))

	// Bars first so lines draw on top of them.
	slots := 0
	for _, s := range c.Bars() {
		slots = max(slots, s.Len())
	}
	if slots > 0 {
		slotW := p.plotWidth() / float64(slots)
		barW := slotW * 0.8 / float64(len(c.Bars()))
		zero := p.y(0, barMinY, barMaxY)

		for i, s := range c.Bars() {
			names = append(names, s.Title())
			color := colors[i%len(colors)]
			for j := range s.X() {
				x := float64(p.left) + float64(j)*slotW + slotW*0.1 + float64(i)*barW
				top := p.y(s.Y()[j], barMinY, barMaxY)
				if top > zero {
					p.bar(x, zero, barW, top-zero, color)
				} else {
					p.bar(x, top, barW, zero-top, color)
				}
			}
		}
	}

	for i, s := range c.Lines() {
		names = append(names, s.Title())
		color := colors[(len(c.Bars())+i)%len(colors)]
		points := make([]string, 0, s.Len())
		for j := range s.X() {
			points = append(points, fmtNum(p.x(s.X()[j], lineMinX, lineMaxX))+","+fmtNum(p.y(s.Y()[j], lineMinY, lineMaxY)))
		}
		p.polyline(points, color)
	}

	if barOK {
		bottom := p.height - p.bottom
		fmt.Fprintf(&p.b,
			`<text x="%d" y="%d" text-anchor="start" font-size="10">%s</text>`,
			p.width-p.right+5, bottom, fmtNum(barMinY))
		fmt.Fprintf(&p.b,
			`<text x="%d" y="%d" text-anchor="start" font-size="10">%s</text>`,
			p.width-p.right+5, p.top+10, fmtNum(barMaxY))
	}

	p.legend(names, colors)
	return p.String()
}
