package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/roadmap/core/agg"
	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
)

// Slide geometry in pixels.
const (
	slideGap        = 24
	slideMargin     = 30
	laneLabelColumn = 150
	headerTop       = 78
	headerRowHeight = 18
	laneTop         = headerTop + 3*headerRowHeight + 6
	laneScale       = 0.5 // slide px per layout row px
	stackStep       = 25  // slide px per vertical offset
	baselineInset   = 18
	markerSize      = 7
	labelDrop       = markerSize + 10 // marker center to label baseline
	labelDescent    = 6
	maxDeckLabel    = 24
)

// Deck colors besides the milestone kinds.
const (
	deckBackground = "#FFFFFF"
	deckBorder     = "#D0D0D0"
	deckText       = "#222222"
	deckMuted      = "#666666"
	deckLaneFill   = "#F5F5F5"
	deckHeaderFill = "#E8EEF7"
)

// deckTitle returns the configured title or the default one.
func deckTitle(cfg *contract.Config) string {
	if cfg.Title == "" {
		return contract.DefaultTitle
	}
	return cfg.Title
}

// slide is one frame of the deck, drawn in local coordinates.
type slide struct {
	height int
	body   strings.Builder
}

// deck collects slides that are stacked into a single SVG document.
type deck struct {
	width     int
	minHeight int
	slides    []*slide
}

// newDeck sizes a deck from the config, falling back to 16:9 defaults.
func newDeck(cfg *contract.Config) *deck {
	width, height := cfg.SlideWidth, cfg.SlideHeight
	if width <= 0 {
		width = contract.DefaultSlideWidth
	}
	if height <= 0 {
		height = contract.DefaultSlideHeight
	}
	return &deck{width: width, minHeight: height}
}

// addSlide appends a slide at least minHeight tall.
func (d *deck) addSlide(height int) *slide {
	s := &slide{height: max(height, d.minHeight)}
	d.slides = append(d.slides, s)
	return s
}

// render writes the whole deck as one SVG document.
func (d *deck) render(w io.Writer) error {
	total := 0
	for i, s := range d.slides {
		if i > 0 {
			total += slideGap
		}
		total += s.height
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" font-family="Helvetica, Arial, sans-serif">
`, d.width, total, d.width, total)

	y := 0
	for i, s := range d.slides {
		fmt.Fprintf(&svg, `<g id="slide-%d" transform="translate(0,%d)">`+"\n", i+1, y)
		fmt.Fprintf(&svg, `<rect width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n", d.width, s.height, deckBackground, deckBorder)
		svg.WriteString(s.body.String())
		svg.WriteString("</g>\n")
		y += s.height + slideGap
	}
	svg.WriteString("</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

// text draws a text element; content is escaped.
func (s *slide) text(x, y float64, size int, fill, anchor, weight, content string) {
	fmt.Fprintf(&s.body, `<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="%s" font-weight="%s">%s</text>`+"\n",
		x, y, size, fill, anchor, weight, escapeXML(content))
}

// rect draws a filled rectangle.
func (s *slide) rect(x, y, width, height float64, fill string, opacity float64) {
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		x, y, width, height, fill, opacity)
}

// marker draws the kind-shaped milestone marker centered on (x, y).
func (s *slide) marker(kind schema.MilestoneKind, x, y float64) {
	fill := contract.GetKindHex(kind)
	const r = markerSize
	switch kind {
	case schema.KeyGoLiveKind:
		fmt.Fprintf(&s.body, `<polygon points="%s" fill="%s" stroke="%s"/>`+"\n", starPoints(x, y, r+2), fill, deckText)
	case schema.TechDropKind:
		fmt.Fprintf(&s.body, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`+"\n",
			x, y-r, x-r, y+r*0.8, x+r, y+r*0.8, fill)
	case schema.CriticalDependencyKind:
		fmt.Fprintf(&s.body, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`+"\n",
			x, y-r, x+r, y, x, y+r, x-r, y, fill)
	default:
		fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"/>`+"\n", x, y, r-1, fill)
	}
}

// starPoints returns the polygon points of a five-pointed star.
func starPoints(cx, cy, outer float64) string {
	// Precomputed unit star, top point first.
	unit := [10][2]float64{
		{0, -1}, {0.225, -0.309}, {0.951, -0.309}, {0.363, 0.118}, {0.588, 0.809},
		{0, 0.382}, {-0.588, 0.809}, {-0.363, 0.118}, {-0.951, -0.309}, {-0.225, -0.309},
	}
	points := make([]string, 0, len(unit))
	for _, p := range unit {
		points = append(points, fmt.Sprintf("%.1f,%.1f", cx+p[0]*outer, cy+p[1]*outer))
	}
	return strings.Join(points, " ")
}

// escapeXML escapes the XML special characters of s.
func escapeXML(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	).Replace(s)
}

// writeDeck renders a title slide, one slide per program and a summary slide.
func writeDeck(w io.Writer, layout *schema.Layout, cfg *contract.Config) error {
	d := newDeck(cfg)
	summary := agg.Summarize(layout)

	d.titleSlide(deckTitle(cfg), layout, summary)
	spans := algo.MonthSpans(layout.Window)
	for _, program := range layout.Programs {
		d.programSlide(program, layout.Header, spans)
	}
	d.summarySlide(summary)
	return d.render(w)
}

// titleSlide shows the deck title, the window and headline counts.
func (d *deck) titleSlide(title string, layout *schema.Layout, summary schema.LayoutSummary) {
	s := d.addSlide(0)
	cx := float64(d.width) / 2
	cy := float64(s.height) / 2
	s.text(cx, cy-20, 36, deckText, "middle", "bold", title)
	s.text(cx, cy+20, 16, deckMuted, "middle", "normal", describeWindow(layout.Window, layout.FallbackWindow))
	s.text(cx, cy+46, 14, deckMuted, "middle", "normal",
		fmt.Sprintf("%d programs, %d journeys, %d milestones", summary.Programs, summary.Journeys, summary.Milestones))
}

// trackX maps an axis position to a slide x coordinate.
func (d *deck) trackX(pos float64) float64 {
	width := float64(d.width - laneLabelColumn - slideMargin)
	return float64(laneLabelColumn) + pos/100*width
}

// programSlide draws the header and every lane of one program.
func (d *deck) programSlide(program schema.ProgramLayout, header []schema.QuarterHeaderCell, spans []algo.AxisSpan) {
	height := laneTop + slideMargin
	for _, journey := range program.Journeys {
		height += laneHeight(journey)
	}
	s := d.addSlide(height)

	s.text(slideMargin, 40, 22, deckText, "start", "bold", program.Name)
	d.legend(s, 60)
	d.header(s, header, spans)

	y := float64(laneTop)
	for i, journey := range program.Journeys {
		h := float64(laneHeight(journey))
		if i%2 == 0 {
			s.rect(slideMargin, y, float64(d.width-2*slideMargin), h, deckLaneFill, 1)
		}
		s.text(slideMargin+6, y+baselineInset+4, 11, deckText, "start", "bold",
			contract.TruncateLabel(journey.Name, 20))
		d.lane(s, journey, y)
		y += h
	}
}

// laneHeight scales the layout row height to slide pixels, growing it so
// the labels of the top stacked row stay inside the lane.
func laneHeight(journey schema.JourneyLayout) int {
	scaled := int(float64(journey.RowHeight) * laneScale)
	needed := baselineInset + journey.MaxOffset*stackStep + labelDrop + labelDescent
	return max(scaled, needed)
}

// legend draws one marker per kind plus the build phase bar.
func (d *deck) legend(s *slide, y float64) {
	x := float64(slideMargin)
	for _, kind := range schema.AllMilestoneKinds {
		s.marker(kind, x+markerSize, y)
		label := contract.GetPlainKindLabel(kind)
		s.text(x+2*markerSize+4, y+4, 10, deckMuted, "start", "normal", label)
		x += float64(2*markerSize+12) + float64(len(label))*6
	}
	s.rect(x, y-4, 20, 8, contract.BuildPhaseHex, 0.6)
	s.text(x+26, y+4, 10, deckMuted, "start", "normal", contract.BuildPhaseLabel)
}

// header draws the year, quarter and month rows above the lanes.
func (d *deck) header(s *slide, cells []schema.QuarterHeaderCell, spans []algo.AxisSpan) {
	yearY := float64(headerTop)
	quarterY := yearY + headerRowHeight
	monthY := quarterY + headerRowHeight

	i := 0
	yearStart, year := 0.0, ""
	for _, cell := range cells {
		if i >= len(spans) {
			break
		}
		first := spans[i]
		last := spans[min(i+len(cell.Months), len(spans))-1]
		if cell.Year != year {
			if year != "" {
				d.headerCell(s, yearStart, first.Start, yearY, year)
			}
			yearStart, year = first.Start, cell.Year
		}
		d.headerCell(s, first.Start, last.End, quarterY, cell.Quarter)
		for _, month := range cell.Months {
			if i < len(spans) {
				d.headerCell(s, spans[i].Start, spans[i].End, monthY, month)
			}
			i++
		}
	}
	if year != "" && len(spans) > 0 {
		d.headerCell(s, yearStart, spans[len(spans)-1].End, yearY, year)
	}
}

// headerCell draws one labelled header box spanning [from, to] on the axis.
func (d *deck) headerCell(s *slide, from, to, y float64, label string) {
	x1, x2 := d.trackX(from), d.trackX(to)
	s.rect(x1, y, x2-x1, headerRowHeight-2, deckHeaderFill, 1)
	if x2-x1 >= 18 {
		s.text((x1+x2)/2, y+12, 9, deckText, "middle", "normal", label)
	}
}

// lane draws phase bars, then markers and labels, of one journey.
func (d *deck) lane(s *slide, journey schema.JourneyLayout, top float64) {
	baseline := func(offset int) float64 {
		return top + baselineInset + float64(offset*stackStep)
	}
	for _, phase := range journey.BuildPhases {
		left, right := algo.PhaseSpan(phase)
		x1, x2 := d.trackX(left), d.trackX(right)
		s.rect(x1, baseline(phase.VerticalOffset)-4, max(x2-x1, 2), 8, contract.BuildPhaseHex, 0.6)
	}
	for _, m := range journey.Milestones {
		x, y := d.trackX(m.Position), baseline(m.VerticalOffset)
		s.marker(m.Kind, x, y)
		s.text(x, y+labelDrop, 9, deckText, "middle", "normal", contract.TruncateLabel(m.Label, maxDeckLabel))
	}
}

// summarySlide lists totals per kind and per program.
func (d *deck) summarySlide(summary schema.LayoutSummary) {
	const lineHeight = 22
	height := 140 + lineHeight*(len(schema.AllMilestoneKinds)+len(summary.PerProgram)+2)
	s := d.addSlide(height)

	s.text(slideMargin, 48, 26, deckText, "start", "bold", "Summary")
	y := 90.0
	s.text(slideMargin, y, 14, deckText, "start", "normal",
		fmt.Sprintf("%d programs, %d journeys, %d milestones (%d undated)",
			summary.Programs, summary.Journeys, summary.Milestones, summary.Undated))

	y += lineHeight * 1.5
	for _, kind := range schema.AllMilestoneKinds {
		s.marker(kind, slideMargin+markerSize, y-4)
		s.text(slideMargin+24, y, 13, deckText, "start", "normal",
			fmt.Sprintf("%s: %d", contract.GetPlainKindLabel(kind), summary.ByKind[kind]))
		y += lineHeight
	}

	y += lineHeight / 2
	for _, ps := range summary.PerProgram {
		s.text(slideMargin, y, 13, deckText, "start", "normal",
			fmt.Sprintf("%s: %d journeys, %d milestones", ps.Name, ps.Journeys, ps.Milestones))
		y += lineHeight
	}
}
