package widget

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/engine"
	"github.com/lixenwraith/pipeview/terminal"
	"github.com/lixenwraith/pipeview/terminal/tui"
)

// DefaultHistory is the number of points kept per dataset
const DefaultHistory = 100

// Point is one sample; X is its position in the dataset history
type Point struct {
	X, Y float64
}

// Dataset is the history of one input line
type Dataset struct {
	Line   int // Line index within each record
	Name   string
	Points []Point
}

// Axis configures one chart axis
type Axis struct {
	Title  string
	Bounds Bounds
	Style  tui.Style
}

// Chart plots one line graph per numeric input line
// Each record is read line by line as "value[\tname...]"; line i feeds dataset i
type Chart struct {
	Colors  []terminal.Color
	Style   tui.Style
	Block   Block
	XAxis   Axis
	YAxis   Axis
	History int

	lastSeq  uint64
	datasets map[int]*Dataset
	order    []int // dataset keys, ascending
}

// NewChart returns a chart with 0..100 bounds on both axes
func NewChart() *Chart {
	return &Chart{
		XAxis:    Axis{Bounds: Bounds{Min: 0, Max: DefaultHistory}},
		YAxis:    Axis{Bounds: Bounds{Min: 0, Max: 100}},
		History:  DefaultHistory,
		datasets: make(map[int]*Dataset),
	}
}

// AddFlags registers chart, axis and block options
func (c *Chart) AddFlags(fs *pflag.FlagSet) {
	fs.VarP(colorListValue{&c.Colors}, "color", "c", "dataset colors, assigned in order and cycled (repeatable)")
	fs.IntVar(&c.History, "history", c.History, "points kept per dataset")
	addStyleFlags(fs, "chart", "chart", &c.Style)

	fs.StringVar(&c.XAxis.Title, "x-axis-title", c.XAxis.Title, "x axis title")
	fs.Var(boundsValue{&c.XAxis.Bounds}, "x-axis-bounds", "x axis range")
	addStyleFlags(fs, "x-axis", "x axis", &c.XAxis.Style)

	fs.StringVar(&c.YAxis.Title, "y-axis-title", c.YAxis.Title, "y axis title")
	fs.Var(boundsValue{&c.YAxis.Bounds}, "y-axis-bounds", "y axis range")
	addStyleFlags(fs, "y-axis", "y axis", &c.YAxis.Style)

	c.Block.AddFlags(fs)
}

// Draw binds the chart to buf
func (c *Chart) Draw(buf *engine.Buffer) engine.DrawFunc {
	return func(f *engine.Frame) {
		c.Update(buf.Text(), buf.Seq())
		c.Render(f.Region())
	}
}

// Update adds the values of a record to the datasets
// A record is only counted once: redraws with the same seq add nothing
func (c *Chart) Update(text string, seq uint64) {
	if seq == c.lastSeq {
		return
	}
	c.lastSeq = seq
	if c.datasets == nil {
		c.datasets = make(map[int]*Dataset)
	}
	limit := c.History
	if limit <= 0 {
		limit = DefaultHistory
	}

	for i, line := range strings.Split(text, "\n") {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), "\t")
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}

		ds, ok := c.datasets[i]
		if !ok {
			ds = &Dataset{Line: i}
			c.datasets[i] = ds
			c.order = append(c.order, i)
			sort.Ints(c.order)
		}
		ds.Name = ansi.Strip(strings.Join(fields[1:], ""))
		ds.Points = append(ds.Points, Point{X: float64(len(ds.Points)), Y: v})

		if over := len(ds.Points) - limit; over > 0 {
			ds.Points = append(ds.Points[:0], ds.Points[over:]...)
			for j := range ds.Points {
				ds.Points[j].X = float64(j)
			}
		}
	}
}

// Datasets returns the datasets in line order
func (c *Chart) Datasets() []Dataset {
	out := make([]Dataset, 0, len(c.order))
	for _, i := range c.order {
		ds := c.datasets[i]
		out = append(out, Dataset{
			Line:   ds.Line,
			Name:   ds.Name,
			Points: append([]Point(nil), ds.Points...),
		})
	}
	return out
}

// colorAt returns the color of the n-th dataset
func (c *Chart) colorAt(n int) terminal.Color {
	if len(c.Colors) == 0 {
		return terminal.ColorWhite
	}
	return c.Colors[n%len(c.Colors)]
}

// Render draws axes, datasets and legend into r
func (c *Chart) Render(r tui.Region) {
	r.SetStyle(c.Style)
	area := c.Block.Render(r)
	if area.Empty() {
		return
	}

	yMax := formatFloat(c.YAxis.Bounds.Max)
	yMin := formatFloat(c.YAxis.Bounds.Min)
	labelW := max(tui.StringWidth(yMax), tui.StringWidth(yMin))

	// Rows from the bottom: x title, x labels, x axis line
	top, bottom := 0, area.H
	if c.YAxis.Title != "" {
		top++
	}
	if c.XAxis.Title != "" {
		bottom--
		title := tui.Truncate(c.XAxis.Title, area.W)
		area.Text(area.W-tui.StringWidth(title), bottom, title, c.XAxis.Style)
	}
	bottom-- // x labels
	axisRow := bottom - 1
	axisCol := labelW

	graphX, graphW := axisCol+1, area.W-axisCol-1
	graphH := axisRow - top
	if graphW <= 0 || graphH <= 0 {
		return
	}

	if c.YAxis.Title != "" {
		area.Text(0, 0, tui.Truncate(c.YAxis.Title, area.W), c.YAxis.Style)
	}

	// Axis lines and bound labels
	for y := top; y < axisRow; y++ {
		area.Cell(axisCol, y, '│', c.YAxis.Style)
	}
	area.Cell(axisCol, axisRow, '└', c.XAxis.Style)
	for x := graphX; x < area.W; x++ {
		area.Cell(x, axisRow, '─', c.XAxis.Style)
	}
	area.Text(labelW-tui.StringWidth(yMax), top, yMax, c.YAxis.Style)
	area.Text(labelW-tui.StringWidth(yMin), axisRow-1, yMin, c.YAxis.Style)

	xMin := formatFloat(c.XAxis.Bounds.Min)
	xMax := formatFloat(c.XAxis.Bounds.Max)
	area.Text(graphX, bottom, xMin, c.XAxis.Style)
	if xw := tui.StringWidth(xMax); graphX+tui.StringWidth(xMin) < area.W-xw {
		area.Text(area.W-xw, bottom, xMax, c.XAxis.Style)
	}

	graph := area.Sub(graphX, top, graphW, graphH)
	c.plot(graph)
	c.legend(graph)
}

// plot draws every dataset as a braille line graph
func (c *Chart) plot(r tui.Region) {
	canvas := tui.NewCanvas(r.W, r.H)
	dotsW, dotsH := canvas.Resolution()
	xb, yb := c.XAxis.Bounds, c.YAxis.Bounds

	toDot := func(p Point) (int, int, bool) {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return 0, 0, false
		}
		fx := (p.X - xb.Min) / (xb.Max - xb.Min) * float64(dotsW-1)
		fy := (yb.Max - p.Y) / (yb.Max - yb.Min) * float64(dotsH-1)
		// Keep far out of range points from walking huge lines
		fx = math.Max(-float64(dotsW), math.Min(fx, float64(2*dotsW)))
		fy = math.Max(-float64(dotsH), math.Min(fy, float64(2*dotsH)))
		return int(math.Round(fx)), int(math.Round(fy)), true
	}

	for n, i := range c.order {
		color := c.colorAt(n)
		pts := c.datasets[i].Points
		px, py, prev := 0, 0, false
		for _, p := range pts {
			x, y, ok := toDot(p)
			switch {
			case !ok:
			case prev:
				canvas.Line(px, py, x, y, color)
			default:
				canvas.Set(x, y, color)
			}
			px, py, prev = x, y, ok
		}
	}
	canvas.Draw(r)
}

// legend lists dataset names in the top right corner when it fits
func (c *Chart) legend(r tui.Region) {
	nameW, named := 0, false
	for _, i := range c.order {
		if name := c.datasets[i].Name; name != "" {
			named = true
			nameW = max(nameW, tui.StringWidth(name))
		}
	}
	if !named {
		return
	}

	w, h := nameW+2, len(c.order)+2
	if w > r.W || h > r.H {
		return
	}

	box := r.Sub(r.W-w, 0, w, h)
	box.Fill(' ', tui.NewStyle())
	box.Box(tui.BorderAll, tui.LineSingle, tui.NewStyle())
	for n, i := range c.order {
		box.Text(1, n+1, c.datasets[i].Name, tui.NewStyle().WithFg(c.colorAt(n)))
	}
}
