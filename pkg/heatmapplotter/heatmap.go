// Package heatmapplotter renders an annotated confusion-matrix heatmap
// with optional per-cell counts, percentages and summary statistics.
package heatmapplotter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/rbazin/nlp-disaster-tweets/pkg/confusion"
)

const paletteSteps = 12

var (
	ErrNotSquare  = errors.New("heatmapplotter: confusion matrix is not square")
	ErrEmptyTotal = errors.New("heatmapplotter: matrix total is zero, cannot derive percentages or stats")
)

// Options controls what the rendered heatmap shows. The zero value
// disables everything; start from DefaultOptions for the usual figure.
type Options struct {
	// GroupNames labels cells row by row. If its length does not match
	// the cell count the names are silently dropped.
	GroupNames []string
	// Categories are the axis tick labels. Nil means numeric indices.
	Categories []string
	// Count shows the raw count inside each cell.
	Count bool
	// Percent shows each cell's share of the grand total.
	Percent bool
	// ColorBar draws a palette legend beside the figure.
	ColorBar bool
	// XYTicks shows axis tick labels; when false, Categories are
	// suppressed entirely.
	XYTicks bool
	// XYPlotLabels shows the "True label"/"Predicted label" axis
	// titles.
	XYPlotLabels bool
	// SumStats appends accuracy (and, for 2x2 matrices, precision,
	// recall and F1) below the x axis.
	SumStats bool
	// Width and Height size the canvas; zero means 4x4 inches.
	Width, Height vg.Length
	// CMap names the palette: "rainbow" (default) or "heat".
	CMap string
	// Title is the optional figure title.
	Title string
}

// DefaultOptions mirrors the conventional confusion-matrix figure:
// every annotation enabled, rainbow palette.
func DefaultOptions() Options {
	return Options{
		Count:        true,
		Percent:      true,
		ColorBar:     true,
		XYTicks:      true,
		XYPlotLabels: true,
		SumStats:     true,
		CMap:         "rainbow",
	}
}

// Render builds the annotated heatmap for a square count matrix.
func Render(cf mat.Matrix, opts Options) (*plot.Plot, error) {
	p, _, _, err := build(cf, opts)
	return p, err
}

// Save renders the heatmap and writes it to filename. The format is
// chosen by extension: .pdf or .png.
func Save(cf mat.Matrix, opts Options, filename string) error {
	p, hm, pal, err := build(cf, opts)
	if err != nil {
		return err
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 4 * vg.Inch
	}
	if height == 0 {
		height = 4 * vg.Inch
	}

	var canvas vg.CanvasWriterTo
	switch ext := filepath.Ext(filename); ext {
	case ".pdf":
		canvas = vgpdf.New(width, height)
	case ".png":
		canvas = &vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	default:
		return fmt.Errorf("heatmapplotter: unsupported output format %q", ext)
	}

	dc := draw.New(canvas)
	if opts.ColorBar {
		dc = drawColorBar(dc, p, hm, pal)
	}
	p.Draw(dc)

	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("heatmapplotter: create output: %w", err)
	}
	defer w.Close()

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("heatmapplotter: write figure: %w", err)
	}
	return nil
}

func build(cf mat.Matrix, opts Options) (*plot.Plot, *plotter.HeatMap, palette.Palette, error) {
	rows, cols := cf.Dims()
	if rows != cols {
		return nil, nil, nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, rows, cols)
	}
	if mat.Sum(cf) == 0 && (opts.Percent || opts.SumStats) {
		return nil, nil, nil, ErrEmptyTotal
	}

	pal, err := paletteFor(opts.CMap)
	if err != nil {
		return nil, nil, nil, err
	}

	labels, err := CellLabels(cf, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	p := plot.New()
	if opts.Title != "" {
		p.Title.Text = opts.Title
	}

	hm := plotter.NewHeatMap(grid{m: cf, rows: rows, cols: cols}, pal)
	p.Add(hm)

	if err := annotate(p, labels, rows, cols); err != nil {
		return nil, nil, nil, err
	}

	if err := setTicks(p, rows, opts); err != nil {
		return nil, nil, nil, err
	}

	caption := ""
	if opts.SumStats {
		summary, err := confusion.Stats(cf)
		if err != nil {
			return nil, nil, nil, err
		}
		caption = summary.Caption()
	}
	if opts.XYPlotLabels {
		p.Y.Label.Text = "True label"
		p.X.Label.Text = "Predicted label" + caption
	} else {
		p.X.Label.Text = caption
	}

	p.X.Padding = 0
	p.Y.Padding = 0
	return p, hm, pal, nil
}

// grid adapts a count matrix to the plotter grid, flipping rows so
// matrix row 0 is drawn at the top like a printed confusion matrix.
type grid struct {
	m          mat.Matrix
	rows, cols int
}

func (g grid) Dims() (c, r int)   { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.m.At(g.rows-1-r, c) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

func annotate(p *plot.Plot, labels []string, rows, cols int) error {
	xy := plotter.XYLabels{}
	for i, label := range labels {
		if label == "" {
			continue
		}
		row := i / cols
		col := i % cols
		xy.XYs = append(xy.XYs, plotter.XY{X: float64(col), Y: float64(rows - 1 - row)})
		xy.Labels = append(xy.Labels, label)
	}
	if len(xy.Labels) == 0 {
		return nil
	}

	l, err := plotter.NewLabels(xy)
	if err != nil {
		return fmt.Errorf("heatmapplotter: cell labels: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
		l.TextStyle[i].Color = color.Black
	}
	p.Add(l)
	return nil
}

func setTicks(p *plot.Plot, n int, opts Options) error {
	if !opts.XYTicks {
		p.X.Tick.Marker = plot.ConstantTicks(nil)
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
		return nil
	}

	categories := opts.Categories
	if categories == nil {
		categories = make([]string, n)
		for i := range categories {
			categories[i] = strconv.Itoa(i)
		}
	}
	if len(categories) != n {
		return fmt.Errorf("heatmapplotter: %d categories for a %dx%d matrix", len(categories), n, n)
	}

	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i, cat := range categories {
		xticks[i] = plot.Tick{Value: float64(i), Label: cat}
		yticks[i] = plot.Tick{Value: float64(n - 1 - i), Label: cat}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	return nil
}

func paletteFor(name string) (palette.Palette, error) {
	switch name {
	case "", "rainbow":
		return palette.Rainbow(paletteSteps, palette.Blue, palette.Red, 1, 1, 1), nil
	case "heat":
		return palette.Heat(paletteSteps, 1), nil
	default:
		return nil, fmt.Errorf("heatmapplotter: unknown cmap %q", name)
	}
}

// drawColorBar lays a palette legend along the right edge and crops
// the drawing area so the plot leaves room for it.
func drawColorBar(dc draw.Canvas, p *plot.Plot, hm *plotter.HeatMap, pal palette.Palette) draw.Canvas {
	l := plot.NewLegend()
	thumbs := plotter.PaletteThumbnailers(pal)
	for i := len(thumbs) - 1; i >= 0; i-- {
		var val float64
		switch i {
		case 0:
			val = hm.Min
		case len(thumbs) - 1:
			val = hm.Max
		default:
			val = hm.Min + (hm.Max-hm.Min)/float64(len(thumbs)-1)*float64(i)
		}
		l.Add(fmt.Sprintf("%.0f", val), thumbs[i])
	}

	l.Top = true
	r := l.Rectangle(dc)
	legendWidth := r.Max.X - r.Min.X
	l.YOffs = -p.Title.TextStyle.FontExtents().Height

	l.Draw(dc)
	return draw.Crop(dc, 0, -legendWidth-vg.Millimeter, 0, 0)
}
