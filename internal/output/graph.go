/*
PURPOSE:
  Renders the throughput graph: absolute packet rate on top, efficiency
  relative to the peak below, both against burst size on a log-2 axis.

REQUIREMENTS:
  User-specified:
  - Points annotated with their value.
  - Efficiency panel fixed to 0-105%.
  - Saved as PNG and PDF, then shown if a display is available.

  Implementation-discovered:
  - gonum/plot has no subplot API; panels are aligned with plot.Align.
  - LogScale cannot handle keys <= 0, so the key axis falls back to linear.
  - A single burst size would give a zero-width log range; the axis is padded
    by a factor of two on each side.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/analysis, internal/output/viewer.go

ERROR HANDLING:
  - Returns plotting and file errors; viewer errors are only logged.

USAGE:
  gw := output.NewGraphWriter(dir)
  err := gw.Write(ds)
*/

package output

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/daryltucker/burst-analyzer/internal/analysis"
	"github.com/daryltucker/burst-analyzer/internal/model"
)

const (
	DefaultGraphBasename = "throughput_analysis"
	DefaultDPI           = 300
	DefaultWidthIn       = 12
	DefaultHeightIn      = 8
)

var (
	throughputColor = color.RGBA{B: 255, A: 255}
	efficiencyColor = color.RGBA{R: 255, A: 255}
	gridColor       = color.Gray{Y: 200}
)

// GraphWriter renders the throughput figure to PNG and PDF.
type GraphWriter struct {
	Dir      string
	Basename string
	DPI      int
	Width    vg.Length
	Height   vg.Length

	// Viewer presents the PNG after saving. Nil disables it.
	Viewer Viewer
}

// NewGraphWriter returns a GraphWriter with the default size and resolution.
func NewGraphWriter(dir string) *GraphWriter {
	return &GraphWriter{
		Dir:      dir,
		Basename: DefaultGraphBasename,
		DPI:      DefaultDPI,
		Width:    DefaultWidthIn * vg.Inch,
		Height:   DefaultHeightIn * vg.Inch,
	}
}

// PNGPath returns the raster output path.
func (gw *GraphWriter) PNGPath() string {
	return filepath.Join(gw.Dir, gw.Basename+".png")
}

// PDFPath returns the vector output path.
func (gw *GraphWriter) PDFPath() string {
	return filepath.Join(gw.Dir, gw.Basename+".pdf")
}

// Write renders ds and saves both formats.
func (gw *GraphWriter) Write(ds model.Dataset) error {
	if len(ds) == 0 {
		Logger.Info("No data available for graphing")
		return nil
	}

	fig, err := newFigure(ds)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(gw.Width, gw.Height), vgimg.UseDPI(gw.DPI))}
	if err := fig.save(png, gw.PNGPath()); err != nil {
		return fmt.Errorf("failed to save PNG graph: %w", err)
	}
	Logger.Info("Throughput graph saved", "path", gw.PNGPath())

	if err := fig.save(vgpdf.New(gw.Width, gw.Height), gw.PDFPath()); err != nil {
		return fmt.Errorf("failed to save PDF graph: %w", err)
	}
	Logger.Info("PDF graph saved", "path", gw.PDFPath())

	if gw.Viewer != nil {
		if err := gw.Viewer.Open(gw.PNGPath()); err != nil {
			Logger.Debug("Graph not displayed", "error", err)
		}
	}
	return nil
}

// figure is the two-panel throughput figure.
type figure struct {
	panels [][]*plot.Plot
}

func newFigure(ds model.Dataset) (*figure, error) {
	effs, err := analysis.Efficiencies(ds)
	if err != nil {
		return nil, err
	}

	keys := ds.BurstSizes()
	tp := make(plotter.XYs, len(ds))
	eff := make(plotter.XYs, len(ds))
	tpLabels := make([]string, len(ds))
	effLabels := make([]string, len(ds))
	for i, r := range ds {
		x := float64(r.BurstSize)
		tp[i] = plotter.XY{X: x, Y: r.Throughput}
		eff[i] = plotter.XY{X: x, Y: effs[i]}
		tpLabels[i] = fmt.Sprintf("%.0f", r.Throughput)
		effLabels[i] = fmt.Sprintf("%.1f%%", effs[i])
	}

	top := plot.New()
	top.Title.Text = "DPDK Packet Rate vs Burst Size"
	top.Y.Label.Text = "Throughput (packets/sec)"
	if err := addSeries(top, tp, tpLabels, throughputColor); err != nil {
		return nil, err
	}
	setKeyAxis(top, keys)

	bottom := plot.New()
	bottom.Title.Text = "Relative Efficiency vs Burst Size"
	bottom.Y.Label.Text = "Efficiency (%)"
	if err := addSeries(bottom, eff, effLabels, efficiencyColor); err != nil {
		return nil, err
	}
	setKeyAxis(bottom, keys)
	bottom.Y.Min = 0
	bottom.Y.Max = 105

	return &figure{panels: [][]*plot.Plot{{top}, {bottom}}}, nil
}

// addSeries adds a connected line with markers and a value label above each point.
func addSeries(p *plot.Plot, xys plotter.XYs, labels []string, c color.Color) error {
	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(4)

	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return err
	}
	annotations.Offset = vg.Point{Y: vg.Points(10)}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = text.XCenter
	}

	p.Add(line, points, annotations)
	return nil
}

// setKeyAxis configures the burst size axis: log scale with a tick per key.
func setKeyAxis(p *plot.Plot, keys []int) {
	p.X.Label.Text = "Burst Size"

	lo, hi := keys[0], keys[0]
	for _, k := range keys {
		lo = min(lo, k)
		hi = max(hi, k)
	}

	ticks := make([]plot.Tick, 0, len(keys))
	seen := make(map[int]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		ticks = append(ticks, plot.Tick{Value: float64(k), Label: strconv.Itoa(k)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	if lo <= 0 {
		return
	}
	p.X.Scale = plot.LogScale{}
	p.X.Min = float64(lo) / 2
	p.X.Max = float64(hi) * 2
}

// save draws the figure onto c and writes it to path. The file is closed
// before save returns.
func (f *figure) save(c vg.CanvasWriterTo, path string) error {
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows:      len(f.panels),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
	}
	canvases := plot.Align(f.panels, tiles, dc)
	for j := range f.panels {
		for i := range f.panels[j] {
			f.panels[j][i].Draw(canvases[j][i])
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
