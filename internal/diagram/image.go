package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoProfile is returned when there is nothing to plot.
var ErrNoProfile = errors.New("no plies with z-coordinates to plot")

var componentColors = [3]color.Color{
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 178, G: 34, B: 34, A: 255},
}

// ExportStrainProfile plots ε₁, ε₂ and ε₆ against z and saves the image. It
// returns the path written.
func ExportStrainProfile(points []StrainPoint, filename string) (string, error) {
	if len(points) == 0 {
		return "", ErrNoProfile
	}

	p := plot.New()
	p.Title.Text = "Through-Thickness Strain"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "z (mm)"
	p.Legend.Top = true

	zMin, zMax := points[0].Z, points[len(points)-1].Z

	zeroLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: zMin}, {X: 0, Y: zMax}})
	if err != nil {
		return "", err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	names := [3]string{"ε₁", "ε₂", "ε₆"}
	shapes := [3]draw.GlyphDrawer{draw.CircleGlyph{}, draw.SquareGlyph{}, draw.TriangleGlyph{}}
	for c := 0; c < 3; c++ {
		pts := make(plotter.XYs, len(points))
		for i, pt := range points {
			pts[i] = plotter.XY{X: pt.Strain[c], Y: pt.Z}
		}

		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = componentColors[c]
		scatter.GlyphStyle.Color = componentColors[c]
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = shapes[c]
		p.Add(line, scatter)
		p.Legend.Add(names[c], line, scatter)
	}

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// orientationColor shades plies by fibre angle.
func orientationColor(theta float64) color.RGBA {
	switch hatch(theta) {
	case "─":
		return color.RGBA{R: 100, G: 149, B: 237, A: 200}
	case "│":
		return color.RGBA{R: 255, G: 165, B: 0, A: 200}
	case "╱":
		return color.RGBA{R: 60, G: 179, B: 113, A: 200}
	default:
		return color.RGBA{R: 186, G: 85, B: 211, A: 200}
	}
}

// ExportStackSection draws the laminate cross-section, one band per ply, and
// returns the path written.
func ExportStackSection(data StackDiagramData, filename string) (string, error) {
	var bands []PlyBand
	for _, b := range data.Plies {
		if b.HasZ {
			bands = append(bands, b)
		}
	}
	if len(bands) == 0 {
		return "", ErrNoProfile
	}

	p := plot.New()
	p.Title.Text = "Laminate Section"
	if data.Name != "" {
		p.Title.Text = fmt.Sprintf("Laminate Section: %s", data.Name)
	}
	p.X.Label.Text = "Width (arbitrary)"
	p.Y.Label.Text = "z (mm)"
	p.HideX()

	const width = 10.0

	if data.Core > 0 {
		core, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: -data.Core}, {X: width, Y: -data.Core},
			{X: width, Y: data.Core}, {X: 0, Y: data.Core},
		})
		if err != nil {
			return "", err
		}
		core.Color = color.Gray{Y: 220}
		core.LineStyle.Color = color.Gray{Y: 128}
		p.Add(core)
	}

	for _, b := range bands {
		lo, hi := b.Outer, b.Inner()
		if lo > hi {
			lo, hi = hi, lo
		}
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: lo}, {X: width, Y: lo}, {X: width, Y: hi}, {X: 0, Y: hi},
		})
		if err != nil {
			return "", err
		}
		poly.Color = orientationColor(b.Orientation)
		poly.LineStyle.Color = color.Black
		if b.Index == data.Selected {
			poly.LineStyle.Width = vg.Points(2.5)
			poly.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		}
		p.Add(poly)

		text := fmt.Sprintf("%d: %.0f° %s", b.Index, b.Orientation, b.Material)
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: width + 0.5, Y: (lo + hi) / 2}},
			Labels: []string{text},
		})
		if err != nil {
			return "", err
		}
		p.Add(lbl)
	}

	mid, err := plotter.NewLine(plotter.XYs{{X: -1, Y: 0}, {X: width + 1, Y: 0}})
	if err != nil {
		return "", err
	}
	mid.LineStyle.Width = vg.Points(1.5)
	mid.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	mid.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(mid)

	p.X.Max = width * 1.8

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format implied by the extension. Names without
// a supported extension get ".png" appended. It returns the path written.
func save(p *plot.Plot, w, h vg.Length, filename string) (string, error) {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
	default:
		filename += ".png"
	}
	if err := p.Save(w, h, filename); err != nil {
		return "", err
	}
	return filename, nil
}
