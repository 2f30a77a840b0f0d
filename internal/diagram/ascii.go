package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goclt/internal/layup"
)

// PlyBand is one ply as drawn through the thickness.
type PlyBand struct {
	Index       int // 1-based
	Material    string
	Thickness   float64 // mm
	Orientation float64 // degrees

	// Outer is the signed z (mm) of the face farthest from the mid-plane.
	// It is only meaningful when HasZ is set.
	Outer float64
	HasZ  bool
}

// Inner returns the z of the face nearest the mid-plane.
func (b PlyBand) Inner() float64 {
	if b.Outer <= 0 {
		return b.Outer + b.Thickness
	}
	return b.Outer - b.Thickness
}

// StackDiagramData holds what is needed to draw a laminate cross-section.
type StackDiagramData struct {
	Name     string
	Plies    []PlyBand // stack order, ply 1 at the bottom
	Core     float64   // mm from the mid-plane to the first ply, 0 if none
	Selected int       // 1-based, 0 for none
}

// FromStack builds diagram data from a stack and the selected ply.
func FromStack(s *layup.Stack, selected int) StackDiagramData {
	z := s.ZCoordinates()
	data := StackDiagramData{Name: s.Name, Selected: selected}
	if core, ok := s.CoreThickness(); ok {
		data.Core = core
	}
	for i, p := range s.Plies() {
		b := PlyBand{
			Index:       i + 1,
			Material:    p.Material,
			Thickness:   p.Thickness,
			Orientation: p.Orientation,
		}
		if i < len(z) {
			b.Outer, b.HasZ = z[i], true
		}
		data.Plies = append(data.Plies, b)
	}
	return data
}

// hatch picks a fill glyph that suggests the fibre direction.
func hatch(theta float64) string {
	a := math.Mod(theta, 180)
	if a < 0 {
		a += 180
	}
	switch {
	case a < 1 || a > 179:
		return "─"
	case math.Abs(a-90) < 1:
		return "│"
	case a < 90:
		return "╱"
	default:
		return "╲"
	}
}

// DrawASCIIStackDiagram draws the plies top-down with the mid-plane and core.
func DrawASCIIStackDiagram(data StackDiagramData) string {
	var sb strings.Builder
	const width = 24

	sb.WriteString("\n")
	sb.WriteString("  LAYUP                         PLY   ANGLE     t (mm)   z outer (mm)\n")
	sb.WriteString("  ─────                         ───   ─────     ──────   ────────────\n")

	if len(data.Plies) == 0 {
		sb.WriteString("  (empty stack)\n")
		return sb.String()
	}

	half := len(data.Plies) / 2
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", width)))
	for i := len(data.Plies) - 1; i >= 0; i-- {
		b := data.Plies[i]

		z := "n/a"
		if b.HasZ {
			z = fmt.Sprintf("%.3f", b.Outer)
		}
		sb.WriteString(fmt.Sprintf("  │%s│  %4d  %6.1f°  %8.3f   %12s", strings.Repeat(hatch(b.Orientation), width),
			b.Index, b.Orientation, b.Thickness, z))
		if b.Index == data.Selected {
			sb.WriteString("  ◄ selected")
		}
		sb.WriteString("\n")

		if i == half {
			if data.Core > 0 {
				sb.WriteString(fmt.Sprintf("  │%s│  core %.3f mm each side\n", strings.Repeat("░", width), data.Core))
				sb.WriteString(fmt.Sprintf("  ├%s┤  ◄─ mid-plane (z = 0)\n", strings.Repeat("─", width)))
				sb.WriteString(fmt.Sprintf("  │%s│\n", strings.Repeat("░", width)))
			} else {
				sb.WriteString(fmt.Sprintf("  ├%s┤  ◄─ mid-plane (z = 0)\n", strings.Repeat("─ ", width/2)))
			}
		}
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", width)))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ─── = 0°   │││ = 90°   ╱╱╱ = 0° < θ < 90°   ╲╲╲ = 90° < θ < 180°\n")
	if len(data.Plies)%2 == 1 {
		sb.WriteString(fmt.Sprintf("  Ply %d has no z-coordinate in an odd stack\n", len(data.Plies)))
	}

	return sb.String()
}

// StrainPoint is the laminate-axis strain at one z.
type StrainPoint struct {
	Ply    int
	Z      float64    // mm
	Strain [3]float64 // ε₁, ε₂, ε₆
}

// DrawStrainDiagram draws one strain component through the thickness as
// horizontal bars, top face first.
func DrawStrainDiagram(points []StrainPoint, component int) string {
	var sb strings.Builder
	names := [3]string{"ε₁", "ε₂", "ε₆"}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  STRAIN DISTRIBUTION (%s)\n", names[component]))
	sb.WriteString("  ───────────────────────\n\n")

	if len(points) == 0 {
		sb.WriteString("  (no plies with z-coordinates)\n")
		return sb.String()
	}

	const barWidth = 20
	var peak float64
	for _, p := range points {
		peak = math.Max(peak, math.Abs(p.Strain[component]))
	}
	scale := 0.0
	if peak > 0 {
		scale = barWidth / peak
	}

	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		e := p.Strain[component]
		n := int(math.Round(math.Abs(e) * scale))

		left, right := strings.Repeat(" ", barWidth), strings.Repeat(" ", barWidth)
		if e < 0 {
			left = strings.Repeat(" ", barWidth-n) + strings.Repeat("█", n)
		} else {
			right = strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
		}
		sb.WriteString(fmt.Sprintf("  %8.3f │%s┼%s│ %10.3e  (ply %d)\n", p.Z, left, right, e, p.Ply))
	}

	return sb.String()
}

// DrawStrainGraph plots ε₁, ε₂ and ε₆ in microstrain over the sample points,
// bottom face on the left.
func DrawStrainGraph(points []StrainPoint) string {
	if len(points) < 2 {
		return "\n  (not enough points to plot)\n"
	}
	series := make([][]float64, 3)
	for c := range series {
		series[c] = make([]float64, len(points))
		for i, p := range points {
			series[c][i] = p.Strain[c] * 1e6
		}
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("ε₁ ε₂ ε₆ (µε), z = %.3f to %.3f mm", points[0].Z, points[len(points)-1].Z)),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
