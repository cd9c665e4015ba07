package viz

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ropesim/internal/trajectory"
)

func TestCanvasPlot(t *testing.T) {
	c := NewCanvas(10, 5, 0, 100, 0, 100)

	empty := c.String()
	if strings.Trim(empty, "⠀\n") != "" {
		t.Error("fresh canvas should be blank")
	}
	if lines := strings.Split(empty, "\n"); len(lines) != 5 || len([]rune(lines[0])) != 10 {
		t.Errorf("canvas dimensions wrong: %d lines", len(lines))
	}

	c.Plot(50, 50)
	if c.String() == empty {
		t.Error("plotting a point should change the canvas")
	}

	// Out-of-range points are clipped, not panicking.
	c.Plot(-50, 50)
	c.Plot(500, 50)
	c.Plot(50, -500)
}

func TestCanvasOrientation(t *testing.T) {
	c := NewCanvas(10, 10, 0, 100, 0, 100)
	c.Plot(0, 100) // top-left corner of the world rectangle

	rows := strings.Split(c.String(), "\n")
	if !strings.ContainsFunc(rows[0], func(r rune) bool { return r != 0x2800 }) {
		t.Error("high y should land in the top canvas row")
	}
	if strings.ContainsFunc(rows[9], func(r rune) bool { return r != 0x2800 }) {
		t.Error("bottom row should stay blank")
	}
}

func TestCanvasCurveAndMarker(t *testing.T) {
	c := NewCanvas(20, 8, 0, 100, -10, 10)
	c.PlotCurve([]float64{0, 25, 50, 75, 100}, []float64{0, -5, -7, -3, 8})
	withCurve := c.String()

	c.Clear()
	if c.String() == withCurve {
		t.Error("clear should wipe the canvas")
	}

	c.Marker(50, 0)
	marked := 0
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			marked++
		}
	}
	if marked == 0 {
		t.Error("marker should set several cells")
	}
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	curve := trajectory.Curve{
		Label: trajectory.LabelLoaded,
		Unit:  trajectory.UnitMeters,
		X:     []float64{0, 1, 2, 3},
		Y:     []float64{0, -1, -1.5, 0.5},
	}

	if err := SaveChart(path, "test", curve); err != nil {
		t.Fatalf("SaveChart failed: %v", err)
	}
}
