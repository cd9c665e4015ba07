package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/trajectory"
)

func sampleResult() (rope.System, *trajectory.Result) {
	sys := rope.System{
		Span: 100, Rise: 10, Length: 105,
		Density: 2, Gravity: rope.Gravity,
		GondolaMass: 100, TensionH: 5000,
	}
	res := &trajectory.Result{
		Unloaded:    trajectory.Curve{Label: trajectory.LabelUnloaded, Unit: trajectory.UnitMeters, X: []float64{0, 50, 100}, Y: []float64{0, -3, 10}},
		Loaded:      trajectory.Curve{Label: trajectory.LabelLoaded, Unit: trajectory.UnitMeters, X: []float64{25, 50, 75}, Y: []float64{-4, -6, -1}},
		Ideal:       trajectory.Curve{Label: trajectory.LabelIdeal, Unit: trajectory.UnitMeters, X: []float64{0, 50, 100}, Y: []float64{-2, -8, 5}},
		UnloadedArc: catenary.Arc{A: 250, X0: 40, C: -260},
	}
	return sys, res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sys, res := sampleResult()
	runID, err := st.Save("test", sys, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	ids, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != runID {
		t.Errorf("list = %v, want [%s]", ids, runID)
	}

	data, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if data.Scenario != "test" {
		t.Errorf("scenario %q, want test", data.Scenario)
	}
	if data.UnloadedShape != 250 {
		t.Errorf("unloaded shape %g, want 250", data.UnloadedShape)
	}
	if len(data.Curves) != 3 {
		t.Fatalf("expected 3 curves, got %d", len(data.Curves))
	}
	if data.Curves[1].Label != trajectory.LabelLoaded || len(data.Curves[1].X) != 3 {
		t.Errorf("loaded curve round trip broken: %+v", data.Curves[1])
	}
}

func TestListEmpty(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))
	ids, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if ids != nil {
		t.Errorf("expected nil list for missing base dir, got %v", ids)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.csv")
	_, res := sampleResult()

	if err := WriteCSV(path, res.Unloaded, res.Loaded); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus three samples per curve.
	if len(rows) != 1+3+3 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0][0] != "series" {
		t.Errorf("missing header, got %v", rows[0])
	}
	if rows[4][0] != trajectory.LabelLoaded {
		t.Errorf("row 4 series %q, want %q", rows[4][0], trajectory.LabelLoaded)
	}
}
