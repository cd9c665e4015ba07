// Package store persists sweep results: JSON for downstream tooling and
// CSV for spreadsheets, plus a small run directory layout so past sweeps
// can be listed and re-plotted.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/trajectory"
)

// ExportData is the serialized form of one sweep.
type ExportData struct {
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`

	Span        float64 `json:"span"`
	Rise        float64 `json:"rise"`
	Length      float64 `json:"length"`
	Density     float64 `json:"density"`
	GondolaMass float64 `json:"gondola_mass"`
	TensionH    float64 `json:"tension_h"`

	UnloadedShape float64 `json:"unloaded_shape_parameter"`

	Curves []CurveData `json:"curves"`
	Gaps   []float64   `json:"gaps,omitempty"`
}

// CurveData mirrors trajectory.Curve with JSON tags.
type CurveData struct {
	Label string    `json:"label"`
	Unit  string    `json:"unit"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// FromResult assembles the export payload for one sweep.
func FromResult(scenario string, sys rope.System, res *trajectory.Result) ExportData {
	data := ExportData{
		Scenario:      scenario,
		Timestamp:     time.Now(),
		Span:          sys.Span,
		Rise:          sys.Rise,
		Length:        sys.Length,
		Density:       sys.Density,
		GondolaMass:   sys.GondolaMass,
		TensionH:      sys.TensionH,
		UnloadedShape: res.UnloadedArc.A,
		Gaps:          res.Gaps,
	}
	for _, c := range []trajectory.Curve{res.Unloaded, res.Loaded, res.Ideal} {
		data.Curves = append(data.Curves, CurveData{Label: c.Label, Unit: c.Unit, X: c.X, Y: c.Y})
	}
	return data
}

// WriteJSON writes the payload as indented JSON.
func WriteJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes all curves as rows of (label, x, y).
func WriteCSV(path string, curves ...trajectory.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for _, c := range curves {
		for i := range c.X {
			row := []string{
				c.Label,
				strconv.FormatFloat(c.X[i], 'g', -1, 64),
				strconv.FormatFloat(c.Y[i], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

// Store keeps sweep runs under a base directory, one subdirectory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes one sweep as <base>/<scenario>_<unix>/{run.json, curves.csv}
// and returns the run ID.
func (s *Store) Save(scenario string, sys rope.System, res *trajectory.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	data := FromResult(scenario, sys, res)
	if err := WriteJSON(filepath.Join(runDir, "run.json"), data); err != nil {
		return "", err
	}
	if err := WriteCSV(filepath.Join(runDir, "curves.csv"), res.Unloaded, res.Loaded, res.Ideal); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the IDs of all saved runs, newest last.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// Load reads a saved run back.
func (s *Store) Load(runID string) (ExportData, error) {
	var data ExportData
	raw, err := os.ReadFile(filepath.Join(s.baseDir, runID, "run.json"))
	if err != nil {
		return data, err
	}
	err = json.Unmarshal(raw, &data)
	return data, err
}
