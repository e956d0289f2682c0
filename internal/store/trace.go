package store

import (
	"encoding/json"
	"io"
	"os"
)

// Trace is one headless morph run sampled once per frame.
type Trace struct {
	Seed     int64     `json:"seed"`
	Points   int       `json:"points"`
	FPS      int       `json:"fps"`
	Dt       float64   `json:"dt"`
	Duration float64   `json:"duration"`
	Frames   int       `json:"frames"`
	Shapes   []string  `json:"shapes"`
	Times    []float64 `json:"times"`
	Progress []float64 `json:"progress"`
	RMS      []float64 `json:"rms"`
}

func NewTrace(seed int64, points, fps int, duration float64) *Trace {
	frames := 0
	dt := 0.0
	if fps > 0 {
		dt = 1 / float64(fps)
		frames = int(duration * float64(fps))
	}
	return &Trace{
		Seed:     seed,
		Points:   points,
		FPS:      fps,
		Dt:       dt,
		Duration: duration,
		Times:    make([]float64, 0, frames),
		Progress: make([]float64, 0, frames),
		RMS:      make([]float64, 0, frames),
	}
}

// Record appends one frame sample.
func (t *Trace) Record(at, progress, rms float64) {
	t.Times = append(t.Times, at)
	t.Progress = append(t.Progress, progress)
	t.RMS = append(t.RMS, rms)
	t.Frames = len(t.Times)
}

// Visit notes a shape the run moved to. Repeats of the last entry are dropped.
func (t *Trace) Visit(name string) {
	if n := len(t.Shapes); n > 0 && t.Shapes[n-1] == name {
		return
	}
	t.Shapes = append(t.Shapes, name)
}

func WriteJSON(w io.Writer, t *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func ExportJSON(path string, t *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, t)
}

func ReadJSON(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
