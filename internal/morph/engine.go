package morph

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/san-kum/shapeshift/internal/shapes"
)

const (
	DefaultPoints        = 3000
	DefaultMorphDuration = 2000 * time.Millisecond
)

type Config struct {
	Points        int
	MorphDuration time.Duration
}

func DefaultConfig() Config {
	return Config{Points: DefaultPoints, MorphDuration: DefaultMorphDuration}
}

// Engine interpolates the visible buffer between two shapes.
type Engine struct {
	mu sync.Mutex

	set      shapes.Set
	duration float64 // seconds
	size     int     // 3 * points

	current  shapes.PointCloud
	target   shapes.PointCloud
	visible  shapes.PointCloud
	elapsed  float64 // seconds into the current transition
	progress float64
	active   int
	moving   bool
	closed   bool
}

// New validates every generator in set once and starts at rest on shape 0.
func New(cfg Config, set shapes.Set) (*Engine, error) {
	if cfg.Points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative, got %d", ErrInvalidConfig, cfg.Points)
	}
	if cfg.MorphDuration <= 0 {
		return nil, fmt.Errorf("%w: morph duration must be positive, got %s", ErrInvalidConfig, cfg.MorphDuration)
	}
	if len(set) == 0 {
		return nil, ErrNoShapes
	}

	e := &Engine{
		set:      set,
		duration: cfg.MorphDuration.Seconds(),
		size:     cfg.Points * 3,
	}

	var first shapes.PointCloud
	for i, sh := range set {
		cloud := sh.Generate()
		if err := e.checkShape(i, cloud); err != nil {
			return nil, err
		}
		if i == 0 {
			first = cloud
		}
	}

	e.current = first.Clone()
	e.target = first.Clone()
	e.visible = first
	return e, nil
}

func (e *Engine) checkShape(i int, cloud shapes.PointCloud) error {
	if len(cloud) != e.size {
		return &ShapeError{Index: i, Name: e.set[i].Name, Got: len(cloud), Want: e.size, Wrapped: ErrLengthMismatch}
	}
	return nil
}

// BeginTransition starts a morph from snapshot towards a fresh cloud of shape
// index. A nil snapshot starts from the visible buffer as it is under the same
// lock. A transition already in flight is overwritten. On error the engine
// state is left untouched.
func (e *Engine) BeginTransition(index int, snapshot shapes.PointCloud) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(e.set) {
		return fmt.Errorf("%w: %d (have %d shapes)", ErrShapeIndex, index, len(e.set))
	}
	if snapshot != nil && len(snapshot) != e.size {
		return fmt.Errorf("%w: snapshot has %d values, want %d", ErrLengthMismatch, len(snapshot), e.size)
	}

	next := e.set[index].Generate()
	if err := e.checkShape(index, next); err != nil {
		return err
	}

	if snapshot == nil {
		snapshot = e.visible
	}
	copy(e.current, snapshot)
	copy(e.target, next)
	e.elapsed = 0
	e.progress = 0
	e.active = index
	e.moving = true
	return nil
}

// Advance moves the morph forward by dt seconds and rewrites the visible
// buffer. It reports whether the visible buffer changed.
func (e *Engine) Advance(dt float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.moving || !(dt > 0) {
		return false
	}

	// Progress derives from summed time so it reaches exactly 1 on the frame
	// where the elapsed time reaches the duration.
	e.elapsed += dt
	e.progress = math.Min(1, e.elapsed/e.duration)

	if e.progress == 1 {
		copy(e.current, e.target)
		copy(e.visible, e.target)
		e.moving = false
		return true
	}

	p := e.progress
	cur, tgt, vis := e.current, e.target, e.visible
	for k := range vis {
		a := cur[k]
		vis[k] = a + (tgt[k]-a)*p
	}
	return true
}

// Close stops the engine; later calls become no-ops.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.moving = false
	e.mu.Unlock()
}

func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Snapshot copies the visible buffer.
func (e *Engine) Snapshot() shapes.PointCloud {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible.Clone()
}

// ReadVisible calls fn with the live visible buffer while holding the engine
// lock. fn must not retain or modify the slice, nor call back into the Engine.
func (e *Engine) ReadVisible(fn func(shapes.PointCloud)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.visible)
}

func (e *Engine) Current() shapes.PointCloud {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

func (e *Engine) Target() shapes.PointCloud {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target.Clone()
}

func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress
}

func (e *Engine) Transitioning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moving
}

// Active returns the index of the shape the engine rests on or moves towards.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Engine) ActiveName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.set[e.active].Name
}

func (e *Engine) Shapes() int { return len(e.set) }

func (e *Engine) Points() int { return e.size / 3 }
