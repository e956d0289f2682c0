package schedule

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/san-kum/shapeshift/internal/morph"
	"github.com/san-kum/shapeshift/internal/shapes"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTarget struct {
	mu     sync.Mutex
	active int
	n      int
	begins int
	err    error
	froms  []shapes.PointCloud
}

func (f *fakeTarget) Active() int { f.mu.Lock(); defer f.mu.Unlock(); return f.active }
func (f *fakeTarget) Shapes() int { return f.n }
func (f *fakeTarget) BeginTransition(index int, from shapes.PointCloud) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.froms = append(f.froms, from)
	f.active = index
	f.begins++
	return nil
}
func (f *fakeTarget) Begins() int { f.mu.Lock(); defer f.mu.Unlock(); return f.begins }

func TestPickNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := make([]int, 7)
	cur := 0
	for i := 0; i < 1000; i++ {
		next := Pick(rng, 7, cur)
		if next == cur {
			t.Fatalf("trial %d: picked current index %d", i, cur)
		}
		if next < 0 || next >= 7 {
			t.Fatalf("trial %d: index %d out of range", i, next)
		}
		counts[next]++
		cur = next
	}
	for i, c := range counts {
		if c == 0 {
			t.Errorf("index %d never picked", i)
		}
	}
}

func TestPickEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Pick(rng, 1, 0); got != 0 {
		t.Errorf("single shape: expected 0, got %d", got)
	}
	if got := Pick(rng, 0, 0); got != 0 {
		t.Errorf("no shapes: expected 0, got %d", got)
	}
	for i := 0; i < 100; i++ {
		if got := Pick(rng, 2, 1); got != 0 {
			t.Fatalf("two shapes: expected 0, got %d", got)
		}
	}
	if got := Pick(rng, 3, 9); got < 0 || got >= 3 {
		t.Errorf("out of range current: got %d", got)
	}
}

func TestNewInvalidInterval(t *testing.T) {
	if _, err := New(Config{}, &fakeTarget{n: 7}, rand.New(rand.NewSource(1)), nil); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestStepChangesShape(t *testing.T) {
	ft := &fakeTarget{n: 7}
	s, err := New(DefaultConfig(), ft, rand.New(rand.NewSource(3)), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	for i := 0; i < 1000; i++ {
		prev := ft.Active()
		next, err := s.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if next == prev {
			t.Fatalf("step %d: repeated shape %d", i, prev)
		}
	}
	if s.Changes() != 1000 {
		t.Errorf("expected 1000 changes, got %d", s.Changes())
	}
	for i, from := range ft.froms {
		if from != nil {
			t.Fatalf("step %d: expected the target to snapshot its own buffer", i)
		}
	}
}

func TestStepSingleShape(t *testing.T) {
	ft := &fakeTarget{n: 1}
	s, _ := New(DefaultConfig(), ft, rand.New(rand.NewSource(3)), nil)
	defer s.Stop()

	if _, err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if ft.Begins() != 0 {
		t.Error("expected no transition with a single shape")
	}
}

func TestTickSwallowsErrors(t *testing.T) {
	ft := &fakeTarget{n: 3, err: morph.ErrClosed}
	s, _ := New(DefaultConfig(), ft, rand.New(rand.NewSource(3)), nil)
	defer s.Stop()

	s.Tick()
	ft.err = errors.New("boom")
	s.Tick()
	if s.Changes() != 0 {
		t.Errorf("expected no changes, got %d", s.Changes())
	}
}

func TestStopIsFinal(t *testing.T) {
	ft := &fakeTarget{n: 7}
	s, _ := New(DefaultConfig(), ft, rand.New(rand.NewSource(3)), nil)
	s.Stop()
	s.Stop()

	if _, err := s.Step(); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
	s.Tick()
	s.Start()
	if ft.Begins() != 0 {
		t.Errorf("expected no transitions after Stop, got %d", ft.Begins())
	}
}

func TestStartTicksOnInterval(t *testing.T) {
	ft := &fakeTarget{n: 7}
	s, err := New(Config{Interval: 10 * time.Millisecond}, ft, rand.New(rand.NewSource(5)), nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Start()

	deadline := time.Now().Add(2 * time.Second)
	for ft.Begins() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()

	got := ft.Begins()
	if got < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", got)
	}
	time.Sleep(50 * time.Millisecond)
	if ft.Begins() != got {
		t.Errorf("ticks continued after Stop: %d -> %d", got, ft.Begins())
	}
}

func TestSchedulerDrivesEngine(t *testing.T) {
	set, _ := shapes.NewSet(shapes.Params{Count: 64, Radius: 1}, rand.New(rand.NewSource(1)))
	eng, err := morph.New(morph.Config{Points: 64, MorphDuration: time.Second}, set)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := New(DefaultConfig(), eng, rand.New(rand.NewSource(2)), nil)

	next, err := s.Step()
	if err != nil {
		t.Fatal(err)
	}
	if next == 0 || eng.Active() != next || !eng.Transitioning() {
		t.Errorf("engine not retargeted: next=%d active=%d", next, eng.Active())
	}

	eng.Advance(0.3)
	mid := eng.Snapshot()
	if next, err = s.Step(); err != nil {
		t.Fatal(err)
	}
	cur := eng.Current()
	for k := range mid {
		if cur[k] != mid[k] {
			t.Fatalf("value %d: transition should start from the visible buffer, got %f want %f", k, cur[k], mid[k])
		}
	}

	s.Stop()
	eng.Close()
	before := eng.Snapshot()
	s.Tick()
	eng.Advance(1)
	if eng.Active() != next {
		t.Error("active shape changed after teardown")
	}
	for k := range before {
		if eng.Snapshot()[k] != before[k] {
			t.Fatal("visible buffer changed after teardown")
		}
	}
}
