package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	c.Set(3, 1)

	if got := c.Grid[0][0]; got != brailleBase|0x1|0x80 {
		t.Errorf("cell 0: expected %U, got %U", brailleBase|0x81, got)
	}
	if got := c.Grid[0][1]; got != brailleBase|0x10 {
		t.Errorf("cell 1: expected %U, got %U", brailleBase|0x10, got)
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}
	if c.Hits() != 3 {
		t.Errorf("expected 3 hits, got %d", c.Hits())
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 8}, {100, 100}} {
		c.Set(p[0], p[1])
	}
	if c.Hits() != 0 {
		t.Errorf("expected out of range dots to be dropped, got %d hits", c.Hits())
	}
	if w, h := c.DotSize(); w != 6 || h != 8 {
		t.Errorf("expected 6x8 dots, got %dx%d", w, h)
	}
}

func TestCanvasClearAndString(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Set(2, 2)
	c.Clear()
	if c.Hits() != 0 || c.IsSet(2, 2) {
		t.Error("Clear left dots set")
	}
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 4 {
			t.Errorf("expected 4 cells per line, got %q", l)
		}
	}
}

func TestNewCanvasMinimumSize(t *testing.T) {
	c := NewCanvas(0, -3)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("expected 1x1 canvas, got %dx%d", c.Width, c.Height)
	}
}
