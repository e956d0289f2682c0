package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/shapeshift/internal/shapes"
)

func TestExportFileUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "spiral.xyz")
	cloud := shapes.Spiral(shapes.Params{Count: 10, Radius: 1})

	if err := exportFile(path, cloud, exportOptions{Format: "xyz"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("unknown format left a file behind: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Errorf("unknown format created a directory: %v", err)
	}
}

func TestExportFileFormats(t *testing.T) {
	dir := t.TempDir()
	cloud := shapes.TorusKnot(shapes.Params{Count: 50, Radius: 1})

	csvPath := filepath.Join(dir, "knot.csv")
	if err := exportFile(csvPath, cloud, exportOptions{Format: "csv"}); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != 51 {
		t.Errorf("expected header plus 50 rows, got %d lines", got)
	}

	svgPath := filepath.Join(dir, "svg", "knot.svg")
	opts := exportOptions{Format: "svg", Fill: "#87ceeb", Cols: 30, Rows: 15, Scale: 4}
	if err := exportFile(svgPath, cloud, opts); err != nil {
		t.Fatalf("svg export failed: %v", err)
	}
	data, err = os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), "<circle") {
		t.Error("expected an svg document with plotted points")
	}
}
