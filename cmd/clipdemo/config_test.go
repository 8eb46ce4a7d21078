package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLayoutDefaults(t *testing.T) {
	got, err := readLayout("", discardLogger())
	if err != nil {
		t.Fatalf("readLayout(\"\") = %v", err)
	}
	if diff := cmp.Diff(defaultLayout(), got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLayoutOverrides(t *testing.T) {
	path := writeConfig(t, `
clipRectRight = 120.0
clipRectBottom = 100.0
circleRadius = 25.0
`)
	got, err := readLayout(path, discardLogger())
	if err != nil {
		t.Fatalf("readLayout() = %v", err)
	}

	want := defaultLayout()
	want.ClipRectRight = 120
	want.ClipRectBottom = 100
	want.CircleRadius = 25
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLayoutWarnsOnUnknownKeys(t *testing.T) {
	path := writeConfig(t, "rectInset = 4.0\ncolour = \"red\"\n")
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	got, err := readLayout(path, log)
	if err != nil {
		t.Fatalf("readLayout() = %v", err)
	}
	if got.RectInset != 4 {
		t.Errorf("RectInset = %v, want 4", got.RectInset)
	}
	if !strings.Contains(buf.String(), "colour") {
		t.Errorf("expected a warning naming the unknown key, got: %s", buf.String())
	}
}

func TestReadLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		layout bool
	}{
		{"syntax", "clipRectRight = = 3.0", false},
		{"wrong type", `clipRectRight = "wide"`, false},
		{"inverted width", "clipRectLeft = 100.0\nclipRectRight = 50.0", true},
		{"inverted height", "clipRectBottom = -1.0", true},
		{"negative inset", "rectInset = -2.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readLayout(writeConfig(t, tt.body), discardLogger())
			if err == nil {
				t.Fatal("readLayout() = nil, want error")
			}
			if got := errors.Is(err, errBadLayout); got != tt.layout {
				t.Errorf("errors.Is(err, errBadLayout) = %v, want %v (err: %v)", got, tt.layout, err)
			}
		})
	}

	if _, err := readLayout(filepath.Join(t.TempDir(), "missing.toml"), discardLogger()); err == nil {
		t.Error("readLayout() of a missing file = nil, want error")
	}
}

func TestLayoutGrid(t *testing.T) {
	g := defaultLayout().grid()
	want := grid{
		columnOne: 8, columnTwo: 106,
		rowOne: 8, rowTwo: 106, rowThree: 204, rowFour: 302,
		textRow: 437, rejectRow: 490,
		width: 204, height: 588,
	}
	if diff := cmp.Diff(want, g, cmp.AllowUnexported(grid{})); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}
