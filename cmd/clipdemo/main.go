// Command clipdemo renders a sheet of clipping examples with the gclip
// compositor: rectangle difference, circular clip-out, intersection,
// combined and rounded path clips, skewed and translated frames, and a
// quick-reject check.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/gogpu/gclip"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML layout file (defaults are used when empty)")
		output     = flag.String("output", "clipdemo.png", "output file")
		scale      = flag.Float64("scale", 2, "device pixels per layout unit")
		verbose    = flag.Bool("v", false, "log compositor activity")
	)
	flag.Parse()

	log := newLogger(os.Stderr, *verbose)
	gclip.SetLogger(log)

	if err := run(*configPath, *output, *scale, log); err != nil {
		log.Error("clipdemo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger returns a text logger on a terminal and a JSON logger
// otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func run(configPath, output string, scale float64, log *slog.Logger) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}
	l, err := readLayout(configPath, log)
	if err != nil {
		return err
	}
	img, err := render(l, scale, log)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}
	b := img.Bounds()
	log.Info("sheet saved", slog.String("file", output), slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	return nil
}
