package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
)

// layout holds the panel dimensions, in canvas units before -scale.
type layout struct {
	ClipRectLeft    float64 `toml:"clipRectLeft"`
	ClipRectTop     float64 `toml:"clipRectTop"`
	ClipRectRight   float64 `toml:"clipRectRight"`
	ClipRectBottom  float64 `toml:"clipRectBottom"`
	RectInset       float64 `toml:"rectInset"`
	SmallRectOffset float64 `toml:"smallRectOffset"`
	CircleRadius    float64 `toml:"circleRadius"`
	TextOffset      float64 `toml:"textOffset"`
	TextSize        float64 `toml:"textSize"`
	StrokeWidth     float64 `toml:"strokeWidth"`
}

func defaultLayout() layout {
	return layout{
		ClipRectLeft:    0,
		ClipRectTop:     0,
		ClipRectRight:   90,
		ClipRectBottom:  90,
		RectInset:       8,
		SmallRectOffset: 40,
		CircleRadius:    30,
		TextOffset:      20,
		TextSize:        18,
		StrokeWidth:     6,
	}
}

var errBadLayout = errors.New("invalid layout")

// readLayout loads path over the defaults. An empty path returns the
// defaults unchanged.
func readLayout(path string, log *slog.Logger) (layout, error) {
	l := defaultLayout()
	if path == "" {
		return l, nil
	}
	md, err := toml.DecodeFile(path, &l)
	if err != nil {
		return layout{}, fmt.Errorf("couldn't read config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", slog.String("file", path), slog.String("key", key.String()))
	}
	if err := l.validate(); err != nil {
		return layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l layout) validate() error {
	switch {
	case l.ClipRectRight <= l.ClipRectLeft:
		return fmt.Errorf("%w: clipRectRight %v <= clipRectLeft %v", errBadLayout, l.ClipRectRight, l.ClipRectLeft)
	case l.ClipRectBottom <= l.ClipRectTop:
		return fmt.Errorf("%w: clipRectBottom %v <= clipRectTop %v", errBadLayout, l.ClipRectBottom, l.ClipRectTop)
	case l.RectInset < 0, l.SmallRectOffset < 0, l.CircleRadius < 0,
		l.TextSize < 0, l.StrokeWidth < 0:
		return fmt.Errorf("%w: negative dimension", errBadLayout)
	}
	return nil
}

// grid is the panel placement derived from a layout.
type grid struct {
	columnOne, columnTwo              float64
	rowOne, rowTwo, rowThree, rowFour float64
	textRow, rejectRow                float64
	width, height                     float64
}

func (l layout) grid() grid {
	var g grid
	g.columnOne = l.RectInset
	g.columnTwo = g.columnOne + l.RectInset + l.ClipRectRight
	g.rowOne = l.RectInset
	g.rowTwo = g.rowOne + l.RectInset + l.ClipRectBottom
	g.rowThree = g.rowTwo + l.RectInset + l.ClipRectBottom
	g.rowFour = g.rowThree + l.RectInset + l.ClipRectBottom
	g.textRow = g.rowFour + 1.5*l.ClipRectBottom
	g.rejectRow = g.rowFour + l.RectInset + 2*l.ClipRectBottom
	g.width = g.columnTwo + l.ClipRectRight + l.RectInset
	g.height = g.rejectRow + l.ClipRectBottom + l.RectInset
	return g
}
