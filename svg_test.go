package squircle

import (
	"errors"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		opts SVGOptions
		want string
	}{
		{
			"rectangle",
			Generate(Sz(10, 10), Uniform(0), Profile{}),
			SVGOptions{},
			"M 0,0 L 10,0 L 10,10 L 0,10 Z",
		},
		{
			"trailing zeros",
			Generate(Sz(10, 10), Uniform(0), Profile{}).Transform(Translate(Vec(100, 0))),
			SVGOptions{MaxPrecision: 2},
			"M 100,0 L 110,0 L 110,10 L 100,10 Z",
		},
		{
			"precision",
			Generate(Sz(1, 1), Uniform(0), Profile{}).Transform(Scale(1.0/3, 1)),
			SVGOptions{MaxPrecision: 3},
			"M 0,0 L 0.333,0 L 0.333,1 L 0,1 Z",
		},
		{
			"mirrored",
			Generate(Sz(1, 1), Uniform(0), Profile{}).Transform(Scale(-1, -1)),
			SVGOptions{},
			"M 0,0 L -1,0 L -1,-1 L 0,-1 Z",
		},
		{
			"empty",
			Path{},
			SVGOptions{},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.SVG(tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSVGSquircle(t *testing.T) {
	p := Generate(Sz(20, 20), Uniform(10), Profile{Exponent: 5, PointsPerCorner: 4})
	want := "M 10,0 L 15.7,0.12 L 19.88,4.3 L 20,10 L 19.88,15.7 L 15.7,19.88 L 10,20 " +
		"L 4.3,19.88 L 0.12,15.7 L 0,10 L 0.12,4.3 L 4.3,0.12 Z"
	if got := p.SVG(SVGOptions{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct {
	n int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	p := Generate(Sz(10, 10), Uniform(2), Profile{})
	err := p.WriteSVG(&failingWriter{n: 3}, SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != p.SVG(SVGOptions{}) {
		t.Errorf("WriteSVG and SVG disagree")
	}
}
