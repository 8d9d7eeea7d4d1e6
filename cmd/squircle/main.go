// Command squircle prints the outline of a squircle as an SVG path, an SVG
// document, or writes it as a PNG mask.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/squircle"
	"honnef.co/go/squircle/raster"
)

func main() {
	var (
		width    = flag.Float64("width", 100, "box width")
		height   = flag.Float64("height", 100, "box height")
		radius   = flag.Float64("radius", 20, "corner radius")
		tl       = flag.Float64("tl", -1, "top left radius (negative uses -radius)")
		tr       = flag.Float64("tr", -1, "top right radius (negative uses -radius)")
		br       = flag.Float64("br", -1, "bottom right radius (negative uses -radius)")
		bl       = flag.Float64("bl", -1, "bottom left radius (negative uses -radius)")
		exponent = flag.Float64("exponent", squircle.DefaultExponent, "superellipse exponent")
		points   = flag.Int("points", squircle.DefaultPointsPerCorner, "samples per corner")
		format   = flag.String("format", "path", "output format: path, svg or png")
		output   = flag.String("o", "-", "output file")
		verbose  = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	radii := squircle.Uniform(*radius)
	for c, v := range map[squircle.Corner]float64{
		squircle.TopLeft:     *tl,
		squircle.TopRight:    *tr,
		squircle.BottomRight: *br,
		squircle.BottomLeft:  *bl,
	} {
		if v >= 0 {
			radii = radii.With(c, v)
		}
	}

	sz := squircle.Sz(*width, *height)
	p := squircle.Generate(sz, radii, squircle.Profile{
		Exponent:        *exponent,
		PointsPerCorner: *points,
	})
	if p.IsEmpty() {
		log.Fatalf("box %s is degenerate", sz)
	}

	if err := write(*output, *format, sz, p); err != nil {
		log.Fatal(err)
	}
}

func write(name, format string, sz squircle.Size, p squircle.Path) error {
	var w io.Writer = os.Stdout
	if name != "-" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	var err error
	switch format {
	case "path":
		err = p.WriteSVG(bw, squircle.SVGOptions{})
		if err == nil {
			_, err = fmt.Fprintln(bw)
		}
	case "svg":
		err = writeDocument(bw, sz, p)
	case "png":
		err = png.Encode(bw, raster.Mask(p, raster.Bounds(p)))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return nil
}

func writeDocument(w io.Writer, sz squircle.Size, p squircle.Path) error {
	if _, err := fmt.Fprintf(w, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", sz.Width, sz.Height); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<path d="`); err != nil {
		return err
	}
	if err := p.WriteSVG(w, squircle.SVGOptions{}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\" fill=\"black\" />\n</svg>\n")
	return err
}
