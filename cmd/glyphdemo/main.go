// Command glyphdemo measures and renders plot labels.
//
// It prints the metrics of -text and of every value in -values, then writes
// a PNG with the values as a right-aligned tick column next to -text.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/plotglyph"
	"github.com/gogpu/plotglyph/glyph"
	"github.com/gogpu/plotglyph/metrics"
	"github.com/gogpu/plotglyph/text"
)

func main() {
	var (
		label    = flag.String("text", "Temperature", "label text")
		family   = flag.String("family", "sans-serif", "font family")
		size     = flag.Int("size", 12, "pixel size")
		weight   = flag.String("weight", "normal", "font weight, name or 100-900")
		fg       = flag.String("color", "#000000", "text color as #rrggbb or #rrggbbaa")
		values   = flag.String("values", "-3.14,0,2.5,100", "comma separated tick values")
		decimals = flag.Int("decimals", 2, "tick decimals, negative for shortest")
		shaper   = flag.String("shaper", "builtin", "shaper: builtin or gotext")
		output   = flag.String("output", "glyphdemo.png", "output file")
		verbose  = flag.Bool("v", false, "debug logging")
		version  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("glyphdemo", plotglyph.Version)
		return
	}

	if *verbose {
		plotglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	w, ok := text.ParseWeight(*weight)
	if !ok {
		log.Fatalf("invalid weight %q", *weight)
	}
	col, err := parseColor(*fg)
	if err != nil {
		log.Fatal(err)
	}
	ticks, err := parseValues(*values)
	if err != nil {
		log.Fatal(err)
	}
	sh, err := newShaper(*shaper)
	if err != nil {
		log.Fatal(err)
	}

	svc := metrics.New(metrics.WithShaper(sh), metrics.WithWeight(w))
	printMetrics(svc, *label, ticks, *decimals, *family, *size, w)

	img := render(svc, sh, *label, ticks, *decimals, *family, *size, w, col)
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	b := img.Bounds()
	log.Printf("Demo saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())
}

func newShaper(name string) (text.Shaper, error) {
	switch name {
	case "builtin":
		return &text.BuiltinShaper{}, nil
	case "gotext":
		return text.NewGoTextShaper(), nil
	default:
		return nil, fmt.Errorf("unknown shaper %q", name)
	}
}

func printMetrics(svc *metrics.Service, label string, ticks []float64, decimals int, family string, size int, w text.Weight) {
	m := svc.Measure(metrics.StyleKey{Text: label, Family: family, PixelSize: size, Weight: w})
	fmt.Printf("%q\n", label)
	fmt.Printf("  advance %.3f  width %.0f  height %.0f\n", m.AdvanceWidth, m.Width(), m.Height())
	fmt.Printf("  ascent %.3f  descent %.3f\n", m.Ascent, m.Descent)
	fmt.Printf("  ink left %.3f  right %.3f  width %.3f  height %.3f\n", m.InkLeft, m.InkRight, m.InkWidth, m.InkHeight)

	fmt.Println("ticks")
	for _, v := range ticks {
		s := metrics.FormatNumber(v, decimals)
		fmt.Printf("  %-12q width %.0f  ink [%.3f, %.3f]\n", s,
			svc.NumberWidth(v, decimals, family, size),
			svc.InkLeft(s, family, size), svc.InkRight(s, family, size))
	}
	fmt.Printf("  max width %.0f  max ink width %.0f\n",
		svc.MaxNumberWidth(ticks, decimals, family, size),
		svc.MaxInkWidth(ticks, decimals, family, size))
	fmt.Printf("  padding left %.0f  right %.0f\n",
		svc.MaxLeftPadding(ticks, decimals, family, size),
		svc.MaxRightPadding(ticks, decimals, family, size))

	st := svc.CacheStats()
	fmt.Printf("cache hits %d misses %d\n", st.Hits, st.Misses)
}

const margin = 8

func render(svc *metrics.Service, sh text.Shaper, label string, ticks []float64, decimals int,
	family string, size int, w text.Weight, col color.Color,
) *image.RGBA {
	opts := func(s string) []glyph.Option {
		return []glyph.Option{
			glyph.WithRegistry(svc.Registry()),
			glyph.WithShaper(sh),
			glyph.WithText(s),
			glyph.WithFontFamily(family),
			glyph.WithPixelSize(size),
			glyph.WithWeight(w),
			glyph.WithColor(col),
		}
	}

	column := int(svc.MaxNumberWidth(ticks, decimals, family, size))
	rowHeight := int(svc.TextHeight(family, size))

	title := glyph.New(opts(label)...)
	defer title.Close()
	title.UpdateNode(nil, nil)

	width := margin*3 + column + title.ImplicitWidth()
	height := margin*2 + max(rowHeight*len(ticks), title.ImplicitHeight())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	for i, v := range ticks {
		r := glyph.New(opts(metrics.FormatNumber(v, decimals))...)
		r.UpdateNode(nil, nil)
		if src := r.Image(); src != nil {
			// right-align, leaving room for the right bearing
			pad := int(r.Metrics().RightPadding())
			x := margin + column - pad - src.Bounds().Dx()
			y := margin + i*rowHeight
			blit(dst, src, x, y)
		}
		r.Close()
	}

	if src := title.Image(); src != nil {
		blit(dst, src, margin*2+column, margin)
	}
	return dst
}

func blit(dst *image.RGBA, src *image.RGBA, x, y int) {
	r := src.Bounds().Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

func parseValues(s string) ([]float64, error) {
	var vals []float64
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
