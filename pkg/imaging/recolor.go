// Package imaging applies RYB color transforms to images.
package imaging

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-ryb/pkg/ryb"
)

var ErrEmptyImage = errors.New("image must not be empty")

// Transform maps one RYB color to another.
type Transform func(ryb.Color[float64]) ryb.Color[float64]

// Option configures a recolor run.
type Option func(c *config)

type config struct {
	workers int
}

// Workers sets how many rows are processed concurrently. Defaults to the
// number of usable CPUs.
func Workers(workers int) Option {
	return func(c *config) {
		c.workers = workers
	}
}

// Stats describes a finished recolor run.
type Stats struct {
	Pixels  int
	Rows    int
	Workers int
	Elapsed time.Duration
}

// Recolor applies the transform to every pixel of the image and returns the
// result. Rows are fanned out across a bounded group of goroutines; the run
// stops on the first error or when the context is cancelled. The alpha
// channel is carried over untouched.
func Recolor(ctx context.Context, img image.Image, fn Transform, opts ...Option) (*image.NRGBA, *Stats, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.workers < 1 {
		cfg.workers = 1
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, nil, ErrEmptyImage
	}

	start := time.Now()
	out := image.NewNRGBA(bounds)

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(cfg.workers)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		localY := y
		errGrp.Go(func() error {
			return recolorRow(dCtx, img, out, localY, fn)
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, nil, err
	}

	stats := &Stats{
		Pixels:  bounds.Dx() * bounds.Dy(),
		Rows:    bounds.Dy(),
		Workers: cfg.workers,
		Elapsed: time.Since(start),
	}

	return out, stats, nil
}

func recolorRow(ctx context.Context, src image.Image, dst *image.NRGBA, y int, fn Transform) error {
	select {
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "row %d", y)
	default:
	}

	const max = math.MaxUint8

	bounds := src.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		in, ok := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
		if !ok {
			return errors.Errorf("unexpected color model at %d,%d", x, y)
		}

		mapped := fn(ryb.FromRGB(ryb.RGB[float64]{
			float64(in.R) / max,
			float64(in.G) / max,
			float64(in.B) / max,
		}))
		rgb := mapped.RGB()

		dst.SetNRGBA(x, y, color.NRGBA{
			R: uint8(math.Round(rgb[0] * max)),
			G: uint8(math.Round(rgb[1] * max)),
			B: uint8(math.Round(rgb[2] * max)),
			A: in.A,
		})
	}

	return nil
}
