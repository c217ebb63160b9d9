package anim

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log/slog"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFrameDelay is the per-frame display time in hundredths of a
	// second, matching a 1000ms animation step.
	DefaultFrameDelay = 100
)

// Assembler downloads every resolvable image reference, decodes the frames
// and encodes them into a single looping gif. Positions whose reference is
// empty, whose download fails or whose frame cannot be decoded are dropped;
// the remaining frames keep their original relative order. Downloads are not
// retried, unlike generation.
type Assembler struct {
	downloader      Downloader
	frameDelay      int
	downloadTimeout time.Duration
	maxParallel     int
}

type AssemblerOptions struct {
	Downloader      Downloader
	FrameDelay      int
	DownloadTimeout time.Duration
	MaxParallel     int
}

func NewAssembler(opts AssemblerOptions) (*Assembler, error) {
	if opts.Downloader == nil {
		return nil, fmt.Errorf("downloader is required")
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = DefaultFrameDelay
	}

	return &Assembler{
		downloader:      opts.Downloader,
		frameDelay:      opts.FrameDelay,
		downloadTimeout: opts.DownloadTimeout,
		maxParallel:     opts.MaxParallel,
	}, nil
}

// Assemble returns the encoded gif and the number of frames it contains. An
// all-failed reference list yields (nil, 0, nil): no artifact is not an
// error.
func (a *Assembler) Assemble(ctx context.Context, urls []string) ([]byte, int, error) {
	raw, err := a.downloadAll(ctx, urls)
	if err != nil {
		return nil, 0, err
	}

	frames := a.decodeFrames(raw)
	if len(frames) == 0 {
		return nil, 0, nil
	}

	data, err := a.encodeGif(frames)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode gif: %w", err)
	}

	return data, len(frames), nil
}

func (a *Assembler) downloadAll(ctx context.Context, urls []string) ([][]byte, error) {
	raw := make([][]byte, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	if a.maxParallel > 0 {
		g.SetLimit(a.maxParallel)
	}

	for i, url := range urls {
		if url == "" {
			continue
		}

		i, url := i, url
		g.Go(func() error {
			data, err := a.fetchOnce(gctx, url)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				slog.Warn("failed to download frame, dropping it", "position", i, "error", err)
				return nil
			}
			raw[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return raw, nil
}

func (a *Assembler) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	if a.downloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.downloadTimeout)
		defer cancel()
	}

	return a.downloader.Fetch(ctx, url)
}

func (a *Assembler) decodeFrames(raw [][]byte) []image.Image {
	var frames []image.Image
	var bounds image.Rectangle

	for i, data := range raw {
		if data == nil {
			continue
		}

		frame, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			slog.Warn("failed to decode frame, dropping it", "position", i, "error", err)
			continue
		}

		if len(frames) == 0 {
			bounds = frame.Bounds()
		} else if !frame.Bounds().Eq(bounds) {
			slog.Warn("frame dimensions differ from first frame, dropping it",
				"position", i, "bounds", frame.Bounds(), "want", bounds, "format", format)
			continue
		}

		frames = append(frames, frame)
	}

	return frames
}

func (a *Assembler) encodeGif(frames []image.Image) ([]byte, error) {
	out := &gif.GIF{
		LoopCount: 0,
	}

	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min)

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, a.frameDelay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, out); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
