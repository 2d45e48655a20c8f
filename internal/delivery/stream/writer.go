// Package stream emits generated orders as JSON lines to a configured
// target, optionally throttled to simulate live event traffic.
package stream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"ordergen/config"
	"ordergen/internal/errors"
	"ordergen/internal/usecase"

	"go.uber.org/fx"
)

// Writer consumes an order stream and writes one JSON object per line.
type Writer struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	closer io.Closer

	// throttle has its own time-based source: pacing must not disturb
	// the generator's seeded state.
	throttle *rand.Rand
}

// Params holds dependencies for the stream writer.
type Params struct {
	fx.In

	Cfg    *config.Config
	Logger *slog.Logger
}

// New creates a writer for the configured output target ("stdout" or a
// file path).
func New(params Params) (*Writer, error) {
	w := NewWithOutput(params.Cfg, params.Logger, os.Stdout)

	if target := params.Cfg.Output.Target; target != "stdout" {
		file, err := os.Create(target)
		if err != nil {
			return nil, errors.Wrapf(err, "open output target %s", target)
		}
		w.out = file
		w.closer = file
	}

	return w, nil
}

// NewWithOutput creates a writer emitting to the given destination.
func NewWithOutput(cfg *config.Config, logger *slog.Logger, out io.Writer) *Writer {
	return &Writer{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		throttle: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run drains one full stream from the source, writing each order as a
// JSON line. Cancelling the context stops emission early; partial
// consumption leaves nothing to clean up.
func (w *Writer) Run(ctx context.Context, source usecase.OrderUsecase) error {
	w.logger.Info("generating orders",
		slog.Time("anchorDate", source.AnchorDate()),
		slog.Int("totalOrders", w.cfg.Generator.TotalOrders),
		slog.String("target", w.cfg.Output.Target),
	)

	encoder := json.NewEncoder(w.out)
	stream := source.GenerateOrders()

	started := time.Now()
	written := 0
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopping order stream early", slog.Int("written", written))

			return nil
		default:
		}

		order, ok := stream.Next()
		if !ok {
			break
		}

		if err := encoder.Encode(order); err != nil {
			return errors.Wrapf(err, "encode order %d", order.OrderNumber)
		}
		written++

		if err := w.pause(ctx); err != nil {
			w.logger.Info("stopping order stream early", slog.Int("written", written))

			return nil
		}
	}

	w.logger.Info("order stream complete",
		slog.Int("written", written),
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// pause sleeps a uniform delay in [MinDelay, MaxDelay] when throttling
// is configured. It returns the context error when cancelled mid-sleep.
func (w *Writer) pause(ctx context.Context) error {
	maxDelay := w.cfg.Output.MaxDelay
	if maxDelay <= 0 {
		return nil
	}

	minDelay := w.cfg.Output.MinDelay
	delay := minDelay + time.Duration(w.throttle.Int63n(int64(maxDelay-minDelay)+1))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Close releases the output target when it is a file.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}

	return errors.WithStack(w.closer.Close())
}
