package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordergen/config"
	"ordergen/internal/domain/entity"
	"ordergen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	total  int
	anchor time.Time
}

func (s *stubSource) GenerateOrders() *usecase.OrderStream {
	seq := 0

	return usecase.NewOrderStream(s.total, func() *entity.Order {
		seq++

		return &entity.Order{OrderNumber: seq, UserID: 1, Payment: entity.PaymentCreditCard}
	})
}

func (s *stubSource) AnchorDate() time.Time {
	return s.anchor
}

func testWriter(cfg *config.Config, out io.Writer) *Writer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithOutput(cfg, logger, out)
}

func TestWriter_Run_WritesOneJSONLinePerOrder(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Path = "unused"
	cfg.FillDefaults()
	cfg.Generator.TotalOrders = 25

	var buf bytes.Buffer
	writer := testWriter(cfg, &buf)

	source := &stubSource{total: 25, anchor: time.Date(2026, time.November, 27, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, writer.Run(context.Background(), source))

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		lines++

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &decoded))
		assert.EqualValues(t, lines, decoded["order_number"])
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 25, lines)
}

func TestWriter_Run_StopsOnCancelledContext(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Path = "unused"
	cfg.FillDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	writer := testWriter(cfg, &buf)

	require.NoError(t, writer.Run(ctx, &stubSource{total: 1000}))
	assert.Zero(t, buf.Len())
}

func TestWriter_Run_ThrottleDelaysEmission(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Path = "unused"
	cfg.FillDefaults()
	cfg.Output.MinDelay = 5 * time.Millisecond
	cfg.Output.MaxDelay = 10 * time.Millisecond

	var buf bytes.Buffer
	writer := testWriter(cfg, &buf)

	started := time.Now()
	require.NoError(t, writer.Run(context.Background(), &stubSource{total: 5}))

	assert.GreaterOrEqual(t, time.Since(started), 25*time.Millisecond)
}

func TestWriter_Close_NoFileTarget(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Path = "unused"
	cfg.FillDefaults()

	writer := testWriter(cfg, io.Discard)
	assert.NoError(t, writer.Close())
}
