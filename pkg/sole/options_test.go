package sole

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/sole/pkg/sole/config"
	"github.com/randalmurphal/sole/pkg/sole/observability"
)

// TestWithStrictRelease verifies the option flips release locking.
func TestWithStrictRelease(t *testing.T) {
	loose, err := Define(testName(t, "loose"),
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil)
	require.NoError(t, err)
	assert.False(t, loose.StrictRelease())

	strict, err := Define(testName(t, "strict"),
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil,
		WithStrictRelease[*Widget, NoArgs]())
	require.NoError(t, err)
	assert.True(t, strict.StrictRelease())
}

// TestWithConfig verifies settings loaded from YAML are applied to the
// definition.
func TestWithConfig(t *testing.T) {
	cfg, err := config.FromYAML([]byte("strict_release: true\n"))
	require.NoError(t, err)

	typ, err := Define(testName(t, ""),
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil,
		WithConfig[*Widget, NoArgs](cfg))
	require.NoError(t, err)
	assert.True(t, typ.StrictRelease())
}

// TestWithLogger verifies definition and construction events are logged
// with the type name.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	name := testName(t, "")
	typ, err := Define(name,
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil,
		WithLogger[*Widget, NoArgs](logger))
	require.NoError(t, err)

	_, err = typ.Obtain(context.Background(), NoArgs{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "type defined")
	assert.Contains(t, out, "instance constructed")
	assert.Contains(t, out, name)
}

// TestWithMetrics verifies a custom recorder receives obtain and release
// events.
func TestWithMetrics(t *testing.T) {
	recorder := &captureMetrics{}
	typ, err := Define(testName(t, ""),
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil,
		WithMetrics[*Widget, NoArgs](recorder))
	require.NoError(t, err)

	ctx := context.Background()
	inst, err := typ.Obtain(ctx, NoArgs{})
	require.NoError(t, err)
	_, err = typ.Obtain(ctx, NoArgs{})
	require.NoError(t, err)
	typ.Release(inst)

	assert.Equal(t, 2, recorder.obtains)
	assert.Equal(t, 1, recorder.fastPathHits)
	assert.Equal(t, 1, recorder.constructions)
	assert.Equal(t, 1, recorder.releases)
}

// TestWithMetrics_NilKeepsNoop verifies a nil recorder leaves the no-op
// default in place.
func TestWithMetrics_NilKeepsNoop(t *testing.T) {
	typ, err := Define(testName(t, ""),
		func(NoArgs) (*Widget, error) { return &Widget{}, nil }, nil,
		WithMetrics[*Widget, NoArgs](nil),
		WithTracing[*Widget, NoArgs](nil))
	require.NoError(t, err)

	_, err = typ.Obtain(context.Background(), NoArgs{})
	assert.NoError(t, err)
}

// captureMetrics is a MetricsRecorder that counts calls in-process.
type captureMetrics struct {
	obtains       int
	fastPathHits  int
	constructions int
	releases      int
}

var _ observability.MetricsRecorder = (*captureMetrics)(nil)

func (m *captureMetrics) RecordObtain(_ context.Context, _ string, fastPath bool, _ error) {
	m.obtains++
	if fastPath {
		m.fastPathHits++
	}
}

func (m *captureMetrics) RecordConstruction(_ context.Context, _ string, _ time.Duration, _ error) {
	m.constructions++
}

func (m *captureMetrics) RecordRelease(_ context.Context, _ string) {
	m.releases++
}
