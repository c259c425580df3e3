package prices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-pulse/internal/types"
)

// stubProvider returns fixed data for resolver tests.
type stubProvider struct {
	name   string
	series types.PriceSeries
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) FetchDailySeries(_ context.Context, _ string) (types.PriceSeries, error) {
	s.calls++
	return s.series, s.err
}

// sixDaySeries yields closes [100, 102, 101, 103, 104, 105] most recent first.
func sixDaySeries() types.PriceSeries {
	return types.PriceSeries{
		"2024-03-08": 100,
		"2024-03-07": 102,
		"2024-03-06": 101,
		"2024-03-05": 103,
		"2024-03-04": 104,
		"2024-03-01": 105,
	}
}

func TestMomentumSixDates(t *testing.T) {
	got := Momentum(sixDaySeries())

	require.Len(t, got.Returns, 5)
	assert.Equal(t, []float64{-1.96, 0.99, -1.94, -0.96, -0.95}, got.Returns)
	assert.InDelta(t, -0.96, got.Score, 1e-9)
}

func TestMomentumScoreIsMeanOfReturns(t *testing.T) {
	got := Momentum(sixDaySeries())

	sum := 0.0
	for _, r := range got.Returns {
		sum += r
	}
	want := sum / float64(len(got.Returns))
	assert.InDelta(t, want, got.Score, 0.005)
}

func TestMomentumFewerDates(t *testing.T) {
	series := types.PriceSeries{
		"2024-03-08": 110,
		"2024-03-07": 100,
	}
	got := Momentum(series)

	require.Len(t, got.Returns, 1)
	assert.Equal(t, 10.0, got.Returns[0])
	assert.Equal(t, 10.0, got.Score)
}

func TestMomentumTooFewDates(t *testing.T) {
	for _, series := range []types.PriceSeries{
		{},
		{"2024-03-08": 100},
	} {
		got := Momentum(series)
		assert.Empty(t, got.Returns)
		assert.Zero(t, got.Score)
	}
}

func TestMomentumUsesSixMostRecentDates(t *testing.T) {
	series := sixDaySeries()
	// Older dates beyond the window must not affect the result.
	series["2024-02-28"] = 1
	series["2024-02-27"] = 2000

	got := Momentum(series)
	require.Len(t, got.Returns, 5)
	assert.Equal(t, []float64{-1.96, 0.99, -1.94, -0.96, -0.95}, got.Returns)
}

func TestResolvePrimarySuccessSkipsSecondary(t *testing.T) {
	primary := &stubProvider{name: "primary", series: sixDaySeries()}
	secondary := &stubProvider{name: "secondary", series: sixDaySeries()}
	r := NewResolver(time.Second, primary, secondary)

	got := r.Resolve(context.Background(), "AAPL")

	assert.Len(t, got.Returns, 5)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestResolveFailsOverToSecondary(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("boom")}
	secondary := &stubProvider{name: "secondary", series: sixDaySeries()}
	r := NewResolver(time.Second, primary, secondary)

	got := r.Resolve(context.Background(), "AAPL")

	assert.Len(t, got.Returns, 5)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestResolveAllProvidersFail(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("boom")}
	secondary := &stubProvider{name: "secondary", err: errors.New("also boom")}
	r := NewResolver(time.Second, primary, secondary)

	got := r.Resolve(context.Background(), "AAPL")

	assert.NotNil(t, got.Returns)
	assert.Empty(t, got.Returns)
	assert.Zero(t, got.Score)
}
