package pulse

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-pulse/internal/types"
)

func verdictFor(pulse string) types.PulseVerdict {
	return types.PulseVerdict{Pulse: pulse, Explanation: "because"}
}

func TestCacheSetGet(t *testing.T) {
	c := newVerdictCache(100, time.Minute)

	c.set("AAPL", verdictFor("bullish"))

	got, found := c.get("AAPL")
	require.True(t, found)
	assert.Equal(t, "bullish", got.Pulse)
}

func TestCacheMiss(t *testing.T) {
	c := newVerdictCache(100, time.Minute)

	_, found := c.get("MSFT")

	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := newVerdictCache(100, 50*time.Millisecond)

	c.set("AAPL", verdictFor("bullish"))
	time.Sleep(80 * time.Millisecond)

	_, found := c.get("AAPL")
	assert.False(t, found)
}

func TestCacheCapacityEvictsOldest(t *testing.T) {
	c := newVerdictCache(3, time.Minute)

	c.set("A", verdictFor("bullish"))
	c.set("B", verdictFor("bearish"))
	c.set("C", verdictFor("neutral"))
	c.set("D", verdictFor("bullish"))

	_, foundA := c.get("A")
	_, foundB := c.get("B")
	_, foundD := c.get("D")
	assert.False(t, foundA, "oldest entry should be evicted")
	assert.True(t, foundB)
	assert.True(t, foundD)
	assert.Equal(t, 3, c.len())
}

func TestCacheResetRefreshesInsertionOrder(t *testing.T) {
	c := newVerdictCache(2, time.Minute)

	c.set("A", verdictFor("bullish"))
	c.set("B", verdictFor("bearish"))
	c.set("A", verdictFor("neutral")) // A becomes the newest insertion
	c.set("C", verdictFor("bullish")) // evicts B, not A

	_, foundB := c.get("B")
	gotA, foundA := c.get("A")
	require.True(t, foundA)
	assert.False(t, foundB)
	assert.Equal(t, "neutral", gotA.Pulse)
}

func TestCacheCleanupRemovesExpired(t *testing.T) {
	c := newVerdictCache(100, 30*time.Millisecond)

	for i := 0; i < 5; i++ {
		c.set(fmt.Sprintf("SYM%d", i), verdictFor("neutral"))
	}
	time.Sleep(60 * time.Millisecond)

	c.cleanup()

	assert.Equal(t, 0, c.len())
	c.mu.RLock()
	assert.Empty(t, c.order)
	c.mu.RUnlock()
}
