package seq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterPadded(t *testing.T) {
	c := NewCounter("INV", DocWidth)
	assert.Equal(t, "INV000001", c.Next())
	assert.Equal(t, "INV000002", c.Next())
}

func TestCounterUnpadded(t *testing.T) {
	c := NewCounter("E", 0)
	assert.Equal(t, "E1", c.Next())
	assert.Equal(t, "E2", c.Next())
	assert.Equal(t, "E3", c.Next())
}

func TestCountersIndependent(t *testing.T) {
	inv := NewCounter("INV", DocWidth)
	po := NewCounter("PO", DocWidth)

	inv.Next()
	inv.Next()
	assert.Equal(t, "PO000001", po.Next())
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter("FA", DocWidth)

	const n = 100
	seen := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Next()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]bool)
	for id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, n, "no duplicate ids under contention")
}

func TestTaxReportNo(t *testing.T) {
	assert.Equal(t, "TAX202501", TaxReportNo(2025, 1))
	assert.Equal(t, "TAX202512", TaxReportNo(2025, 12))
}
