// Package seq issues the per-document-type numbers used across the
// system: "INV000001", "PINV000001", "PO000001", "FA000001",
// "BDG000001" and the entry ids "E1", "E2", ... Each counter increments
// independently.
package seq

import (
	"fmt"
	"sync"
)

// DocWidth is the zero-padded width of document sequence numbers.
const DocWidth = 6

// Counter hands out monotonically increasing numbers under a prefix.
// Width 0 disables padding.
type Counter struct {
	mu     sync.Mutex
	prefix string
	width  int
	next   int
}

// NewCounter creates a counter starting at 1.
func NewCounter(prefix string, width int) *Counter {
	return &Counter{prefix: prefix, width: width, next: 1}
}

// Next returns the next number in the sequence.
func (c *Counter) Next() string {
	c.mu.Lock()
	n := c.next
	c.next++
	c.mu.Unlock()

	if c.width == 0 {
		return fmt.Sprintf("%s%d", c.prefix, n)
	}
	return fmt.Sprintf("%s%0*d", c.prefix, c.width, n)
}

// TaxReportNo formats a tax report number like "TAX202501". Tax reports
// are keyed by period, not by a counter.
func TaxReportNo(year, month int) string {
	return fmt.Sprintf("TAX%d%02d", year, month)
}
