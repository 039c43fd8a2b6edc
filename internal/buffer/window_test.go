package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {

	type test struct {
		total   int
		initial int
		steady  int
		windows []Window
	}

	tests := map[string]test{
		"empty": {
			total:   0,
			initial: 150,
			steady:  350,
			windows: nil,
		},
		"single-truncated": {
			total:   100,
			initial: 150,
			steady:  350,
			windows: []Window{{0, 100}},
		},
		"exact-initial": {
			total:   150,
			initial: 150,
			steady:  350,
			windows: []Window{{0, 150}},
		},
		"initial-and-steady": {
			total:   500,
			initial: 150,
			steady:  350,
			windows: []Window{{0, 150}, {150, 350}},
		},
		"last-truncated": {
			total:   1000,
			initial: 450,
			steady:  450,
			windows: []Window{{0, 450}, {450, 450}, {900, 100}},
		},
		"steady-smaller-than-initial": {
			total:   700,
			initial: 200,
			steady:  250,
			windows: []Window{{0, 200}, {200, 250}, {450, 250}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			windows := Windows(tt.total, tt.initial, tt.steady)
			assert.Equal(t, tt.windows, windows)
		})
	}
}

// the windows should reconstruct the full range for any combination of sizes,
// with no gaps or overlaps and the tail bounded by the steady size.
func TestWindows_Coverage(t *testing.T) {

	for total := 1; total < 600; total += 7 {
		for _, initial := range []int{1, 3, 150, 200, 450} {
			for _, steady := range []int{1, 5, 250, 350} {
				windows := Windows(total, initial, steady)
				next := 0
				for i, w := range windows {
					assert.Equal(t, next, w.Offset, "gap or overlap at window %d for (%d,%d,%d)", i, total, initial, steady)
					assert.True(t, w.Length > 0)
					if i == 0 {
						assert.True(t, w.Length <= initial)
					} else {
						assert.True(t, w.Length <= steady)
					}
					next = w.End()
				}
				assert.Equal(t, total, next, "range not covered for (%d,%d,%d)", total, initial, steady)
			}
		}
	}
}

func TestWindows_InvalidSizes(t *testing.T) {
	assert.Panics(t, func() {
		Windows(10, 0, 350)
	})
	assert.Panics(t, func() {
		Windows(10, 150, -1)
	})
}
