package buffer

import "fmt"

// Window defines a contiguous slice [ Offset , Offset+Length ) of a data array.
type Window struct {
	Offset int
	Length int
}

// End returns the exclusive end index of the window.
func (w Window) End() int {
	return w.Offset + w.Length
}

func (w Window) String() string {
	return fmt.Sprintf("[%d:%d]", w.Offset, w.End())
}

// Windows slices the range [ 0 , total ) into bounded windows.
// The first window is at most initial elements long, every following one at most steady.
// The initial window is allowed to differ, as the first chunk of a deployment rides on
// the contract-creating operation itself, which leaves less room for payload.
// The windows cover the full range in order, with no gaps or overlaps,
// and the last one truncated to fit.
func Windows(total, initial, steady int) []Window {
	if initial <= 0 || steady <= 0 {
		panic(fmt.Sprintf("invalid window sizes: initial = %d , steady = %d", initial, steady))
	}
	if total <= 0 {
		return nil
	}
	windows := make([]Window, 0, total/steady+2)
	size := initial
	for offset := 0; offset < total; offset += size {
		if offset > 0 {
			size = steady
		}
		length := size
		if offset+length > total {
			length = total - offset
		}
		windows = append(windows, Window{Offset: offset, Length: length})
	}
	return windows
}
