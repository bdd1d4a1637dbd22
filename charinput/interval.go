package charinput

import "fmt"

// Interval is an inclusive range of ordinals still selectable
type Interval struct {
	Start int
	End   int
}

// Len returns the number of ordinals in the interval
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Single reports whether the interval has collapsed to one ordinal
func (iv Interval) Single() bool {
	return iv.Start == iv.End
}

// Contains reports whether ord falls inside the interval
func (iv Interval) Contains(ord int) bool {
	return ord >= iv.Start && ord <= iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Start, iv.End)
}
