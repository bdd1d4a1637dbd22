package charinput

import "fmt"

// Partition returns the branch-th of branches contiguous sub-intervals of iv.
// Ordinals are tiled exactly: each branch gets Len/branches ordinals, with the
// remainder distributed to the leading branches. Branches beyond the ordinal
// count (possible only when Len < branches) clamp to the last ordinal, so a
// one-element interval maps every branch to itself and narrowing can never
// invert an interval.
func Partition(iv Interval, branch, branches int) Interval {
	if branch < 0 || branch >= branches {
		panic(fmt.Sprintf("charinput: branch %d out of range [0, %d)", branch, branches))
	}

	n := iv.Len()
	base := n / branches
	rem := n % branches

	size := base
	if branch < rem {
		size++
	}
	if size == 0 {
		// Fewer ordinals than branches, nothing left for this branch
		return Interval{Start: iv.End, End: iv.End}
	}

	lo := iv.Start + branch*base + min(branch, rem)
	sub := Interval{Start: lo, End: lo + size - 1}
	if sub.Start > sub.End {
		panic(fmt.Sprintf("charinput: partition produced inverted interval %v from %v branch %d/%d",
			sub, iv, branch, branches))
	}
	return sub
}
