package search

import (
	"cmp"
	"slices"
)

// tuples returns the strictly increasing n-tuples of positive sizes whose last
// element is hi, ordered by sum and then lexicographically.
func tuples(n, hi int) [][]int {
	if n < 1 || hi < n {
		return nil
	}
	var out [][]int
	prefix := make([]int, 0, n)
	var rec func(from int)
	rec = func(from int) {
		if len(prefix) == n-1 {
			t := append(append([]int(nil), prefix...), hi)
			out = append(out, t)

			return
		}
		for s := from; s < hi; s++ {
			prefix = append(prefix, s)
			rec(s + 1)
			prefix = prefix[:len(prefix)-1]
		}
	}
	rec(1)

	slices.SortStableFunc(out, func(a, b []int) int {
		if c := cmp.Compare(sum(a), sum(b)); c != 0 {
			return c
		}

		return slices.Compare(a, b)
	})

	return out
}

func sum(t []int) int {
	s := 0
	for _, v := range t {
		s += v
	}

	return s
}

// dominatesAny reports whether t is component-wise >= some tuple of seen.
func dominatesAny(t []int, seen [][]int) bool {
	for _, s := range seen {
		ge := true
		for i := range t {
			if t[i] < s[i] {
				ge = false

				break
			}
		}
		if ge {
			return true
		}
	}

	return false
}
