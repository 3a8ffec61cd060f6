// core/blockdist/distance.go
package blockdist

// BoundedDistance computes the unit-cost edit distance between a and b with
// an early-exit ceiling. It returns (d, true) when d <= bound and (0, false)
// once the true distance is confirmed to exceed it; the DP stops at the
// first row whose minimum already passed the bound.
func BoundedDistance(a, b []byte, bound int) (int, bool) {
	if bound < 0 {
		return 0, false
	}
	// length difference is a lower bound on the distance
	if d := len(a) - len(b); d > bound || -d > bound {
		return 0, false
	}
	if len(a) == 0 {
		return len(b), true
	}
	if len(b) == 0 {
		return len(a), true
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost // substitute / match
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := cur[j-1] + 1; ins < d {
				d = ins
			}
			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > bound {
			return 0, false
		}
		prev, cur = cur, prev
	}
	if d := prev[len(b)]; d <= bound {
		return d, true
	}
	return 0, false
}
