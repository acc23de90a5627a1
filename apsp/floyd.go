// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Dense distance-only APSP (Floyd–Warshall) with a fixed k → i → j loop order.
//   - Used to cross-check the Dijkstra table; it does not track predecessors.
//
// Contract:
//   - Infinity means "no path"; the diagonal is 0.

package apsp

// FloydWarshall returns the n×n shortest distances of src, indexed
// [src-1][dest-1]. Unreachable pairs hold Infinity. Parallel or
// out-of-range edges are reduced to the cheapest in-range one.
//
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall(src Source) [][]int64 {
	if src == nil {
		return nil
	}
	n := src.Size()
	if n < 0 {
		n = 0
	}

	// Initialise: 0 on the diagonal, direct edges elsewhere, Infinity otherwise.
	d := make([][]int64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		d[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			if i != j {
				d[i][j] = Infinity
			}
		}
		for v, w := range src.Edges(i + 1) {
			if v < 1 || v > n || v == i+1 {
				continue
			}
			if w < d[i][v-1] {
				d[i][v-1] = w
			}
		}
	}

	var ik, kj, cand int64
	for k = 0; k < n; k++ { // intermediate vertex
		for i = 0; i < n; i++ { // source
			ik = d[i][k]
			if ik == Infinity {
				continue
			}
			for j = 0; j < n; j++ { // destination
				kj = d[k][j]
				if kj == Infinity || kj >= Infinity-ik {
					continue
				}
				cand = ik + kj
				if cand < d[i][j] { // strict improvement only
					d[i][j] = cand
				}
			}
		}
	}

	return d
}

// MatchesFloydWarshall reports whether every distance in t equals the
// Floyd–Warshall closure of src. The first mismatching pair is returned
// (1-based) when they differ.
func (t *Table) MatchesFloydWarshall(src Source) (ok bool, srcID, destID int) {
	fw := FloydWarshall(src)
	if len(fw) != t.size {
		return false, 0, 0
	}
	for i := 0; i < t.size; i++ {
		for j := 0; j < t.size; j++ {
			if t.cells[i*t.size+j].Dist != fw[i][j] {
				return false, i + 1, j + 1
			}
		}
	}

	return true, 0, 0
}
