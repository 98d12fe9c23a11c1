// Package tsp: tour utilities shared by the constructor and local search.
//
// This file operates purely on tour structure (index sequences), without
// touching costs:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - IdentityTour: 0,1,…,n−1.
//   - Reverse / reverse: in-place segment reversal (the 2-opt mutation).
//   - CopyTour: independent copy.
//   - SameCycle: equality as undirected cycles (rotation and direction).
//   - DebugString: compact printable representation.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for most helpers; reversal is O(range) with no allocation.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// IdentityTour returns the tour 0,1,…,n−1.
//
// Complexity: O(n) time, O(n) space.
func IdentityTour(n int) []int {
	if n <= 0 {
		return nil
	}
	tour := make([]int, n)
	var i int
	for i = range tour {
		tour[i] = i
	}

	return tour
}

// Reverse reverses the inclusive range tour[beg..end] in place.
//
// Contract: 0 ≤ beg ≤ end < len(tour); otherwise ErrDimensionMismatch and the
// tour is left untouched.
//
// Complexity: O(end−beg) time, O(1) space.
func Reverse(tour []int, beg, end int) error {
	if beg < 0 || end >= len(tour) || beg > end {
		return ErrDimensionMismatch
	}
	reverse(tour, beg, end)

	return nil
}

// reverse is the unchecked two-cursor exchange used on the 2-opt hot path:
// the cursors start at both ends of the range and move inward.
func reverse(tour []int, beg, end int) {
	for beg < end {
		tour[beg], tour[end] = tour[end], tour[beg]
		beg++
		end--
	}
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle,
// i.e. they are equal up to rotation and/or reversal.
//
// Complexity: O(n) time.
func SameCycle(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	// Locate a[0] inside b.
	var (
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	var i int
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the implicit closing edge.
//
// Complexity: O(n) time, O(n) space.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteByte(']')

	return sb.String()
}
