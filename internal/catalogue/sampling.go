package catalogue

import "math/rand/v2"

// sampleIndices draws k distinct indices from [0, n) uniformly at random
// without replacement, per spec.md §4.4. The randomness source is
// unspecified by the spec and need not be cryptographic — math/rand/v2's
// package-level generator is used directly, the same "no fixed seed"
// posture Design Note 5 calls for.
func sampleIndices(n, k int) []int {
	if k >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	picked := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		i := rand.IntN(n)
		if picked[i] {
			continue
		}
		picked[i] = true
		out = append(out, i)
	}
	return out
}
