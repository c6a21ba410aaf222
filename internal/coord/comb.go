// Package coord implements the combinatorial-number-system and
// factorial-number-system primitives the cubie coordinates are built on.
package coord

// Choose returns C(n, k), the binomial coefficient, with the conventions
// the coordinate encoders rely on: Choose(n, 0) == 1 and Choose(n, k) == 0
// whenever n < k or k < 0.
func Choose(n, k int) int {
	if k < 0 || n < k {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// Factorial returns n! for the small n (<= 8) the coordinates need.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// rotateRight moves members[r] into members[l], shifting members[l:r]
// up by one slot. It is the primitive the factorial-number-system
// permutation rank/unrank below builds on: ranking repeatedly rotates the
// piece it wants into position and counts the rotations.
func rotateRight(members []int, l, r int) {
	saved := members[r]
	for i := r; i > l; i-- {
		members[i] = members[i-1]
	}
	members[l] = saved
}

// rotateLeft is rotateRight's inverse.
func rotateLeft(members []int, l, r int) {
	saved := members[l]
	for i := l; i < r; i++ {
		members[i] = members[i+1]
	}
	members[r] = saved
}

// EncodeSubset computes the combined combination+permutation coordinate
// for the `setSize` pieces labeled base..base+setSize-1 as they sit
// within perm, an n-element permutation array. The result is
// Factorial(setSize)*comb + permRank, where comb ranges over
// [0, Choose(n, setSize)) and permRank over [0, Factorial(setSize)).
//
// Positions of perm holding a value outside [base, base+setSize) are
// ignored, so a caller may pass an array whose "don't care" slots hold
// any sentinel distinct from the subset's own labels.
func EncodeSubset(perm []int, n, setSize, base int) int {
	members := make([]int, setSize)
	comb, found := 0, 0
	for j := n - 1; j >= 0; j-- {
		p := perm[j]
		if p >= base && p < base+setSize {
			comb += Choose(n-1-j, found+1)
			members[setSize-1-found] = p
			found++
		}
	}

	rank := 0
	for j := setSize - 1; j > 0; j-- {
		k := 0
		for members[j] != base+j {
			rotateLeft(members, 0, j)
			k++
		}
		rank += k * Factorial(j)
	}
	return Factorial(setSize)*comb + rank
}

// DecodeSubset is EncodeSubset's inverse: given a combined coordinate it
// writes the subset's pieces (base..base+setSize-1) into their decoded
// slots of perm, and fills every other slot with sentinel.
func DecodeSubset(idx, n, setSize, base, sentinel int, perm []int) {
	rank := idx % Factorial(setSize)
	comb := idx / Factorial(setSize)

	members := make([]int, setSize)
	for i := range members {
		members[i] = base + i
	}
	for j := 1; j < setSize; j++ {
		k := rank % (j + 1)
		rank /= j + 1
		for ; k > 0; k-- {
			rotateRight(members, 0, j)
		}
	}

	for i := range perm {
		perm[i] = sentinel
	}
	x := setSize - 1
	for j := 0; j < n && x >= 0; j++ {
		c := Choose(n-1-j, x+1)
		if comb >= c {
			perm[j] = members[setSize-1-x]
			comb -= c
			x--
		}
	}
}
