package cubie

// VerifyError reports which structural invariant a cubie state fails,
// carrying the historical numeric code callers print as "Error N".
type VerifyError struct {
	code int
	msg  string
}

func (e *VerifyError) Error() string { return e.msg }

// Code returns the positive historical numeric error code.
func (e *VerifyError) Code() int { return e.code }

func newVerifyError(code int, msg string) *VerifyError {
	return &VerifyError{code: code, msg: msg}
}

// Sentinel errors for errors.Is/errors.As callers; Code() on each
// reproduces the legacy numeric code.
var (
	ErrInvalidEdgePerm   = newVerifyError(2, "edge permutation is missing or duplicates a piece")
	ErrBadEdgeParity     = newVerifyError(3, "sum of edge orientations is not divisible by 2")
	ErrInvalidCornerPerm = newVerifyError(4, "corner permutation is missing or duplicates a piece")
	ErrBadCornerParity   = newVerifyError(5, "sum of corner orientations is not divisible by 3")
	ErrParityMismatch    = newVerifyError(6, "corner and edge permutation parities differ")
)

// Verify checks edge permutation, edge orientation parity, corner
// permutation, corner orientation parity, and cross-parity, returning the
// first violated invariant, or nil if the state is a legally reachable
// cube.
func (s State) Verify() error {
	if !isPermutation(s.EdgePerm[:]) {
		return ErrInvalidEdgePerm
	}

	edgeOrientSum := 0
	for _, o := range s.EdgeOrient {
		edgeOrientSum += o
	}
	if edgeOrientSum%2 != 0 {
		return ErrBadEdgeParity
	}

	if !isPermutation(s.CornerPerm[:]) {
		return ErrInvalidCornerPerm
	}

	cornerOrientSum := 0
	for _, o := range s.CornerOrient {
		cornerOrientSum += o
	}
	if cornerOrientSum%3 != 0 {
		return ErrBadCornerParity
	}

	if s.cornerParity() != s.edgeParity() {
		return ErrParityMismatch
	}

	return nil
}

func isPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
