package reconstruct

import "errors"

// Sentinel errors for matching reconstruction.
var (
	// ErrAsymmetricMatch indicates a post was matched to an applicant it
	// never listed on its own preference list — a legal instance state
	// (domain.Validate does not require mutual listing), but one
	// ToMatching cannot assign a real rank to on the post's side.
	ErrAsymmetricMatch = errors.New("reconstruct: post matched to applicant absent from its own preference list")
)
