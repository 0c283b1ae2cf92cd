package service

import "errors"

// Sentinel errors for the contact pipeline
var (
	// ErrChallengeRejected means the verification service explicitly
	// reported the token as invalid.
	ErrChallengeRejected = errors.New("challenge token rejected")

	// ErrChallengeUnavailable means the verification service could not be
	// reached or returned an unparsable response.
	ErrChallengeUnavailable = errors.New("challenge verification unavailable")
)
