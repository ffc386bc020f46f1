package tournament

import "errors"

var (
	// ErrInvalidGroupSize indicates Max4LexNotDominated was called with n
	// outside [1, 4]. This is a programmer error (invariant violation): it
	// must never be retried or swallowed by a caller.
	ErrInvalidGroupSize = errors.New("tournament: group size must be in [1, 4]")

	// ErrEmptyCandidates indicates MaxLexNotDominated was called with an
	// empty candidate slice. Also a programmer error.
	ErrEmptyCandidates = errors.New("tournament: candidate set must not be empty")
)
