package passgen

import "errors"

// Construction errors. Transform never fails; every misconfiguration is
// reported by the stage constructor.
var (
	ErrEmptyAlphabet      = errors.New("alphabet must not be empty")
	ErrInvalidAlphabet    = errors.New("alphabet is not valid UTF-8")
	ErrNegativeCount      = errors.New("count must not be negative")
	ErrEmptyWordPool      = errors.New("no words left after length filter")
	ErrEmptyPhrasePool    = errors.New("no phrases left after length filter")
	ErrInvalidRange       = errors.New("minimum length exceeds maximum length")
	ErrInvalidDefectRange = errors.New("minimum defects exceed maximum defects")
	ErrEmptySubstitutions = errors.New("substitution table or candidate set is empty")
	ErrUnknownCase        = errors.New("unknown case convention")
	ErrNilCorpus          = errors.New("corpus is nil")
	ErrEmptySurround      = errors.New("at least one surround pair is required")
)
