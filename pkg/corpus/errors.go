package corpus

import "errors"

var (
	// ErrUnknownCorpus is returned by Builtin for a name that is not embedded.
	ErrUnknownCorpus = errors.New("unknown built-in corpus")
)
