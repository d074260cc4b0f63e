package recipe

import "errors"

var (
	ErrEmptyRecipe   = errors.New("recipe has no stages")
	ErrInvalidRecipe = errors.New("failed to parse recipe")
	ErrUnknownPreset = errors.New("unknown recipe preset")
	ErrUnknownKind   = errors.New("unknown stage kind")
	ErrUnknownCorpus = errors.New("unknown corpus")
	ErrInvalidStage  = errors.New("invalid stage")
)
