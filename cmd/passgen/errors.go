package main

import "errors"

var (
	errInvalidCount      = errors.New("count must be positive")
	errInvalidCorpusSpec = errors.New("corpus must be given as name=path")
)
