package main

import (
	"fmt"
	"strings"
)

type corpusSpec struct {
	name string
	path string
}

// parseCorpusSpec accepts "name=path" or "name:path".
func parseCorpusSpec(s string) (corpusSpec, error) {
	s = strings.TrimSpace(s)
	name, path, ok := strings.Cut(s, "=")
	if !ok {
		name, path, ok = strings.Cut(s, ":")
	}
	name, path = strings.TrimSpace(name), strings.TrimSpace(path)
	if !ok || name == "" || path == "" {
		return corpusSpec{}, fmt.Errorf("%w: %q", errInvalidCorpusSpec, s)
	}
	return corpusSpec{name: name, path: path}, nil
}

func parseCorpusSpecs(specs []string) ([]corpusSpec, error) {
	out := make([]corpusSpec, 0, len(specs))
	for _, s := range specs {
		if strings.TrimSpace(s) == "" {
			continue
		}
		spec, err := parseCorpusSpec(s)
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, nil
}
