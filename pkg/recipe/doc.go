// Package recipe describes password pipelines as YAML documents and compiles
// them into passgen generators.
//
// A recipe lists stages that run left to right over an empty string:
//
//	name: phrases
//	stages:
//	  - kind: phrase
//	    corpus: alice
//	    min: 3
//	    max: 4
//	  - kind: case
//	    case: camel
//	  - kind: or
//	    stages:
//	      - {kind: symbols, min: 1, max: 1}
//	      - {kind: vowels, min: 1, max: 1}
//	  - kind: digits
//	    length: 2
//
// Parse decodes a document and rejects unknown fields. Preset returns one of
// the embedded recipes listed by PresetNames.
//
// A Builder resolves corpus names and turns a Recipe into a single
// passgen.Generator:
//
//	b := recipe.NewBuilder(
//	    recipe.WithBuiltinCorpora(),
//	    recipe.WithCorpus("poems", corpus.New(text)),
//	    recipe.WithLogger(log),
//	)
//	gen, err := b.Build(ctx, r)
//
// Besides the built-in symbol and vowel defects, a stage can declare its own
// substitution table:
//
//	- kind: defects
//	  min: 1
//	  max: 2
//	  groups:
//	    - {from: "aA", to: "@4"}
//	    - {from: "sS", to: "$"}
//
// Build errors carry the path of the failing stage, such as
// "stages[2].stages[0]", and wrap ErrUnknownKind, ErrUnknownCorpus or
// ErrInvalidStage together with the passgen error that caused them. Every
// compiled stage is logged at debug level with the context given to Build.
package recipe
