package passgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

type uuidStage struct{}

// UUID returns a stage that appends a random version 4 UUID. The UUID bytes
// come from the pipeline's random source, so seeded sources reproduce it.
func UUID() Generator {
	return uuidStage{}
}

func (uuidStage) Transform(rng *rand.Rand, seed string) string {
	id, err := uuid.NewRandomFromReader(randReader{rng: rng})
	if err != nil {
		// randReader never fails; keep Transform total regardless.
		return seed
	}
	return seed + id.String()
}
