package passgen

import (
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"
)

type ulidStage struct{}

// ULID returns a stage that appends a ULID: a 48-bit millisecond timestamp
// followed by 80 random bits, encoded as 26 Crockford base32 characters.
// The random part is drawn from the pipeline's source, the timestamp from
// the clock.
func ULID() Generator {
	return ulidStage{}
}

func (ulidStage) Transform(rng *rand.Rand, seed string) string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), randReader{rng: rng})
	if err != nil {
		return seed
	}
	return seed + id.String()
}
