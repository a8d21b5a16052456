package sim

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/gridiron/internal/rng"
)

// byteReader turns a random source into an io.Reader so generated IDs
// follow the season seed.
type byteReader struct {
	src rng.Source
}

func (r byteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Intn(256))
	}
	return len(p), nil
}

// newID returns a version 4 UUID drawn from src.
func newID(src rng.Source) string {
	id, err := uuid.NewRandomFromReader(byteReader{src: src})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
