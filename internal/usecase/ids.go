package usecase

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out entry identifiers. Apply still checks each id
// against the target collection, so a generator only has to be unique for
// its own lifetime.
type IDGenerator interface {
	NextID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string { return uuid.NewString() }

// CounterGenerator yields "1", "2", ... in order.
type CounterGenerator struct {
	n atomic.Uint64
}

// NewCounterGenerator starts the sequence after start, so the first id is
// start+1.
func NewCounterGenerator(start uint64) *CounterGenerator {
	g := &CounterGenerator{}
	g.n.Store(start)
	return g
}

func (g *CounterGenerator) NextID() string {
	return strconv.FormatUint(g.n.Add(1), 10)
}

// NewIDGenerator maps a configured strategy name to a generator. Anything
// other than "counter" yields uuids.
func NewIDGenerator(strategy string) IDGenerator {
	if strategy == "counter" {
		return NewCounterGenerator(0)
	}
	return UUIDGenerator{}
}
