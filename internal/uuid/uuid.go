// uuid simple generator that allows mocking
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator is an interface for generating unique item identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequentialGenerator produces predictable identifiers for tests
type SequentialGenerator struct {
	prefix string
	next   int
}

// NewSequentialGenerator creates a generator yielding prefix-0, prefix-1, ...
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next identifier in the sequence
func (g *SequentialGenerator) New() string {
	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}
