package kernel

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	PartnerIDPrefix = "PTN"
	OrderIDPrefix   = "ORD"

	publicIDSuffixLength = 8
	publicIDAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Bytes at or above this value are discarded so every symbol is equally likely.
	publicIDByteLimit = 256 - 256%len(publicIDAlphabet)

	uuidVersionByte = 6
	uuidVariantByte = 8
)

// PublicIDGenerator issues identifiers for new aggregates. It is injected into
// the use cases that create aggregates so tests can use a deterministic source.
type PublicIDGenerator interface {
	NewPublicID(prefix string) PublicID
}

// RandomPublicIDGenerator produces "<prefix>_XXXXXXXX" identifiers whose suffix is
// drawn from the random bits of a version 4 UUID.
type RandomPublicIDGenerator struct{}

func NewRandomPublicIDGenerator() RandomPublicIDGenerator {
	return RandomPublicIDGenerator{}
}

func (RandomPublicIDGenerator) NewPublicID(prefix string) PublicID {
	return PublicID{value: prefix + "_" + randomSuffix(uuid.New)}
}

// randomSuffix draws UUIDs from source until it has enough unbiased bytes.
// The version and variant bytes carry fixed bits and are skipped.
func randomSuffix(source func() uuid.UUID) string {
	suffix := make([]byte, 0, publicIDSuffixLength)
	for len(suffix) < publicIDSuffixLength {
		random := source()
		for i, b := range random {
			if i == uuidVersionByte || i == uuidVariantByte || int(b) >= publicIDByteLimit {
				continue
			}
			suffix = append(suffix, publicIDAlphabet[int(b)%len(publicIDAlphabet)])
			if len(suffix) == publicIDSuffixLength {
				break
			}
		}
	}
	return string(suffix)
}

// SequentialPublicIDGenerator produces "<prefix>_00000001", "<prefix>_00000002", ...
// It is safe for concurrent use.
type SequentialPublicIDGenerator struct {
	next atomic.Uint64
}

func NewSequentialPublicIDGenerator() *SequentialPublicIDGenerator {
	return &SequentialPublicIDGenerator{}
}

func (g *SequentialPublicIDGenerator) NewPublicID(prefix string) PublicID {
	return PublicID{value: fmt.Sprintf("%s_%08d", prefix, g.next.Add(1))}
}
