package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for newly registered servers. It prefers
// time-ordered v7 UUIDs so records sort by creation, falling back to v4 if
// the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
