package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered request identifiers. UUIDv7 keeps
// IDs sortable by creation time, which makes log correlation easier.
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
