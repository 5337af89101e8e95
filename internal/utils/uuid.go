package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for groups and containers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, so ids of groups created later
// sort after earlier ones. It falls back to a random v4 when the v7 clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
