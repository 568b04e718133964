// Package equipment provides the interface for gear state persistence
package equipment

//go:generate mockgen -destination=mock/mock_repository.go -package=equipmentmock github.com/a602017206/WordRPGGame/internal/repositories/equipment Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for per-character gear persistence
type Repository interface {
	// Get retrieves the gear state of one character
	// Returns errors.NotFound when the character has no saved gear state
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the gear state of one character
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting gear state
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting gear state
type GetOutput struct {
	Equipment *entities.CharacterEquipment
}

// SaveInput defines the input for saving gear state
type SaveInput struct {
	Equipment *entities.CharacterEquipment
}

// SaveOutput defines the output for saving gear state
type SaveOutput struct{}
