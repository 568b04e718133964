// Package skills provides the interface for skill state persistence
package skills

//go:generate mockgen -destination=mock/mock_repository.go -package=skillsmock github.com/a602017206/WordRPGGame/internal/repositories/skills Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for per-character skill persistence
type Repository interface {
	// Get retrieves the skill state of one character
	// Returns errors.NotFound when the character has no saved skill state
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save persists the skill state of one character
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting skill state
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting skill state
type GetOutput struct {
	Skills *entities.CharacterSkills
}

// SaveInput defines the input for saving skill state
type SaveInput struct {
	Skills *entities.CharacterSkills
}

// SaveOutput defines the output for saving skill state
type SaveOutput struct{}
