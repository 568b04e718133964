// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/a602017206/WordRPGGame/internal/repositories/character Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing character
	// Returns errors.NotFound if character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all characters on the account
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// GetSelected returns the active character id, empty when none selected
	GetSelected(ctx context.Context, input GetSelectedInput) (*GetSelectedOutput, error)

	// SetSelected marks a character as the active one
	SetSelected(ctx context.Context, input SetSelectedInput) (*SetSelectedOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.Character
}

// GetSelectedInput defines the input for reading the active character id
type GetSelectedInput struct{}

// GetSelectedOutput defines the output for reading the active character id
type GetSelectedOutput struct {
	CharacterID string
}

// SetSelectedInput defines the input for setting the active character
type SetSelectedInput struct {
	CharacterID string
}

// SetSelectedOutput defines the output for setting the active character
type SetSelectedOutput struct{}
