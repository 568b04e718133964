// Package inventory provides the interface for inventory persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/a602017206/WordRPGGame/internal/repositories/inventory Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for character and account inventory
// persistence. Getters return an empty container with default capacity when
// nothing has been saved yet.
type Repository interface {
	// GetCharacter retrieves the inventory of one character
	GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error)

	// SaveCharacter persists the inventory of one character
	SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error)

	// GetAccount retrieves the account-wide inventory
	GetAccount(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error)

	// SaveAccount persists the account-wide inventory
	SaveAccount(ctx context.Context, input SaveAccountInput) (*SaveAccountOutput, error)
}

// Default container capacities
const (
	DefaultCharacterCapacity = 50
	DefaultAccountCapacity   = 100
)

// GetCharacterInput defines the input for getting a character inventory
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for getting a character inventory
type GetCharacterOutput struct {
	Inventory *entities.CharacterInventory
}

// SaveCharacterInput defines the input for saving a character inventory
type SaveCharacterInput struct {
	Inventory *entities.CharacterInventory
}

// SaveCharacterOutput defines the output for saving a character inventory
type SaveCharacterOutput struct{}

// GetAccountInput defines the input for getting the account inventory
type GetAccountInput struct{}

// GetAccountOutput defines the output for getting the account inventory
type GetAccountOutput struct {
	Inventory *entities.AccountInventory
}

// SaveAccountInput defines the input for saving the account inventory
type SaveAccountInput struct {
	Inventory *entities.AccountInventory
}

// SaveAccountOutput defines the output for saving the account inventory
type SaveAccountOutput struct{}
