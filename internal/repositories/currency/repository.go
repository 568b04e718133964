// Package currency provides the interface for currency persistence
package currency

//go:generate mockgen -destination=mock/mock_repository.go -package=currencymock github.com/a602017206/WordRPGGame/internal/repositories/currency Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for gold and diamond ledgers. Getters
// return a zeroed ledger when nothing has been saved yet.
type Repository interface {
	// GetCharacter retrieves the gold ledger of one character
	GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error)

	// SaveCharacter persists the gold ledger of one character
	SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error)

	// GetAccount retrieves the account diamond ledger
	GetAccount(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error)

	// SaveAccount persists the account diamond ledger
	SaveAccount(ctx context.Context, input SaveAccountInput) (*SaveAccountOutput, error)
}

// GetCharacterInput defines the input for getting a character gold ledger
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for getting a character gold ledger
type GetCharacterOutput struct {
	Currency *entities.CharacterCurrency
}

// SaveCharacterInput defines the input for saving a character gold ledger
type SaveCharacterInput struct {
	Currency *entities.CharacterCurrency
}

// SaveCharacterOutput defines the output for saving a character gold ledger
type SaveCharacterOutput struct{}

// GetAccountInput defines the input for getting the diamond ledger
type GetAccountInput struct{}

// GetAccountOutput defines the output for getting the diamond ledger
type GetAccountOutput struct {
	Currency *entities.AccountCurrency
}

// SaveAccountInput defines the input for saving the diamond ledger
type SaveAccountInput struct {
	Currency *entities.AccountCurrency
}

// SaveAccountOutput defines the output for saving the diamond ledger
type SaveAccountOutput struct{}
