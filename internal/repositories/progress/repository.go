// Package progress provides the interface for quest and map progress
// persistence
package progress

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/a602017206/WordRPGGame/internal/repositories/progress Repository

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Repository defines the interface for per-character quest and map progress.
// Getters return empty state when nothing has been saved yet.
type Repository interface {
	// GetQuests retrieves the accepted quests of one character
	GetQuests(ctx context.Context, input GetQuestsInput) (*GetQuestsOutput, error)

	// SaveQuests persists the accepted quests of one character
	SaveQuests(ctx context.Context, input SaveQuestsInput) (*SaveQuestsOutput, error)

	// GetMaps retrieves the map progress of one character
	GetMaps(ctx context.Context, input GetMapsInput) (*GetMapsOutput, error)

	// SaveMaps persists the map progress of one character
	SaveMaps(ctx context.Context, input SaveMapsInput) (*SaveMapsOutput, error)
}

// GetQuestsInput defines the input for getting quest progress
type GetQuestsInput struct {
	CharacterID string
}

// GetQuestsOutput defines the output for getting quest progress
type GetQuestsOutput struct {
	Quests []*entities.PlayerQuest
}

// SaveQuestsInput defines the input for saving quest progress
type SaveQuestsInput struct {
	CharacterID string
	Quests      []*entities.PlayerQuest
}

// SaveQuestsOutput defines the output for saving quest progress
type SaveQuestsOutput struct{}

// GetMapsInput defines the input for getting map progress
type GetMapsInput struct {
	CharacterID string
}

// GetMapsOutput defines the output for getting map progress
type GetMapsOutput struct {
	Maps []*entities.MapProgress
}

// SaveMapsInput defines the input for saving map progress
type SaveMapsInput struct {
	CharacterID string
	Maps        []*entities.MapProgress
}

// SaveMapsOutput defines the output for saving map progress
type SaveMapsOutput struct{}
