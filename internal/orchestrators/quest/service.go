// Package quest implements quest acceptance, objective tracking, rewards and
// map progression.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/a602017206/WordRPGGame/internal/orchestrators/quest Service,ExperienceGranter,ItemGranter,GoldLedger,DiamondLedger

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// ExperienceGranter credits experience to a character, running any level-ups
// that result.
type ExperienceGranter interface {
	GrantExperience(ctx context.Context, characterID string, amount int) error
}

// ItemGranter places reward items into a character's bag
type ItemGranter interface {
	GrantItem(ctx context.Context, characterID string, item entities.Item, quantity int) error
}

// GoldLedger credits reward gold
type GoldLedger interface {
	AddGold(ctx context.Context, characterID string, amount int) error
}

// DiamondLedger credits reward diamonds to the account
type DiamondLedger interface {
	AddDiamond(ctx context.Context, amount int) error
}

// Service defines the quest orchestrator interface
type Service interface {
	// ListQuests returns the character's accepted quests and the templates
	// currently available to accept
	ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)

	// AcceptQuest starts a quest. Accepting an already-accepted quest is a
	// no-op reported as success.
	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)

	// RecordKill advances kill and boss objectives after a victory
	RecordKill(ctx context.Context, input *RecordKillInput) (*RecordKillOutput, error)

	// RecordCollect advances collect objectives when items are acquired
	RecordCollect(ctx context.Context, input *RecordCollectInput) (*RecordCollectOutput, error)

	// ActiveKillTargets lists the outstanding kill/boss target ids of the
	// character's in-progress quests
	ActiveKillTargets(ctx context.Context, input *ActiveKillTargetsInput) (*ActiveKillTargetsOutput, error)

	// GetMaps returns every map with the character's unlock state
	GetMaps(ctx context.Context, input *GetMapsInput) (*GetMapsOutput, error)

	// UnlockMaps unlocks any maps whose level and quest gates the
	// character now passes
	UnlockMaps(ctx context.Context, input *UnlockMapsInput) (*UnlockMapsOutput, error)

	// CompleteMap pays out a map's clear rewards and bumps its completion
	// count. The map must be unlocked.
	CompleteMap(ctx context.Context, input *CompleteMapInput) (*CompleteMapOutput, error)
}

// ListQuestsInput holds the character whose quests to fetch
type ListQuestsInput struct {
	CharacterID string
}

// ListQuestsOutput holds accepted quests and acceptable templates
type ListQuestsOutput struct {
	Active    []*entities.PlayerQuest
	Available []entities.Quest
}

// AcceptQuestInput describes an accept request
type AcceptQuestInput struct {
	CharacterID string
	QuestID     string
}

// AcceptQuestOutput reports the accept result
type AcceptQuestOutput struct {
	Success bool
	Message string
}

// RecordKillInput describes a kill event
type RecordKillInput struct {
	CharacterID string
	TemplateID  string
	EnemyName   string
}

// RecordKillOutput lists quests the kill completed
type RecordKillOutput struct {
	CompletedQuests []string
}

// RecordCollectInput describes an item acquisition
type RecordCollectInput struct {
	CharacterID string
	Item        entities.Item
	Quantity    int
}

// RecordCollectOutput lists quests the acquisition completed
type RecordCollectOutput struct {
	CompletedQuests []string
}

// ActiveKillTargetsInput holds the character to inspect
type ActiveKillTargetsInput struct {
	CharacterID string
}

// ActiveKillTargetsOutput lists outstanding kill/boss target ids
type ActiveKillTargetsOutput struct {
	TargetIDs []string
}

// MapStatus pairs a map template with one character's progress
type MapStatus struct {
	Map             entities.GameMap
	Unlocked        bool
	Completed       bool
	CompletionCount int
}

// GetMapsInput holds the character whose maps to fetch
type GetMapsInput struct {
	CharacterID string
}

// GetMapsOutput lists all maps with unlock state
type GetMapsOutput struct {
	Maps []MapStatus
}

// UnlockMapsInput holds the character to scan
type UnlockMapsInput struct {
	CharacterID string
}

// UnlockMapsOutput lists newly unlocked map ids
type UnlockMapsOutput struct {
	Unlocked []string
}

// CompleteMapInput describes a map clear
type CompleteMapInput struct {
	CharacterID string
	MapID       string
}

// CompleteMapOutput reports the clear result
type CompleteMapOutput struct {
	Success bool
	Message string
}
