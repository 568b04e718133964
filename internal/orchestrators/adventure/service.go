// Package adventure implements the battle engine: character lifecycle,
// encounters, combat resolution, leveling, loot and recovery.
package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/a602017206/WordRPGGame/internal/orchestrators/adventure Service,QuestTracker

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// State is a battle session state
type State string

// Session states. Victory and Defeat are transient: Victory accepts the next
// encounter directly, Defeat holds until the respawn timer fires.
const (
	StateIdle      State = "idle"
	StateSelecting State = "selecting"
	StateBattling  State = "battling"
	StateVictory   State = "victory"
	StateDefeat    State = "defeat"
)

// QuestTracker is the slice of the quest system the battle engine needs.
// Wired after construction to break the dependency loop with the quest
// orchestrator, whose rewards flow back through GrantExperience.
type QuestTracker interface {
	// RecordKill advances kill objectives after a victory
	RecordKill(ctx context.Context, characterID, templateID, enemyName string) error

	// ActiveKillTargets lists outstanding kill/boss target ids
	ActiveKillTargets(ctx context.Context, characterID string) ([]string, error)

	// UnlockMaps rescans map gates after a level-up
	UnlockMaps(ctx context.Context, characterID string) error
}

// Service defines the adventure orchestrator interface
type Service interface {
	// CreateCharacter rolls a new character with class base stats, sets up
	// its skill state and selects it
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// ListCharacters returns all characters on the account
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// SelectCharacter marks a character as active
	SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// GetCharacter returns one character
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// GrantExperience credits experience and runs the level-up loop,
	// persisting stat gains
	GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error)

	// StartSession loads a character into the battle engine, computing
	// effective stats from base stats plus gear bonuses, and starts MP
	// regeneration
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EndSession tears the session down and stops its timers
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// GetState returns a snapshot of the session
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// StartBattle generates one enemy and enters combat
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// SeekEnemies generates 3-5 candidates for the player to pick from
	SeekEnemies(ctx context.Context, input *SeekEnemiesInput) (*SeekEnemiesOutput, error)

	// ChooseEnemy enters combat against a seek candidate
	ChooseEnemy(ctx context.Context, input *ChooseEnemyInput) (*ChooseEnemyOutput, error)

	// CancelSeek abandons candidate selection
	CancelSeek(ctx context.Context, input *CancelSeekInput) (*CancelSeekOutput, error)

	// Attack performs a basic attack; the enemy counters shortly after
	// unless it dies
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// UseSkill fires the skill in a slot through the skill system
	UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error)

	// UseBasicSkill performs the unslotted skill attack: a flat 20 MP for
	// 1.5x basic attack damage
	UseBasicSkill(ctx context.Context, input *UseBasicSkillInput) (*UseBasicSkillOutput, error)

	// UseQuickSlot consumes a quick-bar item and applies its restore
	UseQuickSlot(ctx context.Context, input *UseQuickSlotInput) (*UseQuickSlotOutput, error)

	// Rest restores 30% HP and MP out of combat
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)

	// SetQuestTracker wires the quest system hooks
	SetQuestTracker(qt QuestTracker)
}

// CreateCharacterInput describes a character roll
type CreateCharacterInput struct {
	Name  string
	Class entities.ClassType
}

// CreateCharacterOutput holds the new character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput lists characters
type ListCharactersInput struct{}

// ListCharactersOutput holds all characters and the selected id
type ListCharactersOutput struct {
	Characters []*entities.Character
	SelectedID string
}

// SelectCharacterInput marks a character active
type SelectCharacterInput struct {
	CharacterID string
}

// SelectCharacterOutput reports selection
type SelectCharacterOutput struct{}

// DeleteCharacterInput removes a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput reports removal
type DeleteCharacterOutput struct{}

// GetCharacterInput fetches a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput holds the character
type GetCharacterOutput struct {
	Character *entities.Character
}

// GrantExperienceInput credits experience
type GrantExperienceInput struct {
	CharacterID string
	Amount      int
}

// GrantExperienceOutput reports resulting level-ups
type GrantExperienceOutput struct {
	LevelsGained int
	NewLevel     int
}

// StartSessionInput loads a character into the engine
type StartSessionInput struct {
	CharacterID string
}

// StartSessionOutput holds the initial snapshot
type StartSessionOutput struct {
	Snapshot *Snapshot
}

// EndSessionInput tears a session down
type EndSessionInput struct {
	CharacterID string
}

// EndSessionOutput reports teardown
type EndSessionOutput struct{}

// GetStateInput fetches a snapshot
type GetStateInput struct {
	CharacterID string
}

// GetStateOutput holds the snapshot
type GetStateOutput struct {
	Snapshot *Snapshot
}

// Snapshot is a point-in-time copy of a battle session
type Snapshot struct {
	CharacterID string
	State       State
	CurrentHP   int
	CurrentMP   int
	Stats       entities.Stats
	Enemy       *entities.Enemy
	Candidates  []entities.Enemy
	Logs        []entities.BattleLog
}

// StartBattleInput starts an encounter
type StartBattleInput struct {
	CharacterID string
}

// StartBattleOutput holds the generated enemy
type StartBattleOutput struct {
	Enemy *entities.Enemy
}

// SeekEnemiesInput generates candidates
type SeekEnemiesInput struct {
	CharacterID string
}

// SeekEnemiesOutput holds the candidates
type SeekEnemiesOutput struct {
	Candidates []entities.Enemy
}

// ChooseEnemyInput picks a candidate by index
type ChooseEnemyInput struct {
	CharacterID string
	Index       int
}

// ChooseEnemyOutput holds the chosen enemy
type ChooseEnemyOutput struct {
	Enemy *entities.Enemy
}

// CancelSeekInput abandons selection
type CancelSeekInput struct {
	CharacterID string
}

// CancelSeekOutput reports cancellation
type CancelSeekOutput struct{}

// AttackInput performs a basic attack
type AttackInput struct {
	CharacterID string
}

// AttackOutput reports the attack result
type AttackOutput struct {
	Damage  int
	Victory bool
}

// UseSkillInput fires a skill slot
type UseSkillInput struct {
	CharacterID string
	SlotIndex   int
}

// UseSkillOutput reports the skill result
type UseSkillOutput struct {
	Success bool
	Message string
	Damage  int
	Victory bool
}

// UseBasicSkillInput fires the generic skill attack
type UseBasicSkillInput struct {
	CharacterID string
}

// UseBasicSkillOutput reports the generic skill result
type UseBasicSkillOutput struct {
	Success bool
	Message string
	Damage  int
	Victory bool
}

// UseQuickSlotInput consumes a quick-bar item
type UseQuickSlotInput struct {
	CharacterID string
	SlotIndex   int
}

// UseQuickSlotOutput reports the consumable result
type UseQuickSlotOutput struct {
	Success bool
	Message string
}

// RestInput rests out of combat
type RestInput struct {
	CharacterID string
}

// RestOutput reports the recovery
type RestOutput struct {
	Success   bool
	Message   string
	HPRecover int
	MPRecover int
}
