// Package skills implements skill learning, slots, combat use, upgrades and
// cross-character transfer through the mailbox.
package skills

//go:generate mockgen -destination=mock/mock_service.go -package=skillsmock github.com/a602017206/WordRPGGame/internal/orchestrators/skills Service,GoldSpender,CatalystConsumer

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// GoldSpender debits gold for skill upgrades. Success=false means the
// balance was short and nothing was deducted.
type GoldSpender interface {
	SpendGold(ctx context.Context, characterID string, amount int) (bool, error)
}

// CatalystConsumer removes catalyst materials, matched by display-name
// substring, from the account inventory.
type CatalystConsumer interface {
	ConsumeCatalyst(ctx context.Context, characterID, nameSubstring string, quantity int) (bool, error)
}

// Service defines the skills orchestrator interface
type Service interface {
	// Initialize sets up the skill state for a fresh character: the class
	// default skill learned and bound to slot 1. A no-op when state exists.
	Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error)

	// GetSkills returns the character's skill state
	GetSkills(ctx context.Context, input *GetSkillsInput) (*GetSkillsOutput, error)

	// Learn adds a skill to the learned list at level 1. Rejected when the
	// class does not match or the skill is already known.
	Learn(ctx context.Context, input *LearnInput) (*LearnOutput, error)

	// EquipSkill binds a learned skill to one of the three slots. A skill
	// can occupy at most one slot.
	EquipSkill(ctx context.Context, input *EquipSkillInput) (*EquipSkillOutput, error)

	// UnequipSkill empties a slot
	UnequipSkill(ctx context.Context, input *UnequipSkillInput) (*UnequipSkillOutput, error)

	// Use fires the skill in a slot: checks cooldown and MP, computes
	// damage from the caster's stats and returns the skill's effects for
	// the battle engine to apply.
	Use(ctx context.Context, input *UseInput) (*UseOutput, error)

	// Upgrade raises a learned skill one level for gold. The new level is
	// visible through every slot referencing the skill.
	Upgrade(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error)

	// Transfer moves a learned skill to another character's mailbox,
	// consuming a transfer catalyst from the account inventory
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// ClaimMail drains the character's mailbox, learning every delivered
	// skill; duplicates of already-known skills stay queued
	ClaimMail(ctx context.Context, input *ClaimMailInput) (*ClaimMailOutput, error)
}

// InitializeInput holds the character to set up
type InitializeInput struct {
	CharacterID string
	Class       entities.ClassType
}

// InitializeOutput reports initialization
type InitializeOutput struct {
	DefaultSkill string
}

// GetSkillsInput holds the character whose skills to fetch
type GetSkillsInput struct {
	CharacterID string
}

// GetSkillsOutput holds the skill state
type GetSkillsOutput struct {
	Skills *entities.CharacterSkills
}

// LearnInput describes a learn request
type LearnInput struct {
	CharacterID string
	SkillID     string
	Class       entities.ClassType
}

// LearnOutput reports the learn result
type LearnOutput struct {
	Success bool
	Message string
}

// EquipSkillInput binds a skill to a slot
type EquipSkillInput struct {
	CharacterID string
	SkillID     string
	SlotIndex   int
}

// EquipSkillOutput reports the binding result
type EquipSkillOutput struct {
	Success bool
	Message string
}

// UnequipSkillInput empties a slot
type UnequipSkillInput struct {
	CharacterID string
	SlotIndex   int
}

// UnequipSkillOutput reports the unequip result
type UnequipSkillOutput struct {
	Success bool
	Message string
}

// UseInput describes a skill activation
type UseInput struct {
	CharacterID string
	SlotIndex   int
	Attack      int
	Magic       int
	CurrentMP   int
}

// UseOutput reports the activation result
type UseOutput struct {
	Success   bool
	Message   string
	SkillName string
	Damage    int
	MPCost    int
	Cooldown  float64
	Effects   []entities.SkillEffect
}

// UpgradeInput describes an upgrade request
type UpgradeInput struct {
	CharacterID string
	SkillID     string
}

// UpgradeOutput reports the upgrade result
type UpgradeOutput struct {
	Success  bool
	Message  string
	NewLevel int
	GoldCost int
}

// TransferInput describes a cross-character skill transfer
type TransferInput struct {
	FromCharacterID string
	ToCharacterID   string
	SkillID         string
}

// TransferOutput reports the transfer result
type TransferOutput struct {
	Success bool
	Message string
}

// ClaimMailInput holds the character claiming deliveries
type ClaimMailInput struct {
	CharacterID string
}

// ClaimMailOutput lists the skills learned from the mailbox
type ClaimMailOutput struct {
	Claimed []string
	Skipped []string
}
