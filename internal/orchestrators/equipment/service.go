// Package equipment implements gear slots and stat bonuses.
package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/a602017206/WordRPGGame/internal/orchestrators/equipment Service,ItemStore

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// ItemStore is the slice of the inventory the gear system needs: taking an
// item out when it is equipped and putting one back when it is displaced.
type ItemStore interface {
	// TakeItem removes one unit of the item from the character bag.
	// Returns false when the character does not hold the item.
	TakeItem(ctx context.Context, characterID, itemID string) (bool, error)

	// ReturnItem puts one unit of the item back into the character bag.
	// Returns false when the bag is full.
	ReturnItem(ctx context.Context, characterID string, item entities.Item) (bool, error)
}

// Service defines the equipment orchestrator interface
type Service interface {
	// GetEquipment returns the character's gear state
	GetEquipment(ctx context.Context, input *GetEquipmentInput) (*GetEquipmentOutput, error)

	// GetBonus returns the summed stat bonus across all equipped gear
	GetBonus(ctx context.Context, input *GetBonusInput) (*GetBonusOutput, error)

	// Equip puts a piece of gear from the bag into its slot. A displaced
	// piece goes back to the bag; equipping fails cleanly when the bag
	// cannot take it.
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip removes the gear in a slot and returns it to the bag
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
}

// GetEquipmentInput holds the character whose gear to fetch
type GetEquipmentInput struct {
	CharacterID string
}

// GetEquipmentOutput holds the gear state
type GetEquipmentOutput struct {
	Equipment *entities.CharacterEquipment
}

// GetBonusInput holds the character whose bonus to compute
type GetBonusInput struct {
	CharacterID string
}

// GetBonusOutput holds the summed bonus
type GetBonusOutput struct {
	Bonus entities.Stats
}

// EquipInput describes an equip request
type EquipInput struct {
	CharacterID string
	EquipmentID string
}

// EquipOutput reports the equip result
type EquipOutput struct {
	Success  bool
	Message  string
	Replaced *entities.Equipment
}

// UnequipInput describes an unequip request
type UnequipInput struct {
	CharacterID string
	Slot        entities.EquipmentSlot
}

// UnequipOutput reports the unequip result
type UnequipOutput struct {
	Success bool
	Message string
}
