package equipment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
)

// Config holds the orchestrator dependencies
type Config struct {
	EquipmentRepo equipmentrepo.Repository
	CharacterRepo characterrepo.Repository
	ItemStore     ItemStore
	Clock         clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.EquipmentRepo == nil {
		vb.RequiredField("equipment_repo")
	}
	if cfg.CharacterRepo == nil {
		vb.RequiredField("character_repo")
	}
	if cfg.ItemStore == nil {
		vb.RequiredField("item_store")
	}
	return vb.Build()
}

type orchestrator struct {
	equipmentRepo equipmentrepo.Repository
	characterRepo characterrepo.Repository
	itemStore     ItemStore
	clock         clock.Clock
}

// NewOrchestrator creates an equipment orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		equipmentRepo: cfg.EquipmentRepo,
		characterRepo: cfg.CharacterRepo,
		itemStore:     cfg.ItemStore,
		clock:         c,
	}, nil
}

func (o *orchestrator) getOrInit(ctx context.Context, characterID string) (*entities.CharacterEquipment, error) {
	out, err := o.equipmentRepo.Get(ctx, equipmentrepo.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return entities.NewCharacterEquipment(characterID), nil
		}
		return nil, err
	}
	return out.Equipment, nil
}

func (o *orchestrator) GetEquipment(ctx context.Context, input *GetEquipmentInput) (*GetEquipmentOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	eq, err := o.getOrInit(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetEquipmentOutput{Equipment: eq}, nil
}

func (o *orchestrator) GetBonus(ctx context.Context, input *GetBonusInput) (*GetBonusOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	eq, err := o.getOrInit(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetBonusOutput{Bonus: eq.Bonus()}, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.EquipmentID == "" {
		return nil, errors.InvalidArgument("equipment ID cannot be empty")
	}

	tmpl := data.EquipmentByID(input.EquipmentID)
	if tmpl == nil {
		return nil, errors.NotFoundf("equipment %s not found", input.EquipmentID)
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	if charOut.Character.Level < tmpl.LevelRequirement {
		return &EquipOutput{
			Success: false,
			Message: fmt.Sprintf("level %d required to equip %s", tmpl.LevelRequirement, tmpl.Name),
		}, nil
	}

	taken, err := o.itemStore.TakeItem(ctx, input.CharacterID, input.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !taken {
		return &EquipOutput{Success: false, Message: fmt.Sprintf("%s is not in the bag", tmpl.Name)}, nil
	}

	eq, err := o.getOrInit(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var replaced *entities.Equipment
	if prev := eq.Slots[tmpl.Slot]; prev != nil {
		// The displaced piece goes back to the bag. If the bag is full the
		// whole equip is rolled back.
		returned, err := o.itemStore.ReturnItem(ctx, input.CharacterID, prev.Equipment.Item)
		if err != nil {
			return nil, err
		}
		if !returned {
			if _, err := o.itemStore.ReturnItem(ctx, input.CharacterID, tmpl.Item); err != nil {
				return nil, err
			}
			return &EquipOutput{Success: false, Message: "bag is full, cannot swap gear"}, nil
		}
		prevEq := prev.Equipment
		replaced = &prevEq
	}

	eq.Slots[tmpl.Slot] = &entities.EquippedItem{
		Equipment:  *tmpl,
		EquippedAt: o.clock.Now().UnixMilli(),
	}

	if _, err := o.equipmentRepo.Save(ctx, equipmentrepo.SaveInput{Equipment: eq}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "equipped item",
		"character_id", input.CharacterID,
		"equipment_id", input.EquipmentID,
		"slot", string(tmpl.Slot))

	return &EquipOutput{
		Success:  true,
		Message:  fmt.Sprintf("equipped %s", tmpl.Name),
		Replaced: replaced,
	}, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	eq, err := o.getOrInit(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slot := eq.Slots[input.Slot]
	if slot == nil {
		return &UnequipOutput{Success: false, Message: fmt.Sprintf("nothing equipped in %s slot", input.Slot)}, nil
	}

	returned, err := o.itemStore.ReturnItem(ctx, input.CharacterID, slot.Equipment.Item)
	if err != nil {
		return nil, err
	}
	if !returned {
		return &UnequipOutput{Success: false, Message: "bag is full"}, nil
	}

	name := slot.Equipment.Name
	delete(eq.Slots, input.Slot)

	if _, err := o.equipmentRepo.Save(ctx, equipmentrepo.SaveInput{Equipment: eq}); err != nil {
		return nil, err
	}

	return &UnequipOutput{Success: true, Message: fmt.Sprintf("unequipped %s", name)}, nil
}
