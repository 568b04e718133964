package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/a602017206/WordRPGGame/internal/config"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/adventure"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/equipment"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/quest"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/skills"
	"github.com/a602017206/WordRPGGame/internal/pkg/rng"
	"github.com/a602017206/WordRPGGame/internal/pkg/scheduler"
	"github.com/a602017206/WordRPGGame/internal/redis"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
	mailboxrepo "github.com/a602017206/WordRPGGame/internal/repositories/mailbox"
	progressrepo "github.com/a602017206/WordRPGGame/internal/repositories/progress"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
	"github.com/a602017206/WordRPGGame/internal/save"
)

// engine bundles the fully wired orchestrator graph
type engine struct {
	adventure adventure.Service
	inventory inventory.Service
	equipment equipment.Service
	skills    skills.Service
	quest     quest.Service
	exporter  *save.Exporter
}

// buildEngine connects to Redis and wires every orchestrator together. The
// adventure and quest orchestrators reference each other at runtime, so the
// quest hooks are attached after both exist.
func buildEngine(cfg config.Config) (*engine, error) {
	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	currencyRepo, err := currencyrepo.NewRedis(&currencyrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	skillsRepo, err := skillsrepo.NewRedis(&skillsrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	equipmentRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	progressRepo, err := progressrepo.NewRedis(&progressrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	mailboxRepo, err := mailboxrepo.NewRedis(&mailboxrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	inventorySvc, err := inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: inventoryRepo,
		CurrencyRepo:  currencyRepo,
	})
	if err != nil {
		return nil, err
	}

	equipmentSvc, err := equipment.NewOrchestrator(&equipment.Config{
		EquipmentRepo: equipmentRepo,
		CharacterRepo: characterRepo,
		ItemStore:     &itemStoreAdapter{inventory: inventorySvc},
	})
	if err != nil {
		return nil, err
	}

	skillsSvc, err := skills.NewOrchestrator(&skills.Config{
		SkillsRepo:       skillsRepo,
		MailboxRepo:      mailboxRepo,
		GoldSpender:      &goldSpenderAdapter{inventory: inventorySvc},
		CatalystConsumer: &catalystConsumerAdapter{inventory: inventorySvc},
	})
	if err != nil {
		return nil, err
	}

	var roller rng.Roller
	if cfg.Demo.Seed != 0 {
		roller = rng.NewSeeded(cfg.Demo.Seed)
	}

	adventureSvc, err := adventure.NewOrchestrator(&adventure.Config{
		CharacterRepo: characterRepo,
		Inventory:     inventorySvc,
		Equipment:     equipmentSvc,
		Skills:        skillsSvc,
		Roller:        roller,
		Scheduler:     scheduler.New(),
	})
	if err != nil {
		return nil, err
	}

	questSvc, err := quest.NewOrchestrator(&quest.Config{
		ProgressRepo:  progressRepo,
		CharacterRepo: characterRepo,
		Experience:    &experienceGranterAdapter{adventure: adventureSvc},
		Items:         &itemGranterAdapter{inventory: inventorySvc},
		Gold:          &goldLedgerAdapter{inventory: inventorySvc},
		Diamonds:      &diamondLedgerAdapter{inventory: inventorySvc},
	})
	if err != nil {
		return nil, err
	}

	adventureSvc.SetQuestTracker(&questTrackerAdapter{quest: questSvc})
	inventorySvc.SetQuestProgress(&questProgressAdapter{quest: questSvc})

	exporter, err := save.NewExporter(&save.ExporterConfig{
		CharacterRepo: characterRepo,
		InventoryRepo: inventoryRepo,
		CurrencyRepo:  currencyRepo,
		SkillsRepo:    skillsRepo,
		EquipmentRepo: equipmentRepo,
		ProgressRepo:  progressRepo,
	})
	if err != nil {
		return nil, err
	}

	return &engine{
		adventure: adventureSvc,
		inventory: inventorySvc,
		equipment: equipmentSvc,
		skills:    skillsSvc,
		quest:     questSvc,
		exporter:  exporter,
	}, nil
}

// itemStoreAdapter lets the equipment orchestrator move gear in and out of
// the character bag.
type itemStoreAdapter struct {
	inventory inventory.Service
}

func (a *itemStoreAdapter) TakeItem(ctx context.Context, characterID, itemID string) (bool, error) {
	out, err := a.inventory.RemoveItem(ctx, &inventory.RemoveItemInput{
		CharacterID: characterID,
		ItemID:      itemID,
		Quantity:    1,
	})
	if err != nil {
		return false, err
	}
	return out.Removed, nil
}

func (a *itemStoreAdapter) ReturnItem(ctx context.Context, characterID string, item entities.Item) (bool, error) {
	out, err := a.inventory.AddItem(ctx, &inventory.AddItemInput{
		CharacterID: characterID,
		Item:        item,
		Quantity:    1,
	})
	if err != nil {
		return false, err
	}
	return out.Added, nil
}

// goldSpenderAdapter funds skill upgrades from the character gold ledger
type goldSpenderAdapter struct {
	inventory inventory.Service
}

func (a *goldSpenderAdapter) SpendGold(ctx context.Context, characterID string, amount int) (bool, error) {
	out, err := a.inventory.SpendGold(ctx, &inventory.SpendGoldInput{
		CharacterID: characterID,
		Amount:      amount,
	})
	if err != nil {
		return false, err
	}
	return out.Success, nil
}

// catalystConsumerAdapter burns transfer catalysts from the account vault
type catalystConsumerAdapter struct {
	inventory inventory.Service
}

func (a *catalystConsumerAdapter) ConsumeCatalyst(ctx context.Context, characterID, nameSubstring string, quantity int) (bool, error) {
	out, err := a.inventory.ConsumeCatalyst(ctx, &inventory.ConsumeCatalystInput{
		CharacterID:   characterID,
		NameSubstring: nameSubstring,
		Quantity:      quantity,
		FromAccount:   true,
	})
	if err != nil {
		return false, err
	}
	return out.Consumed, nil
}

// experienceGranterAdapter routes quest experience rewards through the
// adventure level-up loop.
type experienceGranterAdapter struct {
	adventure adventure.Service
}

func (a *experienceGranterAdapter) GrantExperience(ctx context.Context, characterID string, amount int) error {
	_, err := a.adventure.GrantExperience(ctx, &adventure.GrantExperienceInput{
		CharacterID: characterID,
		Amount:      amount,
	})
	return err
}

// itemGranterAdapter places quest reward items into the right container. A
// full bag drops the reward with a warning rather than failing the quest.
type itemGranterAdapter struct {
	inventory inventory.Service
}

func (a *itemGranterAdapter) GrantItem(ctx context.Context, characterID string, item entities.Item, quantity int) error {
	out, err := a.inventory.AddItem(ctx, &inventory.AddItemInput{
		CharacterID: characterID,
		Item:        item,
		Quantity:    quantity,
		ToAccount:   item.Binding == entities.BindAccount,
	})
	if err != nil {
		return err
	}
	if !out.Added {
		slog.WarnContext(ctx, "quest reward item dropped",
			"character_id", characterID,
			"item_id", item.ID,
			"reason", out.Message)
	}
	return nil
}

type goldLedgerAdapter struct {
	inventory inventory.Service
}

func (a *goldLedgerAdapter) AddGold(ctx context.Context, characterID string, amount int) error {
	_, err := a.inventory.AddGold(ctx, &inventory.AddGoldInput{
		CharacterID: characterID,
		Amount:      amount,
	})
	return err
}

type diamondLedgerAdapter struct {
	inventory inventory.Service
}

func (a *diamondLedgerAdapter) AddDiamond(ctx context.Context, amount int) error {
	_, err := a.inventory.AddDiamond(ctx, &inventory.AddDiamondInput{Amount: amount})
	return err
}

// questTrackerAdapter exposes the quest system hooks the battle engine needs
type questTrackerAdapter struct {
	quest quest.Service
}

func (a *questTrackerAdapter) RecordKill(ctx context.Context, characterID, templateID, enemyName string) error {
	_, err := a.quest.RecordKill(ctx, &quest.RecordKillInput{
		CharacterID: characterID,
		TemplateID:  templateID,
		EnemyName:   enemyName,
	})
	return err
}

func (a *questTrackerAdapter) ActiveKillTargets(ctx context.Context, characterID string) ([]string, error) {
	out, err := a.quest.ActiveKillTargets(ctx, &quest.ActiveKillTargetsInput{CharacterID: characterID})
	if err != nil {
		return nil, err
	}
	return out.TargetIDs, nil
}

func (a *questTrackerAdapter) UnlockMaps(ctx context.Context, characterID string) error {
	_, err := a.quest.UnlockMaps(ctx, &quest.UnlockMapsInput{CharacterID: characterID})
	return err
}

// questProgressAdapter feeds item acquisitions to collect objectives. Quest
// bookkeeping must never fail an inventory write, so errors only log.
type questProgressAdapter struct {
	quest quest.Service
}

func (a *questProgressAdapter) RecordCollect(ctx context.Context, characterID string, item entities.Item, quantity int) {
	if _, err := a.quest.RecordCollect(ctx, &quest.RecordCollectInput{
		CharacterID: characterID,
		Item:        item,
		Quantity:    quantity,
	}); err != nil {
		slog.WarnContext(ctx, "failed to record collect progress",
			"character_id", characterID,
			"item_id", item.ID,
			"error", err)
	}
}
