package save

import (
	"context"
	"log/slog"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
	progressrepo "github.com/a602017206/WordRPGGame/internal/repositories/progress"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
)

// ExporterConfig holds the repositories a full profile spans
type ExporterConfig struct {
	CharacterRepo characterrepo.Repository
	InventoryRepo inventoryrepo.Repository
	CurrencyRepo  currencyrepo.Repository
	SkillsRepo    skillsrepo.Repository
	EquipmentRepo equipmentrepo.Repository
	ProgressRepo  progressrepo.Repository
	Clock         clock.Clock
}

// Validate validates the ExporterConfig
func (cfg *ExporterConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.CharacterRepo == nil {
		vb.RequiredField("character_repo")
	}
	if cfg.InventoryRepo == nil {
		vb.RequiredField("inventory_repo")
	}
	if cfg.CurrencyRepo == nil {
		vb.RequiredField("currency_repo")
	}
	if cfg.SkillsRepo == nil {
		vb.RequiredField("skills_repo")
	}
	if cfg.EquipmentRepo == nil {
		vb.RequiredField("equipment_repo")
	}
	if cfg.ProgressRepo == nil {
		vb.RequiredField("progress_repo")
	}
	return vb.Build()
}

// Exporter moves whole profiles between the store and save blobs
type Exporter struct {
	characters characterrepo.Repository
	inventory  inventoryrepo.Repository
	currency   currencyrepo.Repository
	skills     skillsrepo.Repository
	equipment  equipmentrepo.Repository
	progress   progressrepo.Repository
	clock      clock.Clock
}

// NewExporter creates an Exporter
func NewExporter(cfg *ExporterConfig) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Exporter{
		characters: cfg.CharacterRepo,
		inventory:  cfg.InventoryRepo,
		currency:   cfg.CurrencyRepo,
		skills:     cfg.SkillsRepo,
		equipment:  cfg.EquipmentRepo,
		progress:   cfg.ProgressRepo,
		clock:      c,
	}, nil
}

// Export gathers the full profile and encodes it into a save blob
func (e *Exporter) Export(ctx context.Context) (string, error) {
	snap, err := e.gather(ctx)
	if err != nil {
		return "", err
	}

	blob, err := Encode(snap, e.clock.Now())
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "profile exported",
		"characters", len(snap.Characters),
		"size", len(blob))
	return blob, nil
}

// Import decodes a save blob and writes the full profile back to the store,
// overwriting any state the blob carries
func (e *Exporter) Import(ctx context.Context, blob string) error {
	snap, err := Decode(blob)
	if err != nil {
		return err
	}

	if err := e.restore(ctx, snap); err != nil {
		return err
	}

	slog.InfoContext(ctx, "profile imported", "characters", len(snap.Characters))
	return nil
}

func (e *Exporter) gather(ctx context.Context) (*Snapshot, error) {
	listOut, err := e.characters.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	selOut, err := e.characters.GetSelected(ctx, characterrepo.GetSelectedInput{})
	if err != nil {
		return nil, err
	}
	accountInv, err := e.inventory.GetAccount(ctx, inventoryrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	accountCur, err := e.currency.GetAccount(ctx, currencyrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Characters:           listOut.Characters,
		SelectedID:           selOut.CharacterID,
		CharacterInventories: make(map[string]*entities.CharacterInventory),
		AccountInventory:     accountInv.Inventory,
		CharacterCurrencies:  make(map[string]*entities.CharacterCurrency),
		AccountCurrency:      accountCur.Currency,
		Skills:               make(map[string]*entities.CharacterSkills),
		Equipment:            make(map[string]*entities.CharacterEquipment),
		Quests:               make(map[string][]*entities.PlayerQuest),
		Maps:                 make(map[string][]*entities.MapProgress),
	}

	for _, char := range listOut.Characters {
		invOut, err := e.inventory.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: char.ID})
		if err != nil {
			return nil, err
		}
		snap.CharacterInventories[char.ID] = invOut.Inventory

		curOut, err := e.currency.GetCharacter(ctx, currencyrepo.GetCharacterInput{CharacterID: char.ID})
		if err != nil {
			return nil, err
		}
		snap.CharacterCurrencies[char.ID] = curOut.Currency

		skOut, err := e.skills.Get(ctx, skillsrepo.GetInput{CharacterID: char.ID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if err == nil {
			snap.Skills[char.ID] = skOut.Skills
		}

		eqOut, err := e.equipment.Get(ctx, equipmentrepo.GetInput{CharacterID: char.ID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if err == nil {
			snap.Equipment[char.ID] = eqOut.Equipment
		}

		qOut, err := e.progress.GetQuests(ctx, progressrepo.GetQuestsInput{CharacterID: char.ID})
		if err != nil {
			return nil, err
		}
		snap.Quests[char.ID] = qOut.Quests

		mOut, err := e.progress.GetMaps(ctx, progressrepo.GetMapsInput{CharacterID: char.ID})
		if err != nil {
			return nil, err
		}
		snap.Maps[char.ID] = mOut.Maps
	}

	return snap, nil
}

func (e *Exporter) restore(ctx context.Context, snap *Snapshot) error {
	for _, char := range snap.Characters {
		if _, err := e.characters.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
			return err
		}

		if inv := snap.CharacterInventories[char.ID]; inv != nil {
			if _, err := e.inventory.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
				return err
			}
		}
		if cur := snap.CharacterCurrencies[char.ID]; cur != nil {
			if _, err := e.currency.SaveCharacter(ctx, currencyrepo.SaveCharacterInput{Currency: cur}); err != nil {
				return err
			}
		}
		if sk := snap.Skills[char.ID]; sk != nil {
			if _, err := e.skills.Save(ctx, skillsrepo.SaveInput{Skills: sk}); err != nil {
				return err
			}
		}
		if eq := snap.Equipment[char.ID]; eq != nil {
			if _, err := e.equipment.Save(ctx, equipmentrepo.SaveInput{Equipment: eq}); err != nil {
				return err
			}
		}
		if quests := snap.Quests[char.ID]; quests != nil {
			if _, err := e.progress.SaveQuests(ctx, progressrepo.SaveQuestsInput{CharacterID: char.ID, Quests: quests}); err != nil {
				return err
			}
		}
		if maps := snap.Maps[char.ID]; maps != nil {
			if _, err := e.progress.SaveMaps(ctx, progressrepo.SaveMapsInput{CharacterID: char.ID, Maps: maps}); err != nil {
				return err
			}
		}
	}

	if snap.AccountInventory != nil {
		if _, err := e.inventory.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: snap.AccountInventory}); err != nil {
			return err
		}
	}
	if snap.AccountCurrency != nil {
		if _, err := e.currency.SaveAccount(ctx, currencyrepo.SaveAccountInput{Currency: snap.AccountCurrency}); err != nil {
			return err
		}
	}
	if snap.SelectedID != "" {
		if _, err := e.characters.SetSelected(ctx, characterrepo.SetSelectedInput{CharacterID: snap.SelectedID}); err != nil {
			return err
		}
	}

	return nil
}
