package save_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
	progressrepo "github.com/a602017206/WordRPGGame/internal/repositories/progress"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
	"github.com/a602017206/WordRPGGame/internal/save"
)

// store is one full repository stack over its own Redis instance
type store struct {
	mini      *miniredis.Miniredis
	chars     characterrepo.Repository
	inventory inventoryrepo.Repository
	currency  currencyrepo.Repository
	skills    skillsrepo.Repository
	equipment equipmentrepo.Repository
	progress  progressrepo.Repository
	exporter  *save.Exporter
}

func newStore(s *suite.Suite) *store {
	mini, err := miniredis.Run()
	s.Require().NoError(err)

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})

	st := &store{mini: mini}
	st.chars, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	st.inventory, err = inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	st.currency, err = currencyrepo.NewRedis(&currencyrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	st.skills, err = skillsrepo.NewRedis(&skillsrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	st.equipment, err = equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	st.progress, err = progressrepo.NewRedis(&progressrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	st.exporter, err = save.NewExporter(&save.ExporterConfig{
		CharacterRepo: st.chars,
		InventoryRepo: st.inventory,
		CurrencyRepo:  st.currency,
		SkillsRepo:    st.skills,
		EquipmentRepo: st.equipment,
		ProgressRepo:  st.progress,
		Clock:         clock.NewManual(time.UnixMilli(1700000000000)),
	})
	s.Require().NoError(err)

	return st
}

type ExporterTestSuite struct {
	suite.Suite
	source *store
	target *store
	ctx    context.Context
}

func (s *ExporterTestSuite) SetupTest() {
	s.source = newStore(&s.Suite)
	s.target = newStore(&s.Suite)
	s.ctx = context.Background()
}

func (s *ExporterTestSuite) TearDownTest() {
	s.source.mini.Close()
	s.target.mini.Close()
}

// seedProfile fills the source store with one character's full state
func (s *ExporterTestSuite) seedProfile() {
	_, err := s.source.chars.Create(s.ctx, characterrepo.CreateInput{Character: &entities.Character{
		ID:         "char_1",
		Name:       "Veteran",
		Class:      entities.ClassWarrior,
		ClassName:  "Warrior",
		Level:      3,
		Experience: 40,
		Stats:      entities.Stats{HP: 140, MP: 46, Attack: 19, Defense: 16, Magic: 9, Speed: 10},
		CreatedAt:  1700000000000,
	}})
	s.Require().NoError(err)
	_, err = s.source.chars.SetSelected(s.ctx, characterrepo.SetSelectedInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	potion := data.ItemByID(data.ItemHealthPotion)
	s.Require().NotNil(potion)
	inv := &entities.CharacterInventory{
		CharacterID: "char_1",
		Entries:     []entities.InventoryEntry{{Item: *potion, Quantity: 3, AcquiredAt: 1700000000000}},
		Capacity:    50,
	}
	inv.QuickSlots[0] = &entities.QuickSlot{ItemID: potion.ID}
	_, err = s.source.inventory.SaveCharacter(s.ctx, inventoryrepo.SaveCharacterInput{Inventory: inv})
	s.Require().NoError(err)

	stone := data.ItemByID(data.ItemMagicStone)
	s.Require().NotNil(stone)
	_, err = s.source.inventory.SaveAccount(s.ctx, inventoryrepo.SaveAccountInput{Inventory: &entities.AccountInventory{
		Entries:  []entities.InventoryEntry{{Item: *stone, Quantity: 2, AcquiredAt: 1700000000000}},
		Capacity: 100,
	}})
	s.Require().NoError(err)

	_, err = s.source.currency.SaveCharacter(s.ctx, currencyrepo.SaveCharacterInput{Currency: &entities.CharacterCurrency{
		CharacterID: "char_1",
		Gold:        420,
	}})
	s.Require().NoError(err)
	_, err = s.source.currency.SaveAccount(s.ctx, currencyrepo.SaveAccountInput{Currency: &entities.AccountCurrency{
		Diamond: 7,
	}})
	s.Require().NoError(err)

	slash := *data.SkillByID("skill_warrior_slash")
	slash.Level = 2
	skillState := &entities.CharacterSkills{
		CharacterID: "char_1",
		Learned:     []entities.Skill{slash},
	}
	skillState.Slots[0] = &entities.SkillSlot{SkillID: slash.ID, EquippedAt: 1700000000000}
	_, err = s.source.skills.Save(s.ctx, skillsrepo.SaveInput{Skills: skillState})
	s.Require().NoError(err)

	sword := data.EquipmentByID("weapon_iron_sword")
	s.Require().NotNil(sword)
	gear := entities.NewCharacterEquipment("char_1")
	gear.Slots[entities.SlotWeapon] = &entities.EquippedItem{Equipment: *sword, EquippedAt: 1700000000000}
	_, err = s.source.equipment.Save(s.ctx, equipmentrepo.SaveInput{Equipment: gear})
	s.Require().NoError(err)

	_, err = s.source.progress.SaveQuests(s.ctx, progressrepo.SaveQuestsInput{
		CharacterID: "char_1",
		Quests: []*entities.PlayerQuest{{
			QuestID:    "quest_kill_goblins",
			Status:     entities.QuestInProgress,
			Progress:   map[string]int{"enemy_goblin": 4},
			AcceptedAt: 1700000000000,
		}},
	})
	s.Require().NoError(err)
	_, err = s.source.progress.SaveMaps(s.ctx, progressrepo.SaveMapsInput{
		CharacterID: "char_1",
		Maps:        []*entities.MapProgress{{MapID: "map_forest_1", Unlocked: true}},
	})
	s.Require().NoError(err)
}

func (s *ExporterTestSuite) TestExportImportRoundTrip() {
	s.seedProfile()

	blob, err := s.source.exporter.Export(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(save.Validate(blob))

	s.Require().NoError(s.target.exporter.Import(s.ctx, blob))

	charOut, err := s.target.chars.Get(s.ctx, characterrepo.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Veteran", charOut.Character.Name)
	s.Equal(3, charOut.Character.Level)
	s.Equal(40, charOut.Character.Experience)

	selOut, err := s.target.chars.GetSelected(s.ctx, characterrepo.GetSelectedInput{})
	s.Require().NoError(err)
	s.Equal("char_1", selOut.CharacterID)

	invOut, err := s.target.inventory.GetCharacter(s.ctx, inventoryrepo.GetCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	entry := invOut.Inventory.Find(data.ItemHealthPotion)
	s.Require().NotNil(entry)
	s.Equal(3, entry.Quantity)
	s.Require().NotNil(invOut.Inventory.QuickSlots[0])
	s.Equal(data.ItemHealthPotion, invOut.Inventory.QuickSlots[0].ItemID)

	accInvOut, err := s.target.inventory.GetAccount(s.ctx, inventoryrepo.GetAccountInput{})
	s.Require().NoError(err)
	s.NotNil(accInvOut.Inventory.Find(data.ItemMagicStone))

	curOut, err := s.target.currency.GetCharacter(s.ctx, currencyrepo.GetCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(420, curOut.Currency.Gold)
	accCurOut, err := s.target.currency.GetAccount(s.ctx, currencyrepo.GetAccountInput{})
	s.Require().NoError(err)
	s.Equal(7, accCurOut.Currency.Diamond)

	skOut, err := s.target.skills.Get(s.ctx, skillsrepo.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(skOut.Skills.Learned, 1)
	s.Equal(2, skOut.Skills.Learned[0].Level)
	s.Require().NotNil(skOut.Skills.Slots[0])

	eqOut, err := s.target.equipment.Get(s.ctx, equipmentrepo.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().NotNil(eqOut.Equipment.Slots[entities.SlotWeapon])
	s.Equal("weapon_iron_sword", eqOut.Equipment.Slots[entities.SlotWeapon].Equipment.ID)

	qOut, err := s.target.progress.GetQuests(s.ctx, progressrepo.GetQuestsInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(qOut.Quests, 1)
	s.Equal(4, qOut.Quests[0].Progress["enemy_goblin"])

	mOut, err := s.target.progress.GetMaps(s.ctx, progressrepo.GetMapsInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(mOut.Maps, 1)
	s.True(mOut.Maps[0].Unlocked)
}

func (s *ExporterTestSuite) TestExportSkipsMissingSkillState() {
	_, err := s.source.chars.Create(s.ctx, characterrepo.CreateInput{Character: &entities.Character{
		ID:    "char_2",
		Name:  "Fresh",
		Class: entities.ClassMage,
		Level: 1,
		Stats: entities.Stats{HP: 80, MP: 80, Attack: 6, Defense: 6, Magic: 18, Speed: 10},
	}})
	s.Require().NoError(err)

	blob, err := s.source.exporter.Export(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.target.exporter.Import(s.ctx, blob))

	charOut, err := s.target.chars.Get(s.ctx, characterrepo.GetInput{ID: "char_2"})
	s.Require().NoError(err)
	s.Equal("Fresh", charOut.Character.Name)
}

func (s *ExporterTestSuite) TestImportRejectsGarbage() {
	s.Error(s.target.exporter.Import(s.ctx, "RPG_SAVE|abc|garbage"))
}

func TestExporterTestSuite(t *testing.T) {
	suite.Run(t, new(ExporterTestSuite))
}
