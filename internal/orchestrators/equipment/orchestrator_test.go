package equipment_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/equipment"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
)

const testCharID = "char_1"

// bagStore adapts the inventory orchestrator to the equipment item store
type bagStore struct {
	inventory inventory.Service
}

func (b *bagStore) TakeItem(ctx context.Context, characterID, itemID string) (bool, error) {
	out, err := b.inventory.RemoveItem(ctx, &inventory.RemoveItemInput{
		CharacterID: characterID,
		ItemID:      itemID,
		Quantity:    1,
	})
	if err != nil {
		return false, err
	}
	return out.Removed, nil
}

func (b *bagStore) ReturnItem(ctx context.Context, characterID string, item entities.Item) (bool, error) {
	out, err := b.inventory.AddItem(ctx, &inventory.AddItemInput{
		CharacterID: characterID,
		Item:        item,
		Quantity:    1,
	})
	if err != nil {
		return false, err
	}
	return out.Added, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	mini      *miniredis.Miniredis
	charRepo  characterrepo.Repository
	inventory inventory.Service
	svc       equipment.Service
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})

	s.charRepo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	invRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	curRepo, err := currencyrepo.NewRedis(&currencyrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	eqRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.inventory, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: invRepo,
		CurrencyRepo:  curRepo,
	})
	s.Require().NoError(err)

	s.svc, err = equipment.NewOrchestrator(&equipment.Config{
		EquipmentRepo: eqRepo,
		CharacterRepo: s.charRepo,
		ItemStore:     &bagStore{inventory: s.inventory},
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.createCharacter(5)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *OrchestratorTestSuite) createCharacter(level int) {
	_, err := s.charRepo.Create(s.ctx, characterrepo.CreateInput{Character: &entities.Character{
		ID:    testCharID,
		Name:  "Test Hero",
		Class: entities.ClassWarrior,
		Level: level,
		Stats: entities.Stats{HP: 120, MP: 30, Attack: 15, Defense: 12, Magic: 5, Speed: 8},
	}})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) giveEquipment(id string) {
	tmpl := data.EquipmentByID(id)
	s.Require().NotNil(tmpl)
	out, err := s.inventory.AddItem(s.ctx, &inventory.AddItemInput{
		CharacterID: testCharID,
		Item:        tmpl.Item,
		Quantity:    1,
	})
	s.Require().NoError(err)
	s.Require().True(out.Added)
}

func (s *OrchestratorTestSuite) TestEquipFromBag() {
	s.giveEquipment("weapon_iron_sword")

	out, err := s.svc.Equip(s.ctx, &equipment.EquipInput{
		CharacterID: testCharID,
		EquipmentID: "weapon_iron_sword",
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Nil(out.Replaced)

	// Sword left the bag
	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Nil(invOut.Character.Find("weapon_iron_sword"))

	bonusOut, err := s.svc.GetBonus(s.ctx, &equipment.GetBonusInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(5, bonusOut.Bonus.Attack)
}

func (s *OrchestratorTestSuite) TestEquipRequiresLevel() {
	s.giveEquipment("weapon_flame_sword") // needs level 10

	out, err := s.svc.Equip(s.ctx, &equipment.EquipInput{
		CharacterID: testCharID,
		EquipmentID: "weapon_flame_sword",
	})
	s.Require().NoError(err)
	s.False(out.Success)

	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.NotNil(invOut.Character.Find("weapon_flame_sword"))
}

func (s *OrchestratorTestSuite) TestEquipRequiresItemInBag() {
	out, err := s.svc.Equip(s.ctx, &equipment.EquipInput{
		CharacterID: testCharID,
		EquipmentID: "weapon_iron_sword",
	})
	s.Require().NoError(err)
	s.False(out.Success)
}

func (s *OrchestratorTestSuite) TestSwapReturnsDisplacedGear() {
	s.giveEquipment("weapon_iron_sword")
	s.giveEquipment("weapon_steel_sword")

	_, err := s.svc.Equip(s.ctx, &equipment.EquipInput{CharacterID: testCharID, EquipmentID: "weapon_iron_sword"})
	s.Require().NoError(err)

	out, err := s.svc.Equip(s.ctx, &equipment.EquipInput{CharacterID: testCharID, EquipmentID: "weapon_steel_sword"})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Require().NotNil(out.Replaced)
	s.Equal("weapon_iron_sword", out.Replaced.ID)

	// Displaced sword went back to the bag
	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.NotNil(invOut.Character.Find("weapon_iron_sword"))

	bonusOut, err := s.svc.GetBonus(s.ctx, &equipment.GetBonusInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(10, bonusOut.Bonus.Attack)
}

func (s *OrchestratorTestSuite) TestBonusSumsAcrossSlots() {
	s.giveEquipment("weapon_iron_sword")
	s.giveEquipment("shield_wooden")

	_, err := s.svc.Equip(s.ctx, &equipment.EquipInput{CharacterID: testCharID, EquipmentID: "weapon_iron_sword"})
	s.Require().NoError(err)
	_, err = s.svc.Equip(s.ctx, &equipment.EquipInput{CharacterID: testCharID, EquipmentID: "shield_wooden"})
	s.Require().NoError(err)

	eqOut, err := s.svc.GetEquipment(s.ctx, &equipment.GetEquipmentInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Len(eqOut.Equipment.Slots, 2)

	shield := data.EquipmentByID("shield_wooden")
	bonusOut, err := s.svc.GetBonus(s.ctx, &equipment.GetBonusInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(5, bonusOut.Bonus.Attack)
	s.Equal(shield.Bonus.Defense, bonusOut.Bonus.Defense)
	s.Equal(shield.Bonus.HP, bonusOut.Bonus.HP)
}

func (s *OrchestratorTestSuite) TestUnequipReturnsToBag() {
	s.giveEquipment("weapon_iron_sword")
	_, err := s.svc.Equip(s.ctx, &equipment.EquipInput{CharacterID: testCharID, EquipmentID: "weapon_iron_sword"})
	s.Require().NoError(err)

	out, err := s.svc.Unequip(s.ctx, &equipment.UnequipInput{CharacterID: testCharID, Slot: entities.SlotWeapon})
	s.Require().NoError(err)
	s.True(out.Success)

	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.NotNil(invOut.Character.Find("weapon_iron_sword"))

	bonusOut, err := s.svc.GetBonus(s.ctx, &equipment.GetBonusInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(entities.Stats{}, bonusOut.Bonus)
}

func (s *OrchestratorTestSuite) TestUnequipEmptySlot() {
	out, err := s.svc.Unequip(s.ctx, &equipment.UnequipInput{CharacterID: testCharID, Slot: entities.SlotHelmet})
	s.Require().NoError(err)
	s.False(out.Success)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
