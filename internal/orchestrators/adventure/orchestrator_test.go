package adventure_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/adventure"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/equipment"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/skills"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	"github.com/a602017206/WordRPGGame/internal/pkg/idgen"
	"github.com/a602017206/WordRPGGame/internal/pkg/rng"
	"github.com/a602017206/WordRPGGame/internal/pkg/scheduler"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	equipmentrepo "github.com/a602017206/WordRPGGame/internal/repositories/equipment"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
	mailboxrepo "github.com/a602017206/WordRPGGame/internal/repositories/mailbox"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
)

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

type noGold struct{}

func (noGold) SpendGold(context.Context, string, int) (bool, error) { return false, nil }

type noCatalyst struct{}

func (noCatalyst) ConsumeCatalyst(context.Context, string, string, int) (bool, error) {
	return false, nil
}

type fakeQuestTracker struct {
	targets []string
	kills   []string
	unlocks int
}

func (f *fakeQuestTracker) RecordKill(_ context.Context, _, templateID, _ string) error {
	f.kills = append(f.kills, templateID)
	return nil
}

func (f *fakeQuestTracker) ActiveKillTargets(context.Context, string) ([]string, error) {
	return f.targets, nil
}

func (f *fakeQuestTracker) UnlockMaps(context.Context, string) error {
	f.unlocks++
	return nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	mini      *miniredis.Miniredis
	inventory inventory.Service
	roller    *rng.Scripted
	sched     *scheduler.Manual
	svc       adventure.Service
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	invRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	curRepo, err := currencyrepo.NewRedis(&currencyrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	eqRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	skRepo, err := skillsrepo.NewRedis(&skillsrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	mailRepo, err := mailboxrepo.NewRedis(&mailboxrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.inventory, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: invRepo,
		CurrencyRepo:  curRepo,
	})
	s.Require().NoError(err)

	equipSvc, err := equipment.NewOrchestrator(&equipment.Config{
		EquipmentRepo: eqRepo,
		CharacterRepo: charRepo,
		ItemStore:     &bagStore{inventory: s.inventory},
	})
	s.Require().NoError(err)

	s.roller = &rng.Scripted{Floats: []float64{0.5}, Ints: []int{0}}
	s.sched = scheduler.NewManual()

	skillSvc, err := skills.NewOrchestrator(&skills.Config{
		SkillsRepo:       skRepo,
		MailboxRepo:      mailRepo,
		GoldSpender:      noGold{},
		CatalystConsumer: noCatalyst{},
		Clock:            clock.NewManual(time.UnixMilli(1700000000000)),
		Roller:           s.roller,
	})
	s.Require().NoError(err)

	s.svc, err = adventure.NewOrchestrator(&adventure.Config{
		CharacterRepo: charRepo,
		Inventory:     s.inventory,
		Equipment:     equipSvc,
		Skills:        skillSvc,
		Clock:         clock.NewManual(time.UnixMilli(1700000000000)),
		IDGen:         idgen.NewSequential("id"),
		Roller:        s.roller,
		Scheduler:     s.sched,
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *OrchestratorTestSuite) createWarrior() *entities.Character {
	out, err := s.svc.CreateCharacter(s.ctx, &adventure.CreateCharacterInput{
		Name:  "Hero",
		Class: entities.ClassWarrior,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) startSession(characterID string) {
	_, err := s.svc.StartSession(s.ctx, &adventure.StartSessionInput{CharacterID: characterID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) snapshot(characterID string) *adventure.Snapshot {
	out, err := s.svc.GetState(s.ctx, &adventure.GetStateInput{CharacterID: characterID})
	s.Require().NoError(err)
	return out.Snapshot
}

func (s *OrchestratorTestSuite) attack(characterID string) *adventure.AttackOutput {
	out, err := s.svc.Attack(s.ctx, &adventure.AttackInput{CharacterID: characterID})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	char := s.createWarrior()

	s.Equal("id_1", char.ID)
	s.Equal(1, char.Level)
	s.Equal("Warrior", char.ClassName)
	s.Equal(entities.Stats{HP: 120, MP: 30, Attack: 15, Defense: 12, Magic: 5, Speed: 8}, char.Stats)

	// The default skill was set up and the character selected
	listOut, err := s.svc.ListCharacters(s.ctx, &adventure.ListCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(listOut.Characters, 1)
	s.Equal(char.ID, listOut.SelectedID)
}

func (s *OrchestratorTestSuite) TestCreateCharacterUnknownClass() {
	_, err := s.svc.CreateCharacter(s.ctx, &adventure.CreateCharacterInput{
		Name:  "Hero",
		Class: entities.ClassType("bard"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.DeleteCharacter(s.ctx, &adventure.DeleteCharacterInput{CharacterID: char.ID})
	s.Require().NoError(err)

	_, err = s.svc.GetCharacter(s.ctx, &adventure.GetCharacterInput{CharacterID: char.ID})
	s.True(errors.IsNotFound(err))
	_, err = s.svc.GetState(s.ctx, &adventure.GetStateInput{CharacterID: char.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGrantExperienceLevelLoop() {
	char := s.createWarrior()

	// 250 exp eats the 100 and 150 thresholds exactly
	out, err := s.svc.GrantExperience(s.ctx, &adventure.GrantExperienceInput{
		CharacterID: char.ID,
		Amount:      250,
	})
	s.Require().NoError(err)
	s.Equal(2, out.LevelsGained)
	s.Equal(3, out.NewLevel)

	getOut, err := s.svc.GetCharacter(s.ctx, &adventure.GetCharacterInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(3, getOut.Character.Level)
	s.Equal(0, getOut.Character.Experience)
	// Minimum stat gains twice over, Ints scripted to zero
	s.Equal(entities.Stats{HP: 140, MP: 46, Attack: 19, Defense: 16, Magic: 9, Speed: 10}, getOut.Character.Stats)
}

func (s *OrchestratorTestSuite) TestStartSessionIsIdempotent() {
	char := s.createWarrior()
	s.startSession(char.ID)
	s.Equal(1, s.sched.Pending()) // the regen tick

	out, err := s.svc.StartSession(s.ctx, &adventure.StartSessionInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(120, out.Snapshot.CurrentHP)
	s.Equal(1, s.sched.Pending())
}

func (s *OrchestratorTestSuite) TestGetStateWithoutSession() {
	_, err := s.svc.GetState(s.ctx, &adventure.GetStateInput{CharacterID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestBattleVictoryFlow() {
	char := s.createWarrior()
	s.startSession(char.ID)

	battleOut, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal("enemy_slime", battleOut.Enemy.TemplateID)
	s.Equal(1, battleOut.Enemy.Level)
	s.Equal(30, battleOut.Enemy.HP)

	// 15 attack vs 1 defense at 1.0 variance kills the slime in three swings
	s.Equal(&adventure.AttackOutput{Damage: 14, Victory: false}, s.attack(char.ID))
	s.Equal(&adventure.AttackOutput{Damage: 14, Victory: false}, s.attack(char.ID))
	s.Equal(&adventure.AttackOutput{Damage: 14, Victory: true}, s.attack(char.ID))

	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateVictory, snap.State)
	s.Nil(snap.Enemy)

	balances, err := s.inventory.GetBalances(s.ctx, &inventory.GetBalancesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(12, balances.Gold)
	s.Equal(0, balances.Diamond) // both drop rolls miss at 0.5

	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Empty(invOut.Character.Entries)
	s.Empty(invOut.Account.Entries)

	getOut, err := s.svc.GetCharacter(s.ctx, &adventure.GetCharacterInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(22, getOut.Character.Experience)
	s.Equal(1, getOut.Character.Progress.EnemiesDefeated)
}

func (s *OrchestratorTestSuite) TestStartBattleWhileBattling() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	_, err = s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSeekAndChoose() {
	s.roller.Ints = []int{1}

	char := s.createWarrior()
	s.startSession(char.ID)

	seekOut, err := s.svc.SeekEnemies(s.ctx, &adventure.SeekEnemiesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Len(seekOut.Candidates, 4)
	s.Equal(adventure.StateSelecting, s.snapshot(char.ID).State)

	_, err = s.svc.ChooseEnemy(s.ctx, &adventure.ChooseEnemyInput{CharacterID: char.ID, Index: 9})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	chooseOut, err := s.svc.ChooseEnemy(s.ctx, &adventure.ChooseEnemyInput{CharacterID: char.ID, Index: 0})
	s.Require().NoError(err)
	s.Equal(seekOut.Candidates[0].ID, chooseOut.Enemy.ID)
	s.Equal(adventure.StateBattling, s.snapshot(char.ID).State)
}

func (s *OrchestratorTestSuite) TestCancelSeek() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.SeekEnemies(s.ctx, &adventure.SeekEnemiesInput{CharacterID: char.ID})
	s.Require().NoError(err)

	_, err = s.svc.CancelSeek(s.ctx, &adventure.CancelSeekInput{CharacterID: char.ID})
	s.Require().NoError(err)
	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateIdle, snap.State)
	s.Empty(snap.Candidates)
}

func (s *OrchestratorTestSuite) TestCounterAttackAndRest() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	s.attack(char.ID)
	s.sched.Fire() // the slime counters for 1

	s.Equal(119, s.snapshot(char.ID).CurrentHP)

	s.attack(char.ID)
	s.True(s.attack(char.ID).Victory)

	restOut, err := s.svc.Rest(s.ctx, &adventure.RestInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.True(restOut.Success)
	s.Equal(1, restOut.HPRecover)
	s.Equal(0, restOut.MPRecover)

	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateIdle, snap.State)
	s.Equal(120, snap.CurrentHP)

	restOut, err = s.svc.Rest(s.ctx, &adventure.RestInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.False(restOut.Success)
	s.Equal("already at full strength", restOut.Message)
}

func (s *OrchestratorTestSuite) TestRestDuringBattle() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	out, err := s.svc.Rest(s.ctx, &adventure.RestInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("cannot rest during battle", out.Message)
}

func (s *OrchestratorTestSuite) TestUseSkillVictory() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	// Heavy Slash at 1.0 variance one-shots the slime
	out, err := s.svc.UseSkill(s.ctx, &adventure.UseSkillInput{
		CharacterID: char.ID,
		SlotIndex:   0,
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(43, out.Damage)
	s.True(out.Victory)

	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateVictory, snap.State)
	s.Equal(15, snap.CurrentMP) // 30 minus the skill's MP cost
}

func (s *OrchestratorTestSuite) TestUseBasicSkillVictory() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	// A swing then the 1.5x generic skill finishes the slime
	s.attack(char.ID)
	out, err := s.svc.UseBasicSkill(s.ctx, &adventure.UseBasicSkillInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(21, out.Damage) // floor(14 * 1.5)
	s.True(out.Victory)

	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateVictory, snap.State)
	s.Equal(10, snap.CurrentMP) // 30 minus the flat 20 cost
}

func (s *OrchestratorTestSuite) TestVictoryDropsLootAndDiamonds() {
	// Scripted rolls: enemy gold, three swings, then the diamond roll hits
	// under 0.1 and the loot roll under 0.3
	s.roller.Floats = []float64{0.5, 0.5, 0.5, 0.5, 0.05, 0.2}
	// pool pick, level offset, diamond amount, loot index (magic stone)
	s.roller.Ints = []int{0, 0, 2, 4}

	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.attack(char.ID)
	s.attack(char.ID)
	s.True(s.attack(char.ID).Victory)

	balances, err := s.inventory.GetBalances(s.ctx, &inventory.GetBalancesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(3, balances.Diamond)

	// The account-bound drop lands in the vault, not the bag
	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Nil(invOut.Character.Find(data.ItemMagicStone))
	entry := invOut.Account.Find(data.ItemMagicStone)
	s.Require().NotNil(entry)
	s.Equal(1, entry.Quantity)
}

func (s *OrchestratorTestSuite) TestVictoryCharacterBoundLootStaysInBag() {
	// The diamond roll misses at 0.5, the loot roll hits at 0.2
	s.roller.Floats = []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.2}
	// pool pick, level offset, loot index (health potion)
	s.roller.Ints = []int{0, 0, 0}

	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.attack(char.ID)
	s.attack(char.ID)
	s.True(s.attack(char.ID).Victory)

	balances, err := s.inventory.GetBalances(s.ctx, &inventory.GetBalancesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(0, balances.Diamond)

	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	entry := invOut.Character.Find(data.ItemHealthPotion)
	s.Require().NotNil(entry)
	s.Equal(1, entry.Quantity)
	s.Empty(invOut.Account.Entries)
}

func (s *OrchestratorTestSuite) TestVictoryWhenRewardPayoutFails() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.attack(char.ID)
	s.attack(char.ID)

	// The killing blow still reports the victory when the reward payout
	// cannot reach storage
	s.mini.SetError("storage unavailable")
	out, err := s.svc.Attack(s.ctx, &adventure.AttackInput{CharacterID: char.ID})
	s.mini.SetError("")
	s.Require().NoError(err)
	s.True(out.Victory)

	snap := s.snapshot(char.ID)
	s.Equal(adventure.StateVictory, snap.State)
	s.Nil(snap.Enemy)
}

func (s *OrchestratorTestSuite) TestUseSkillEmptySlot() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)

	out, err := s.svc.UseSkill(s.ctx, &adventure.UseSkillInput{
		CharacterID: char.ID,
		SlotIndex:   2,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("slot is empty", out.Message)
	s.Equal(30, s.snapshot(char.ID).CurrentMP)
}

func (s *OrchestratorTestSuite) TestQuickSlotHealsSession() {
	char := s.createWarrior()

	potion := data.ItemByID(data.ItemHealthPotion)
	s.Require().NotNil(potion)
	_, err := s.inventory.AddItem(s.ctx, &inventory.AddItemInput{
		CharacterID: char.ID,
		Item:        *potion,
		Quantity:    1,
	})
	s.Require().NoError(err)
	_, err = s.inventory.SetQuickSlot(s.ctx, &inventory.SetQuickSlotInput{
		CharacterID: char.ID,
		SlotIndex:   0,
		ItemID:      potion.ID,
	})
	s.Require().NoError(err)

	s.startSession(char.ID)
	_, err = s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.attack(char.ID)
	s.sched.Fire()
	s.Equal(119, s.snapshot(char.ID).CurrentHP)

	out, err := s.svc.UseQuickSlot(s.ctx, &adventure.UseQuickSlotInput{
		CharacterID: char.ID,
		SlotIndex:   0,
	})
	s.Require().NoError(err)
	s.True(out.Success)

	// Healing clamps at max HP and the potion is gone from the bag
	s.Equal(120, s.snapshot(char.ID).CurrentHP)
	invOut, err := s.inventory.GetInventories(s.ctx, &inventory.GetInventoriesInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Nil(invOut.Character.Find(potion.ID))
}

func (s *OrchestratorTestSuite) TestEndSessionStopsTimers() {
	char := s.createWarrior()
	s.startSession(char.ID)

	_, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.attack(char.ID)
	s.Equal(2, s.sched.Pending()) // regen tick plus the armed counter

	_, err = s.svc.EndSession(s.ctx, &adventure.EndSessionInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal(0, s.sched.Pending())

	_, err = s.svc.GetState(s.ctx, &adventure.GetStateInput{CharacterID: char.ID})
	s.True(errors.IsNotFound(err))

	// Ending again is a no-op
	_, err = s.svc.EndSession(s.ctx, &adventure.EndSessionInput{CharacterID: char.ID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestQuestTargetForcesEncounter() {
	tracker := &fakeQuestTracker{targets: []string{"enemy_goblin"}}
	s.svc.SetQuestTracker(tracker)
	s.roller.Floats = []float64{0.4} // under the forcing chance

	char := s.createWarrior()
	s.Equal(1, tracker.unlocks)
	s.startSession(char.ID)

	battleOut, err := s.svc.StartBattle(s.ctx, &adventure.StartBattleInput{CharacterID: char.ID})
	s.Require().NoError(err)
	s.Equal("enemy_goblin", battleOut.Enemy.TemplateID)

	for !s.attack(char.ID).Victory {
	}
	s.Equal([]string{"enemy_goblin"}, tracker.kills)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
