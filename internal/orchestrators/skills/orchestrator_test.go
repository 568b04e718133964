package skills_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/skills"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	"github.com/a602017206/WordRPGGame/internal/pkg/idgen"
	"github.com/a602017206/WordRPGGame/internal/pkg/rng"
	mailboxrepo "github.com/a602017206/WordRPGGame/internal/repositories/mailbox"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
)

const testCharID = "char_1"

type fakeGoldSpender struct {
	balance int
}

func (f *fakeGoldSpender) SpendGold(_ context.Context, _ string, amount int) (bool, error) {
	if f.balance < amount {
		return false, nil
	}
	f.balance -= amount
	return true, nil
}

type fakeCatalystConsumer struct {
	crystals int
}

func (f *fakeCatalystConsumer) ConsumeCatalyst(_ context.Context, _, _ string, quantity int) (bool, error) {
	if f.crystals < quantity {
		return false, nil
	}
	f.crystals -= quantity
	return true, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	mini     *miniredis.Miniredis
	repo     skillsrepo.Repository
	mailbox  mailboxrepo.Repository
	spender  *fakeGoldSpender
	consumer *fakeCatalystConsumer
	clk      *clock.Manual
	roller   *rng.Scripted
	svc      skills.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})

	s.repo, err = skillsrepo.NewRedis(&skillsrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.mailbox, err = mailboxrepo.NewRedis(&mailboxrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.spender = &fakeGoldSpender{}
	s.consumer = &fakeCatalystConsumer{}
	s.clk = clock.NewManual(time.UnixMilli(1700000000000))
	s.roller = &rng.Scripted{Floats: []float64{0.5}}

	s.svc, err = skills.NewOrchestrator(&skills.Config{
		SkillsRepo:       s.repo,
		MailboxRepo:      s.mailbox,
		GoldSpender:      s.spender,
		CatalystConsumer: s.consumer,
		Clock:            s.clk,
		IDGen:            idgen.NewSequential("mail"),
		Roller:           s.roller,
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *OrchestratorTestSuite) initWarrior(characterID string) {
	out, err := s.svc.Initialize(s.ctx, &skills.InitializeInput{
		CharacterID: characterID,
		Class:       entities.ClassWarrior,
	})
	s.Require().NoError(err)
	s.Require().Equal("skill_warrior_slash", out.DefaultSkill)
}

func (s *OrchestratorTestSuite) state(characterID string) *entities.CharacterSkills {
	out, err := s.svc.GetSkills(s.ctx, &skills.GetSkillsInput{CharacterID: characterID})
	s.Require().NoError(err)
	return out.Skills
}

func (s *OrchestratorTestSuite) TestInitializeBindsDefaultSkill() {
	s.initWarrior(testCharID)

	state := s.state(testCharID)
	s.Require().Len(state.Learned, 1)
	s.Equal("skill_warrior_slash", state.Learned[0].ID)
	s.Equal(1, state.Learned[0].Level)
	s.Require().NotNil(state.Slots[0])
	s.Equal("skill_warrior_slash", state.Slots[0].SkillID)
}

func (s *OrchestratorTestSuite) TestInitializeIsIdempotent() {
	s.initWarrior(testCharID)

	out, err := s.svc.Initialize(s.ctx, &skills.InitializeInput{
		CharacterID: testCharID,
		Class:       entities.ClassMage,
	})
	s.Require().NoError(err)
	s.Empty(out.DefaultSkill)

	s.Len(s.state(testCharID).Learned, 1)
}

func (s *OrchestratorTestSuite) TestLearnRejectsWrongClass() {
	s.initWarrior(testCharID)

	out, err := s.svc.Learn(s.ctx, &skills.LearnInput{
		CharacterID: testCharID,
		SkillID:     "skill_mage_fireball",
		Class:       entities.ClassWarrior,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("class cannot learn this skill", out.Message)
}

func (s *OrchestratorTestSuite) TestLearn() {
	s.initWarrior(testCharID)

	out, err := s.svc.Learn(s.ctx, &skills.LearnInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_charge",
		Class:       entities.ClassWarrior,
	})
	s.Require().NoError(err)
	s.True(out.Success)

	state := s.state(testCharID)
	s.Require().NotNil(state.FindLearned("skill_warrior_charge"))
	s.Equal(1, state.FindLearned("skill_warrior_charge").Level)

	// Learning twice is rejected
	out, err = s.svc.Learn(s.ctx, &skills.LearnInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_charge",
		Class:       entities.ClassWarrior,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("skill already learned", out.Message)
}

func (s *OrchestratorTestSuite) TestLearnUnknownSkill() {
	s.initWarrior(testCharID)

	_, err := s.svc.Learn(s.ctx, &skills.LearnInput{
		CharacterID: testCharID,
		SkillID:     "skill_nope",
		Class:       entities.ClassWarrior,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEquipSkillOneSlotPerSkill() {
	s.initWarrior(testCharID)
	_, err := s.svc.Learn(s.ctx, &skills.LearnInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_charge",
		Class:       entities.ClassWarrior,
	})
	s.Require().NoError(err)

	out, err := s.svc.EquipSkill(s.ctx, &skills.EquipSkillInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_charge",
		SlotIndex:   1,
	})
	s.Require().NoError(err)
	s.True(out.Success)

	// Same skill cannot occupy a second slot
	out, err = s.svc.EquipSkill(s.ctx, &skills.EquipSkillInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_charge",
		SlotIndex:   2,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("skill already equipped in another slot", out.Message)
}

func (s *OrchestratorTestSuite) TestEquipSkillNotLearned() {
	s.initWarrior(testCharID)

	out, err := s.svc.EquipSkill(s.ctx, &skills.EquipSkillInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_whirlwind",
		SlotIndex:   1,
	})
	s.Require().NoError(err)
	s.False(out.Success)
}

func (s *OrchestratorTestSuite) TestEquipSkillSlotOutOfRange() {
	s.initWarrior(testCharID)

	_, err := s.svc.EquipSkill(s.ctx, &skills.EquipSkillInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_slash",
		SlotIndex:   entities.SkillSlotCount,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnequipSkill() {
	s.initWarrior(testCharID)

	out, err := s.svc.UnequipSkill(s.ctx, &skills.UnequipSkillInput{
		CharacterID: testCharID,
		SlotIndex:   0,
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Nil(s.state(testCharID).Slots[0])

	out, err = s.svc.UnequipSkill(s.ctx, &skills.UnequipSkillInput{
		CharacterID: testCharID,
		SlotIndex:   0,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("slot is empty", out.Message)
}

func (s *OrchestratorTestSuite) TestUse() {
	s.initWarrior(testCharID)

	// Heavy Slash Lv.1: base 25, x1.5, scaled by attack 15.
	// Variance 0.9 + 0.5*0.2 = 1.0, so damage is the raw formula value.
	out, err := s.svc.Use(s.ctx, &skills.UseInput{
		CharacterID: testCharID,
		SlotIndex:   0,
		Attack:      15,
		Magic:       5,
		CurrentMP:   30,
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal("Heavy Slash", out.SkillName)
	s.Equal(43, out.Damage)
	s.Equal(15, out.MPCost)
	s.InDelta(3.0, out.Cooldown, 0.001)
}

func (s *OrchestratorTestSuite) TestUseCooldown() {
	s.initWarrior(testCharID)

	use := func() *skills.UseOutput {
		out, err := s.svc.Use(s.ctx, &skills.UseInput{
			CharacterID: testCharID,
			SlotIndex:   0,
			Attack:      15,
			Magic:       5,
			CurrentMP:   30,
		})
		s.Require().NoError(err)
		return out
	}

	s.True(use().Success)

	out := use()
	s.False(out.Success)
	s.Contains(out.Message, "cooldown")

	s.clk.Advance(3 * time.Second)
	s.True(use().Success)
}

func (s *OrchestratorTestSuite) TestUseNotEnoughMP() {
	s.initWarrior(testCharID)

	out, err := s.svc.Use(s.ctx, &skills.UseInput{
		CharacterID: testCharID,
		SlotIndex:   0,
		Attack:      15,
		Magic:       5,
		CurrentMP:   10,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("not enough MP", out.Message)
	s.Equal(15, out.MPCost)
}

func (s *OrchestratorTestSuite) TestUseEmptySlot() {
	s.initWarrior(testCharID)

	out, err := s.svc.Use(s.ctx, &skills.UseInput{
		CharacterID: testCharID,
		SlotIndex:   2,
		Attack:      15,
		CurrentMP:   30,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("slot is empty", out.Message)
}

func (s *OrchestratorTestSuite) TestUpgradeSpendsGold() {
	s.initWarrior(testCharID)
	s.spender.balance = 150

	out, err := s.svc.Upgrade(s.ctx, &skills.UpgradeInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_slash",
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(2, out.NewLevel)
	s.Equal(100, out.GoldCost)
	s.Equal(50, s.spender.balance)

	// The new level is visible through the equipped slot
	state := s.state(testCharID)
	s.Equal(2, state.FindLearned(state.Slots[0].SkillID).Level)

	// Next level costs 200, more than remains
	out, err = s.svc.Upgrade(s.ctx, &skills.UpgradeInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_slash",
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal(200, out.GoldCost)
	s.Equal(50, s.spender.balance)
}

func (s *OrchestratorTestSuite) TestUpgradeAtMaxLevel() {
	maxed := data.DefaultSkillForClass(entities.ClassWarrior)
	maxed.Level = maxed.MaxLevel
	_, err := s.repo.Save(s.ctx, skillsrepo.SaveInput{Skills: &entities.CharacterSkills{
		CharacterID: testCharID,
		Learned:     []entities.Skill{maxed},
	}})
	s.Require().NoError(err)
	s.spender.balance = 100000

	out, err := s.svc.Upgrade(s.ctx, &skills.UpgradeInput{
		CharacterID: testCharID,
		SkillID:     maxed.ID,
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("skill is already at max level", out.Message)
}

func (s *OrchestratorTestSuite) TestTransferConsumesCrystal() {
	s.initWarrior(testCharID)
	s.spender.balance = 100
	s.consumer.crystals = 1

	// Raise the skill first so the mailed copy keeps its level
	_, err := s.svc.Upgrade(s.ctx, &skills.UpgradeInput{
		CharacterID: testCharID,
		SkillID:     "skill_warrior_slash",
	})
	s.Require().NoError(err)

	out, err := s.svc.Transfer(s.ctx, &skills.TransferInput{
		FromCharacterID: testCharID,
		ToCharacterID:   "char_2",
		SkillID:         "skill_warrior_slash",
	})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(0, s.consumer.crystals)

	// Gone from the sender, learned list and slot both
	state := s.state(testCharID)
	s.Empty(state.Learned)
	s.Nil(state.Slots[0])

	mail, err := s.mailbox.List(s.ctx, mailboxrepo.ListInput{CharacterID: "char_2"})
	s.Require().NoError(err)
	s.Require().Len(mail.Entries, 1)
	s.Equal("skill_warrior_slash", mail.Entries[0].Skill.ID)
	s.Equal(2, mail.Entries[0].Skill.Level)
	s.Equal(testCharID, mail.Entries[0].FromCharacterID)
}

func (s *OrchestratorTestSuite) TestTransferWithoutCrystal() {
	s.initWarrior(testCharID)

	out, err := s.svc.Transfer(s.ctx, &skills.TransferInput{
		FromCharacterID: testCharID,
		ToCharacterID:   "char_2",
		SkillID:         "skill_warrior_slash",
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Contains(out.Message, "skill crystal")

	// Skill stays with the sender
	s.NotNil(s.state(testCharID).FindLearned("skill_warrior_slash"))
}

func (s *OrchestratorTestSuite) TestTransferToSelf() {
	s.initWarrior(testCharID)

	_, err := s.svc.Transfer(s.ctx, &skills.TransferInput{
		FromCharacterID: testCharID,
		ToCharacterID:   testCharID,
		SkillID:         "skill_warrior_slash",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestTransferNotLearned() {
	s.initWarrior(testCharID)
	s.consumer.crystals = 1

	out, err := s.svc.Transfer(s.ctx, &skills.TransferInput{
		FromCharacterID: testCharID,
		ToCharacterID:   "char_2",
		SkillID:         "skill_mage_fireball",
	})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal("skill not learned", out.Message)
	s.Equal(1, s.consumer.crystals)
}

func (s *OrchestratorTestSuite) TestClaimMail() {
	s.initWarrior(testCharID)

	slash := *data.SkillByID("skill_warrior_slash")
	slash.Level = 3
	fireball := *data.SkillByID("skill_mage_fireball")

	for i, skill := range []entities.Skill{slash, fireball} {
		_, err := s.mailbox.Enqueue(s.ctx, mailboxrepo.EnqueueInput{
			CharacterID: testCharID,
			Entry: &entities.MailEntry{
				ID:              "mail_" + string(rune('a'+i)),
				FromCharacterID: "char_2",
				Skill:           skill,
				SentAt:          s.clk.Now().UnixMilli(),
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.svc.ClaimMail(s.ctx, &skills.ClaimMailInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal([]string{"Fireball"}, out.Claimed)
	s.Equal([]string{"Heavy Slash"}, out.Skipped)

	state := s.state(testCharID)
	s.NotNil(state.FindLearned("skill_mage_fireball"))
	// The duplicate never overwrote the known copy
	s.Equal(1, state.FindLearned("skill_warrior_slash").Level)

	// The duplicate stays queued
	mail, err := s.mailbox.List(s.ctx, mailboxrepo.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Require().Len(mail.Entries, 1)
	s.Equal("skill_warrior_slash", mail.Entries[0].Skill.ID)
}

func (s *OrchestratorTestSuite) TestClaimMailEmpty() {
	s.initWarrior(testCharID)

	out, err := s.svc.ClaimMail(s.ctx, &skills.ClaimMailInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(out.Claimed)
	s.Empty(out.Skipped)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestSkillDamageScalesWithStat(t *testing.T) {
	slash := data.SkillByID("skill_warrior_slash")
	fireball := data.SkillByID("skill_mage_fireball")

	// Physical scales with attack, everything else with magic
	assert.Equal(t, 43, skills.SkillDamage(slash, 15, 50))
	assert.Equal(t, 90, skills.SkillDamage(fireball, 100, 50))
}

func TestSkillDamageGrowsWithLevel(t *testing.T) {
	slash := *data.SkillByID("skill_warrior_slash")
	slash.Level = 3

	// base 25 + 5*2 = 35, x1.5, x1.15 = 60.375
	assert.Equal(t, 60, skills.SkillDamage(&slash, 15, 0))
}

func TestSkillMPCost(t *testing.T) {
	charge := *data.SkillByID("skill_warrior_charge")
	assert.Equal(t, 25, skills.SkillMPCost(&charge))

	charge.Level = 4
	assert.Equal(t, 34, skills.SkillMPCost(&charge))
}

func TestSkillCooldownFloorsAtZero(t *testing.T) {
	slash := *data.SkillByID("skill_warrior_slash")
	assert.InDelta(t, 3.0, skills.SkillCooldown(&slash), 0.001)

	slash.Level = 6
	assert.InDelta(t, 2.0, skills.SkillCooldown(&slash), 0.001)

	slash.Level = 100
	assert.Zero(t, skills.SkillCooldown(&slash))
}

func TestUpgradeCostByRarity(t *testing.T) {
	slash := *data.SkillByID("skill_warrior_slash") // common
	assert.Equal(t, 100, skills.UpgradeCost(&slash))
	slash.Level = 4
	assert.Equal(t, 400, skills.UpgradeCost(&slash))

	charge := *data.SkillByID("skill_warrior_charge") // uncommon x1.5
	charge.Level = 3
	assert.Equal(t, 450, skills.UpgradeCost(&charge))

	shadow := *data.SkillByID("skill_rogue_shadowstrike") // epic x3
	shadow.Level = 2
	assert.Equal(t, 600, skills.UpgradeCost(&shadow))
}
