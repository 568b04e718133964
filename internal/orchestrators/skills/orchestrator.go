package skills

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	"github.com/a602017206/WordRPGGame/internal/pkg/idgen"
	"github.com/a602017206/WordRPGGame/internal/pkg/rng"
	mailboxrepo "github.com/a602017206/WordRPGGame/internal/repositories/mailbox"
	skillsrepo "github.com/a602017206/WordRPGGame/internal/repositories/skills"
)

// TransferCatalystName matches the material consumed when sending a skill to
// another character
const TransferCatalystName = "skill crystal"

var rarityUpgradeMultiplier = map[entities.ItemRarity]float64{
	entities.RarityCommon:    1.0,
	entities.RarityUncommon:  1.5,
	entities.RarityRare:      2.0,
	entities.RarityEpic:      3.0,
	entities.RarityLegendary: 5.0,
}

// Config holds the orchestrator dependencies
type Config struct {
	SkillsRepo       skillsrepo.Repository
	MailboxRepo      mailboxrepo.Repository
	GoldSpender      GoldSpender
	CatalystConsumer CatalystConsumer
	Clock            clock.Clock
	IDGen            idgen.Generator
	Roller           rng.Roller
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.SkillsRepo == nil {
		vb.RequiredField("skills_repo")
	}
	if cfg.MailboxRepo == nil {
		vb.RequiredField("mailbox_repo")
	}
	if cfg.GoldSpender == nil {
		vb.RequiredField("gold_spender")
	}
	if cfg.CatalystConsumer == nil {
		vb.RequiredField("catalyst_consumer")
	}
	return vb.Build()
}

type orchestrator struct {
	skillsRepo       skillsrepo.Repository
	mailboxRepo      mailboxrepo.Repository
	goldSpender      GoldSpender
	catalystConsumer CatalystConsumer
	clock            clock.Clock
	idgen            idgen.Generator
	roller           rng.Roller

	mu        sync.Mutex
	cooldowns map[string]map[string]time.Time
}

// NewOrchestrator creates a skills orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("mail")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewSeeded(c.Now().UnixNano())
	}

	return &orchestrator{
		skillsRepo:       cfg.SkillsRepo,
		mailboxRepo:      cfg.MailboxRepo,
		goldSpender:      cfg.GoldSpender,
		catalystConsumer: cfg.CatalystConsumer,
		clock:            c,
		idgen:            gen,
		roller:           roller,
		cooldowns:        make(map[string]map[string]time.Time),
	}, nil
}

// SkillDamage computes the damage of a skill at its current level against
// the caster's stats, before variance. Physical skills scale with attack,
// everything else with magic.
func SkillDamage(skill *entities.Skill, attack, magic int) int {
	base := skill.BaseDamage + skill.DamageGrowth*(skill.Level-1)
	stat := magic
	if skill.Element == entities.ElementPhysical {
		stat = attack
	}
	return int(math.Floor(float64(base) * skill.DamageMultiplier * (1 + float64(stat)/100)))
}

// SkillMPCost returns the MP cost of a skill at its current level
func SkillMPCost(skill *entities.Skill) int {
	return skill.MPCost + skill.MPCostGrowth*(skill.Level-1)
}

// SkillCooldown returns the cooldown in seconds of a skill at its current
// level, floored at zero
func SkillCooldown(skill *entities.Skill) float64 {
	return math.Max(0, skill.Cooldown-skill.CooldownReduction*float64(skill.Level-1))
}

// UpgradeCost returns the gold cost of raising a skill from its current
// level
func UpgradeCost(skill *entities.Skill) int {
	mult, ok := rarityUpgradeMultiplier[skill.Rarity]
	if !ok {
		mult = 1.0
	}
	return int(math.Floor(100 * float64(skill.Level) * mult))
}

func classAllowed(skillClass entities.SkillClass, class entities.ClassType) bool {
	if skillClass == entities.SkillClassUniversal {
		return true
	}
	switch class {
	case entities.ClassWarrior:
		return skillClass == entities.SkillClassWarrior
	case entities.ClassMage:
		return skillClass == entities.SkillClassMage
	case entities.ClassRogue:
		return skillClass == entities.SkillClassRogue
	case entities.ClassCleric:
		return skillClass == entities.SkillClassCleric
	}
	return false
}

func (o *orchestrator) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	if _, err := o.skillsRepo.Get(ctx, skillsrepo.GetInput{CharacterID: input.CharacterID}); err == nil {
		return &InitializeOutput{}, nil
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	defaultSkill := data.DefaultSkillForClass(input.Class)
	state := &entities.CharacterSkills{
		CharacterID: input.CharacterID,
		Learned:     []entities.Skill{defaultSkill},
	}
	state.Slots[0] = &entities.SkillSlot{
		SkillID:    defaultSkill.ID,
		EquippedAt: o.clock.Now().UnixMilli(),
	}

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill state initialized",
		"character_id", input.CharacterID,
		"default_skill", defaultSkill.ID)

	return &InitializeOutput{DefaultSkill: defaultSkill.ID}, nil
}

func (o *orchestrator) getState(ctx context.Context, characterID string) (*entities.CharacterSkills, error) {
	out, err := o.skillsRepo.Get(ctx, skillsrepo.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &entities.CharacterSkills{CharacterID: characterID}, nil
		}
		return nil, err
	}
	return out.Skills, nil
}

func (o *orchestrator) GetSkills(ctx context.Context, input *GetSkillsInput) (*GetSkillsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetSkillsOutput{Skills: state}, nil
}

func (o *orchestrator) Learn(ctx context.Context, input *LearnInput) (*LearnOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	tmpl := data.SkillByID(input.SkillID)
	if tmpl == nil {
		return nil, errors.NotFoundf("skill %s not found", input.SkillID)
	}

	if !classAllowed(tmpl.Class, input.Class) {
		return &LearnOutput{Success: false, Message: "class cannot learn this skill"}, nil
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if state.FindLearned(input.SkillID) != nil {
		return &LearnOutput{Success: false, Message: "skill already learned"}, nil
	}

	learned := *tmpl
	learned.Level = 1
	state.Learned = append(state.Learned, learned)

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	return &LearnOutput{Success: true, Message: fmt.Sprintf("learned %s", tmpl.Name)}, nil
}

func (o *orchestrator) EquipSkill(ctx context.Context, input *EquipSkillInput) (*EquipSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.SkillSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	skill := state.FindLearned(input.SkillID)
	if skill == nil {
		return &EquipSkillOutput{Success: false, Message: "skill not learned"}, nil
	}

	if other := state.SlotOf(input.SkillID); other != -1 && other != input.SlotIndex {
		return &EquipSkillOutput{Success: false, Message: "skill already equipped in another slot"}, nil
	}

	state.Slots[input.SlotIndex] = &entities.SkillSlot{
		SkillID:    input.SkillID,
		EquippedAt: o.clock.Now().UnixMilli(),
	}

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	return &EquipSkillOutput{
		Success: true,
		Message: fmt.Sprintf("%s bound to slot %d", skill.Name, input.SlotIndex+1),
	}, nil
}

func (o *orchestrator) UnequipSkill(ctx context.Context, input *UnequipSkillInput) (*UnequipSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.SkillSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slot := state.Slots[input.SlotIndex]
	if slot == nil {
		return &UnequipSkillOutput{Success: false, Message: "slot is empty"}, nil
	}

	name := slot.SkillID
	if skill := state.FindLearned(slot.SkillID); skill != nil {
		name = skill.Name
	}
	state.Slots[input.SlotIndex] = nil

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	return &UnequipSkillOutput{Success: true, Message: fmt.Sprintf("unbound %s", name)}, nil
}

func (o *orchestrator) onCooldown(characterID, skillID string, now time.Time) (bool, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	byChar, ok := o.cooldowns[characterID]
	if !ok {
		return false, 0
	}
	end, ok := byChar[skillID]
	if !ok || !now.Before(end) {
		return false, 0
	}
	return true, end.Sub(now)
}

func (o *orchestrator) setCooldown(characterID, skillID string, end time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cooldowns[characterID] == nil {
		o.cooldowns[characterID] = make(map[string]time.Time)
	}
	o.cooldowns[characterID][skillID] = end
}

func (o *orchestrator) Use(ctx context.Context, input *UseInput) (*UseOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.SkillSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slot := state.Slots[input.SlotIndex]
	if slot == nil {
		return &UseOutput{Success: false, Message: "slot is empty"}, nil
	}

	skill := state.FindLearned(slot.SkillID)
	if skill == nil {
		return nil, errors.Internalf("slot references unknown skill %s", slot.SkillID)
	}

	now := o.clock.Now()
	if cooling, remaining := o.onCooldown(input.CharacterID, skill.ID, now); cooling {
		secs := int(math.Ceil(remaining.Seconds()))
		return &UseOutput{
			Success: false,
			Message: fmt.Sprintf("%s on cooldown, %ds remaining", skill.Name, secs),
		}, nil
	}

	mpCost := SkillMPCost(skill)
	if input.CurrentMP < mpCost {
		return &UseOutput{Success: false, MPCost: mpCost, Message: "not enough MP"}, nil
	}

	// 90%-110% variance
	variance := 0.9 + o.roller.Float64()*0.2
	damage := int(math.Floor(float64(SkillDamage(skill, input.Attack, input.Magic)) * variance))

	cooldown := SkillCooldown(skill)
	if cooldown > 0 {
		o.setCooldown(input.CharacterID, skill.ID, now.Add(time.Duration(cooldown*float64(time.Second))))
	}

	slot.LastUsedAt = now.UnixMilli()
	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	return &UseOutput{
		Success:   true,
		Message:   fmt.Sprintf("used %s %s", skill.Icon, skill.Name),
		SkillName: skill.Name,
		Damage:    damage,
		MPCost:    mpCost,
		Cooldown:  cooldown,
		Effects:   skill.Effects,
	}, nil
}

func (o *orchestrator) Upgrade(ctx context.Context, input *UpgradeInput) (*UpgradeOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	skill := state.FindLearned(input.SkillID)
	if skill == nil {
		return &UpgradeOutput{Success: false, Message: "skill not learned"}, nil
	}
	if skill.Level >= skill.MaxLevel {
		return &UpgradeOutput{Success: false, Message: "skill is already at max level"}, nil
	}

	cost := UpgradeCost(skill)
	paid, err := o.goldSpender.SpendGold(ctx, input.CharacterID, cost)
	if err != nil {
		return nil, err
	}
	if !paid {
		return &UpgradeOutput{
			Success:  false,
			Message:  fmt.Sprintf("not enough gold, %d required", cost),
			GoldCost: cost,
		}, nil
	}

	skill.Level++

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill upgraded",
		"character_id", input.CharacterID,
		"skill_id", input.SkillID,
		"new_level", skill.Level,
		"gold_cost", cost)

	return &UpgradeOutput{
		Success:  true,
		Message:  fmt.Sprintf("%s upgraded to Lv.%d", skill.Name, skill.Level),
		NewLevel: skill.Level,
		GoldCost: cost,
	}, nil
}

func (o *orchestrator) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.FromCharacterID == "" || input.ToCharacterID == "" {
		return nil, errors.InvalidArgument("character IDs cannot be empty")
	}
	if input.FromCharacterID == input.ToCharacterID {
		return nil, errors.InvalidArgument("cannot transfer a skill to the same character")
	}

	state, err := o.getState(ctx, input.FromCharacterID)
	if err != nil {
		return nil, err
	}

	skill := state.FindLearned(input.SkillID)
	if skill == nil {
		return &TransferOutput{Success: false, Message: "skill not learned"}, nil
	}

	consumed, err := o.catalystConsumer.ConsumeCatalyst(ctx, input.FromCharacterID, TransferCatalystName, 1)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return &TransferOutput{Success: false, Message: "a skill crystal is required to transfer a skill"}, nil
	}

	sent := *skill

	// Remove from sender: learned list and any slot referencing it
	for i := range state.Learned {
		if state.Learned[i].ID == input.SkillID {
			state.Learned = append(state.Learned[:i], state.Learned[i+1:]...)
			break
		}
	}
	if idx := state.SlotOf(input.SkillID); idx != -1 {
		state.Slots[idx] = nil
	}

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	entry := &entities.MailEntry{
		ID:              o.idgen.Generate(),
		FromCharacterID: input.FromCharacterID,
		Skill:           sent,
		SentAt:          o.clock.Now().UnixMilli(),
	}
	if _, err := o.mailboxRepo.Enqueue(ctx, mailboxrepo.EnqueueInput{
		CharacterID: input.ToCharacterID,
		Entry:       entry,
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill sent to mailbox",
		"from_character_id", input.FromCharacterID,
		"to_character_id", input.ToCharacterID,
		"skill_id", input.SkillID,
		"skill_level", sent.Level)

	return &TransferOutput{
		Success: true,
		Message: fmt.Sprintf("%s (Lv.%d) sent to mailbox", sent.Name, sent.Level),
	}, nil
}

func (o *orchestrator) ClaimMail(ctx context.Context, input *ClaimMailInput) (*ClaimMailOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	drained, err := o.mailboxRepo.Drain(ctx, mailboxrepo.DrainInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	if len(drained.Entries) == 0 {
		return &ClaimMailOutput{}, nil
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out := &ClaimMailOutput{}
	var requeue []*entities.MailEntry
	for _, entry := range drained.Entries {
		if state.FindLearned(entry.Skill.ID) != nil {
			// Duplicate skills stay queued for a future character wipe
			requeue = append(requeue, entry)
			out.Skipped = append(out.Skipped, entry.Skill.Name)
			continue
		}
		state.Learned = append(state.Learned, entry.Skill)
		out.Claimed = append(out.Claimed, entry.Skill.Name)
	}

	if _, err := o.skillsRepo.Save(ctx, skillsrepo.SaveInput{Skills: state}); err != nil {
		return nil, err
	}

	for _, entry := range requeue {
		if _, err := o.mailboxRepo.Enqueue(ctx, mailboxrepo.EnqueueInput{
			CharacterID: input.CharacterID,
			Entry:       entry,
		}); err != nil {
			return nil, err
		}
	}

	return out, nil
}
