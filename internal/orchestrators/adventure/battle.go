package adventure

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/equipment"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/skills"
	"github.com/a602017206/WordRPGGame/internal/pkg/scheduler"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
)

const (
	counterDelay   = 800 * time.Millisecond
	respawnDelay   = 2 * time.Second
	mpRegenPeriod  = 2 * time.Second
	mpRegenLogOdds = 0.33

	highTierLevel  = 8
	highTierWeight = 0.7

	basicSkillMPCost     = 20
	basicSkillMultiplier = 1.5

	questForceChance = 0.5
	restRatio        = 0.3
	respawnRatio     = 0.5
	logLimit         = 50
)

// session is one character's live battle state. Guarded by the orchestrator
// mutex. seq increments whenever the state machine moves in a way that
// invalidates in-flight timers; timer callbacks compare it before acting.
type session struct {
	characterID string
	level       int
	state       State
	hp          int
	mp          int
	stats       entities.Stats
	enemy       *entities.Enemy
	candidates  []entities.Enemy
	logs        []entities.BattleLog
	seq         int
	regen       scheduler.Task
	pending     scheduler.Task
}

func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	bonusOut, err := o.equipment.GetBonus(ctx, &equipment.GetBonusInput{CharacterID: char.ID})
	if err != nil {
		return nil, err
	}
	effective := char.Stats.Add(bonusOut.Bonus)

	o.mu.Lock()
	defer o.mu.Unlock()

	if existing := o.sessions[char.ID]; existing != nil {
		return &StartSessionOutput{Snapshot: existing.snapshot()}, nil
	}

	sess := &session{
		characterID: char.ID,
		level:       char.Level,
		state:       StateIdle,
		hp:          effective.HP,
		mp:          effective.MP,
		stats:       effective,
	}
	sess.regen = o.scheduler.Every(mpRegenPeriod, func() { o.regenTick(char.ID) })
	o.sessions[char.ID] = sess

	o.logLocked(sess, fmt.Sprintf("%s enters the adventure", char.Name), entities.LogInfo)
	slog.InfoContext(ctx, "battle session started", "character_id", char.ID)

	return &StartSessionOutput{Snapshot: sess.snapshot()}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return &EndSessionOutput{}, nil
	}

	sess.seq++
	if sess.regen != nil {
		sess.regen.Cancel()
	}
	if sess.pending != nil {
		sess.pending.Cancel()
	}
	delete(o.sessions, input.CharacterID)

	slog.InfoContext(ctx, "battle session ended", "character_id", input.CharacterID)
	return &EndSessionOutput{}, nil
}

func (o *orchestrator) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	return &GetStateOutput{Snapshot: sess.snapshot()}, nil
}

func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	sess := o.sessions[input.CharacterID]
	if sess == nil {
		o.mu.Unlock()
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateIdle && sess.state != StateVictory {
		o.mu.Unlock()
		return nil, errors.FailedPreconditionf("cannot start a battle while %s", sess.state)
	}
	level := sess.level
	o.mu.Unlock()

	forced := o.questTarget(ctx, input.CharacterID)
	enemy := o.generateEnemy(level, forced)

	o.mu.Lock()
	defer o.mu.Unlock()
	if sess = o.sessions[input.CharacterID]; sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateIdle && sess.state != StateVictory {
		return nil, errors.FailedPreconditionf("cannot start a battle while %s", sess.state)
	}

	sess.seq++
	sess.state = StateBattling
	sess.enemy = &enemy
	sess.candidates = nil
	o.logLocked(sess, fmt.Sprintf("%s Lv.%d %s appears!", enemy.Icon, enemy.Level, enemy.Name), entities.LogInfo)

	return &StartBattleOutput{Enemy: &enemy}, nil
}

func (o *orchestrator) SeekEnemies(ctx context.Context, input *SeekEnemiesInput) (*SeekEnemiesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	sess := o.sessions[input.CharacterID]
	if sess == nil {
		o.mu.Unlock()
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateIdle && sess.state != StateVictory {
		o.mu.Unlock()
		return nil, errors.FailedPreconditionf("cannot seek enemies while %s", sess.state)
	}
	level := sess.level
	o.mu.Unlock()

	forced := o.questTarget(ctx, input.CharacterID)

	count := 3 + o.roller.Intn(3)
	candidates := make([]entities.Enemy, 0, count)
	for i := 0; i < count; i++ {
		// only the first candidate honors quest targeting, the rest roll free
		if i == 0 {
			candidates = append(candidates, o.generateEnemy(level, forced))
			continue
		}
		candidates = append(candidates, o.generateEnemy(level, nil))
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if sess = o.sessions[input.CharacterID]; sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateIdle && sess.state != StateVictory {
		return nil, errors.FailedPreconditionf("cannot seek enemies while %s", sess.state)
	}

	sess.state = StateSelecting
	sess.candidates = candidates
	o.logLocked(sess, fmt.Sprintf("spotted %d enemies nearby", len(candidates)), entities.LogInfo)

	return &SeekEnemiesOutput{Candidates: candidates}, nil
}

func (o *orchestrator) ChooseEnemy(_ context.Context, input *ChooseEnemyInput) (*ChooseEnemyOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateSelecting {
		return nil, errors.FailedPrecondition("no enemy selection in progress")
	}
	if input.Index < 0 || input.Index >= len(sess.candidates) {
		return nil, errors.InvalidArgumentf("candidate index %d out of range", input.Index)
	}

	enemy := sess.candidates[input.Index]
	sess.seq++
	sess.state = StateBattling
	sess.enemy = &enemy
	sess.candidates = nil
	o.logLocked(sess, fmt.Sprintf("%s Lv.%d %s steps forward!", enemy.Icon, enemy.Level, enemy.Name), entities.LogInfo)

	return &ChooseEnemyOutput{Enemy: &enemy}, nil
}

func (o *orchestrator) CancelSeek(_ context.Context, input *CancelSeekInput) (*CancelSeekOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateSelecting {
		return nil, errors.FailedPrecondition("no enemy selection in progress")
	}

	sess.state = StateIdle
	sess.candidates = nil
	return &CancelSeekOutput{}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		o.mu.Unlock()
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateBattling || sess.enemy == nil {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("not in battle")
	}

	dmg := o.damageRoll(sess.stats.Attack, sess.enemy.Defense)
	sess.enemy.HP -= dmg
	o.logLocked(sess, fmt.Sprintf("you hit %s for %d damage", sess.enemy.Name, dmg), entities.LogDamage)

	if sess.enemy.HP <= 0 {
		defeated := *sess.enemy
		o.victoryLocked(sess, &defeated)
		o.mu.Unlock()
		o.payVictory(ctx, input.CharacterID, defeated)
		return &AttackOutput{Damage: dmg, Victory: true}, nil
	}

	o.scheduleCounterLocked(sess)
	o.mu.Unlock()

	return &AttackOutput{Damage: dmg, Victory: false}, nil
}

func (o *orchestrator) UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		o.mu.Unlock()
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateBattling || sess.enemy == nil {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("not in battle")
	}

	useOut, err := o.skills.Use(ctx, &skills.UseInput{
		CharacterID: input.CharacterID,
		SlotIndex:   input.SlotIndex,
		Attack:      sess.stats.Attack,
		Magic:       sess.stats.Magic,
		CurrentMP:   sess.mp,
	})
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if !useOut.Success {
		o.mu.Unlock()
		return &UseSkillOutput{Success: false, Message: useOut.Message}, nil
	}

	sess.mp = max(0, sess.mp-useOut.MPCost)

	// Skill damage ignores enemy defense; the defense factor is already folded
	// into the skill formula's stat scaling.
	dmg := useOut.Damage
	stunned := false
	for _, eff := range useOut.Effects {
		switch eff.Kind {
		case entities.EffectHeal:
			healed := min(eff.Value, sess.stats.HP-sess.hp)
			if healed > 0 {
				sess.hp += healed
				o.logLocked(sess, fmt.Sprintf("%s restores %d HP", useOut.SkillName, healed), entities.LogHeal)
			}
		case entities.EffectDot:
			dmg += eff.Value
		case entities.EffectStun:
			if o.roller.Float64() < eff.Chance {
				stunned = true
			}
		}
	}

	if dmg > 0 {
		sess.enemy.HP -= dmg
		o.logLocked(sess, fmt.Sprintf("%s hits %s for %d damage", useOut.SkillName, sess.enemy.Name, dmg), entities.LogDamage)
	}

	if sess.enemy.HP <= 0 {
		defeated := *sess.enemy
		o.victoryLocked(sess, &defeated)
		o.mu.Unlock()
		o.payVictory(ctx, input.CharacterID, defeated)
		return &UseSkillOutput{Success: true, Damage: dmg, Victory: true}, nil
	}

	if stunned {
		o.logLocked(sess, fmt.Sprintf("%s is stunned and cannot fight back", sess.enemy.Name), entities.LogInfo)
	} else {
		o.scheduleCounterLocked(sess)
	}
	o.mu.Unlock()

	return &UseSkillOutput{Success: true, Damage: dmg, Victory: false}, nil
}

func (o *orchestrator) UseBasicSkill(ctx context.Context, input *UseBasicSkillInput) (*UseBasicSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		o.mu.Unlock()
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateBattling || sess.enemy == nil {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("not in battle")
	}
	if sess.mp < basicSkillMPCost {
		o.logLocked(sess, "not enough MP", entities.LogInfo)
		o.mu.Unlock()
		return &UseBasicSkillOutput{Success: false, Message: "not enough MP"}, nil
	}

	sess.mp -= basicSkillMPCost
	dmg := int(math.Floor(float64(o.damageRoll(sess.stats.Attack, sess.enemy.Defense)) * basicSkillMultiplier))
	sess.enemy.HP -= dmg
	o.logLocked(sess, fmt.Sprintf("your skill hits %s for %d damage", sess.enemy.Name, dmg), entities.LogDamage)

	if sess.enemy.HP <= 0 {
		defeated := *sess.enemy
		o.victoryLocked(sess, &defeated)
		o.mu.Unlock()
		o.payVictory(ctx, input.CharacterID, defeated)
		return &UseBasicSkillOutput{Success: true, Damage: dmg, Victory: true}, nil
	}

	o.scheduleCounterLocked(sess)
	o.mu.Unlock()

	return &UseBasicSkillOutput{Success: true, Damage: dmg, Victory: false}, nil
}

func (o *orchestrator) UseQuickSlot(ctx context.Context, input *UseQuickSlotInput) (*UseQuickSlotOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}

	out, err := o.inventory.UseQuickSlot(ctx, &inventory.UseQuickSlotInput{
		CharacterID: input.CharacterID,
		SlotIndex:   input.SlotIndex,
	})
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return &UseQuickSlotOutput{Success: false, Message: out.Message}, nil
	}

	if out.HealHP > 0 {
		healed := min(out.HealHP, sess.stats.HP-sess.hp)
		sess.hp += healed
		o.logLocked(sess, fmt.Sprintf("recovered %d HP", healed), entities.LogHeal)
	}
	if out.HealMP > 0 {
		restored := min(out.HealMP, sess.stats.MP-sess.mp)
		sess.mp += restored
		o.logLocked(sess, fmt.Sprintf("recovered %d MP", restored), entities.LogHeal)
	}

	return &UseQuickSlotOutput{Success: true, Message: out.Message}, nil
}

func (o *orchestrator) Rest(_ context.Context, input *RestInput) (*RestOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[input.CharacterID]
	if sess == nil {
		return nil, errors.NotFoundf("no active session for character %s", input.CharacterID)
	}
	if sess.state != StateIdle && sess.state != StateVictory {
		return &RestOutput{Success: false, Message: "cannot rest during battle"}, nil
	}

	hpRec := min(int(math.Floor(float64(sess.stats.HP)*restRatio)), sess.stats.HP-sess.hp)
	mpRec := min(int(math.Floor(float64(sess.stats.MP)*restRatio)), sess.stats.MP-sess.mp)
	if hpRec <= 0 && mpRec <= 0 {
		return &RestOutput{Success: false, Message: "already at full strength"}, nil
	}

	sess.hp += max(0, hpRec)
	sess.mp += max(0, mpRec)
	sess.state = StateIdle
	o.logLocked(sess, fmt.Sprintf("rested: +%d HP, +%d MP", max(0, hpRec), max(0, mpRec)), entities.LogHeal)

	return &RestOutput{Success: true, HPRecover: max(0, hpRec), MPRecover: max(0, mpRec)}, nil
}

// victoryLocked flips the session into the victory state and cancels the
// pending counter-attack. Rewards are paid by afterVictory once the lock is
// released, because reward payout can re-enter the orchestrator through the
// quest system.
func (o *orchestrator) victoryLocked(sess *session, enemy *entities.Enemy) {
	sess.seq++
	sess.state = StateVictory
	sess.enemy = nil
	if sess.pending != nil {
		sess.pending.Cancel()
		sess.pending = nil
	}
	o.logLocked(sess, fmt.Sprintf("⚔️ defeated %s!", enemy.Name), entities.LogVictory)
}

// payVictory runs the reward payout. Failures are logged rather than returned:
// the session already shows the victory by the time rewards are paid, so the
// attack that landed the kill must still report it.
func (o *orchestrator) payVictory(ctx context.Context, characterID string, enemy entities.Enemy) {
	if err := o.afterVictory(ctx, characterID, enemy); err != nil {
		slog.WarnContext(ctx, "failed to pay victory rewards",
			"character_id", characterID,
			"enemy", enemy.TemplateID,
			"error", err)
	}
}

func (o *orchestrator) afterVictory(ctx context.Context, characterID string, enemy entities.Enemy) error {
	o.appendLog(characterID, fmt.Sprintf("gained %d EXP and %d gold", enemy.Experience, enemy.GoldReward), entities.LogVictory)

	if _, err := o.inventory.AddGold(ctx, &inventory.AddGoldInput{
		CharacterID: characterID,
		Amount:      enemy.GoldReward,
	}); err != nil {
		return err
	}

	if o.roller.Float64() < data.DiamondDropChance {
		diamonds := 1 + o.roller.Intn(3)
		if _, err := o.inventory.AddDiamond(ctx, &inventory.AddDiamondInput{Amount: diamonds}); err != nil {
			return err
		}
		o.appendLog(characterID, fmt.Sprintf("💎 found %d diamonds!", diamonds), entities.LogVictory)
	}

	if o.roller.Float64() < data.DropChance {
		item := data.LootTable[o.roller.Intn(len(data.LootTable))]
		addOut, err := o.inventory.AddItem(ctx, &inventory.AddItemInput{
			CharacterID: characterID,
			Item:        item,
			Quantity:    1,
			ToAccount:   item.Binding == entities.BindAccount,
		})
		if err != nil {
			return err
		}
		if addOut.Added {
			o.appendLog(characterID, fmt.Sprintf("%s dropped %s", enemy.Name, item.Name), entities.LogVictory)
		} else {
			o.appendLog(characterID, fmt.Sprintf("%s dropped %s, but the bag is full", enemy.Name, item.Name), entities.LogInfo)
		}
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return err
	}
	char := charOut.Character
	char.Progress.EnemiesDefeated++

	if _, err := o.grantExp(ctx, char, enemy.Experience); err != nil {
		return err
	}

	if qt := o.questTracker(); qt != nil {
		if err := qt.RecordKill(ctx, characterID, enemy.TemplateID, enemy.Name); err != nil {
			slog.WarnContext(ctx, "failed to record kill for quests",
				"character_id", characterID,
				"enemy", enemy.TemplateID,
				"error", err)
		}
	}

	return nil
}

// scheduleCounterLocked arms the enemy counter-attack timer. The captured seq
// invalidates the callback if the battle ends or restarts first.
func (o *orchestrator) scheduleCounterLocked(sess *session) {
	if sess.pending != nil {
		sess.pending.Cancel()
	}
	characterID, seq := sess.characterID, sess.seq
	sess.pending = o.scheduler.After(counterDelay, func() { o.enemyCounter(characterID, seq) })
}

func (o *orchestrator) enemyCounter(characterID string, seq int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[characterID]
	if sess == nil || sess.seq != seq || sess.state != StateBattling || sess.enemy == nil {
		return
	}

	dmg := o.damageRoll(sess.enemy.Attack, sess.stats.Defense)
	sess.hp -= dmg
	o.logLocked(sess, fmt.Sprintf("%s hits you for %d damage", sess.enemy.Name, dmg), entities.LogDamage)

	if sess.hp <= 0 {
		sess.hp = 0
		o.defeatLocked(sess)
	}
}

func (o *orchestrator) defeatLocked(sess *session) {
	sess.seq++
	sess.state = StateDefeat
	sess.enemy = nil
	if sess.pending != nil {
		sess.pending.Cancel()
		sess.pending = nil
	}
	o.logLocked(sess, "💀 you have been defeated...", entities.LogDefeat)

	characterID, seq := sess.characterID, sess.seq
	sess.pending = o.scheduler.After(respawnDelay, func() { o.respawn(characterID, seq) })
}

func (o *orchestrator) respawn(characterID string, seq int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[characterID]
	if sess == nil || sess.seq != seq || sess.state != StateDefeat {
		return
	}

	sess.hp = max(1, int(math.Floor(float64(sess.stats.HP)*respawnRatio)))
	sess.mp = int(math.Floor(float64(sess.stats.MP) * respawnRatio))
	sess.state = StateIdle
	o.logLocked(sess, "you come to your senses and stand back up", entities.LogInfo)
}

func (o *orchestrator) regenTick(characterID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	sess := o.sessions[characterID]
	if sess == nil || sess.mp >= sess.stats.MP {
		return
	}

	regen := min(2+o.roller.Intn(4), sess.stats.MP-sess.mp)
	sess.mp += regen
	if o.roller.Float64() < mpRegenLogOdds {
		o.logLocked(sess, fmt.Sprintf("recovered %d MP", regen), entities.LogHeal)
	}
}

// questTarget rolls whether to steer this encounter toward an outstanding
// kill objective, resolving the target by template id and then by name.
func (o *orchestrator) questTarget(ctx context.Context, characterID string) *entities.EnemyTemplate {
	qt := o.questTracker()
	if qt == nil || o.roller.Float64() >= questForceChance {
		return nil
	}

	targets, err := qt.ActiveKillTargets(ctx, characterID)
	if err != nil {
		slog.WarnContext(ctx, "failed to list quest kill targets",
			"character_id", characterID,
			"error", err)
		return nil
	}
	if len(targets) == 0 {
		return nil
	}

	target := targets[o.roller.Intn(len(targets))]
	if tmpl := data.EnemyByID(target); tmpl != nil {
		return tmpl
	}
	return data.EnemyByName(target)
}

// generateEnemy scales a template to the neighborhood of the character level.
// Characters below the tier threshold only meet low-tier enemies; above it
// the pool is weighted toward the high tier.
func (o *orchestrator) generateEnemy(characterLevel int, forced *entities.EnemyTemplate) entities.Enemy {
	tmpl := forced
	if tmpl == nil {
		tier := entities.TierLow
		if characterLevel >= highTierLevel && o.roller.Float64() < highTierWeight {
			tier = entities.TierHigh
		}
		pool := data.EnemiesByTier(tier)
		tmpl = &pool[o.roller.Intn(len(pool))]
	}

	level := max(1, characterLevel+o.roller.Intn(3)-1)
	maxHP := int(math.Floor(float64(tmpl.BaseHP) * (1 + float64(level-1)*0.2)))
	attack := int(math.Floor(float64(tmpl.BaseAttack) * (1 + float64(level-1)*0.15)))
	defense := int(math.Floor(float64(tmpl.BaseDefense) * (1 + float64(level-1)*0.1)))
	exp := int(math.Floor(20 * float64(level) * (1 + float64(level)*0.1)))
	gold := int(math.Floor(10 * float64(level) * (1 + o.roller.Float64()*0.5)))

	return entities.Enemy{
		ID:         o.idgen.Generate(),
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Icon:       tmpl.Icon,
		Level:      level,
		HP:         maxHP,
		MaxHP:      maxHP,
		Attack:     attack,
		Defense:    defense,
		Experience: exp,
		GoldReward: gold,
	}
}

// damageRoll applies the basic damage formula: attack minus defense, floored
// at 1, with a multiplier rolled in [0.85, 1.15).
func (o *orchestrator) damageRoll(attack, defense int) int {
	base := max(1, attack-defense)
	return int(math.Floor(float64(base) * (0.85 + o.roller.Float64()*0.3)))
}

// logLocked prepends a battle log line, trimming to the newest logLimit
// entries. Callers hold the orchestrator mutex.
func (o *orchestrator) logLocked(sess *session, message string, t entities.LogType) {
	entry := entities.BattleLog{
		ID:        o.idgen.Generate(),
		Timestamp: o.clock.Now().UnixMilli(),
		Message:   message,
		Type:      t,
	}
	sess.logs = append([]entities.BattleLog{entry}, sess.logs...)
	if len(sess.logs) > logLimit {
		sess.logs = sess.logs[:logLimit]
	}
}

// appendLog is logLocked for callers that do not hold the mutex. Missing
// sessions are ignored.
func (o *orchestrator) appendLog(characterID, message string, t entities.LogType) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sess := o.sessions[characterID]; sess != nil {
		o.logLocked(sess, message, t)
	}
}

func (s *session) snapshot() *Snapshot {
	snap := &Snapshot{
		CharacterID: s.characterID,
		State:       s.state,
		CurrentHP:   s.hp,
		CurrentMP:   s.mp,
		Stats:       s.stats,
	}
	if s.enemy != nil {
		enemy := *s.enemy
		snap.Enemy = &enemy
	}
	if len(s.candidates) > 0 {
		snap.Candidates = append([]entities.Enemy(nil), s.candidates...)
	}
	if len(s.logs) > 0 {
		snap.Logs = append([]entities.BattleLog(nil), s.logs...)
	}
	return snap
}
