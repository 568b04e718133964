package adventure

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/equipment"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/inventory"
	"github.com/a602017206/WordRPGGame/internal/orchestrators/skills"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	"github.com/a602017206/WordRPGGame/internal/pkg/idgen"
	"github.com/a602017206/WordRPGGame/internal/pkg/rng"
	"github.com/a602017206/WordRPGGame/internal/pkg/scheduler"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
)

// Config holds the orchestrator dependencies
type Config struct {
	CharacterRepo characterrepo.Repository
	Inventory     inventory.Service
	Equipment     equipment.Service
	Skills        skills.Service
	Clock         clock.Clock
	IDGen         idgen.Generator
	Roller        rng.Roller
	Scheduler     scheduler.Scheduler
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.CharacterRepo == nil {
		vb.RequiredField("character_repo")
	}
	if cfg.Inventory == nil {
		vb.RequiredField("inventory")
	}
	if cfg.Equipment == nil {
		vb.RequiredField("equipment")
	}
	if cfg.Skills == nil {
		vb.RequiredField("skills")
	}
	if cfg.Scheduler == nil {
		vb.RequiredField("scheduler")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	inventory     inventory.Service
	equipment     equipment.Service
	skills        skills.Service
	clock         clock.Clock
	idgen         idgen.Generator
	roller        rng.Roller
	scheduler     scheduler.Scheduler

	mu       sync.Mutex
	sessions map[string]*session
	quest    QuestTracker
}

// NewOrchestrator creates an adventure orchestrator
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
		gen = idgen.NewUUID("char")
	}
	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewSeeded(c.Now().UnixNano())
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		inventory:     cfg.Inventory,
		equipment:     cfg.Equipment,
		skills:        cfg.Skills,
		clock:         c,
		idgen:         gen,
		roller:        roller,
		scheduler:     cfg.Scheduler,
		sessions:      make(map[string]*session),
	}, nil
}

func (o *orchestrator) SetQuestTracker(qt QuestTracker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quest = qt
}

func (o *orchestrator) questTracker() QuestTracker {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.quest
}

// ExpNeeded returns the experience required to advance from the given level
func ExpNeeded(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("name cannot be empty")
	}

	class := data.ClassByType(input.Class)
	if class == nil {
		return nil, errors.InvalidArgumentf("unknown class %q", input.Class)
	}

	char := &entities.Character{
		ID:        o.idgen.Generate(),
		Name:      input.Name,
		Class:     class.Type,
		ClassName: class.Name,
		Icon:      class.Icon,
		Level:     1,
		Stats:     class.BaseStats,
		CreatedAt: o.clock.Now().UnixMilli(),
	}

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, err
	}

	if _, err := o.skills.Initialize(ctx, &skills.InitializeInput{
		CharacterID: char.ID,
		Class:       char.Class,
	}); err != nil {
		return nil, err
	}

	if qt := o.questTracker(); qt != nil {
		if err := qt.UnlockMaps(ctx, char.ID); err != nil {
			return nil, err
		}
	}

	if _, err := o.characterRepo.SetSelected(ctx, characterrepo.SetSelectedInput{CharacterID: char.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", char.ID,
		"name", char.Name,
		"class", string(char.Class))

	return &CreateCharacterOutput{Character: char}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, _ *ListCharactersInput) (*ListCharactersOutput, error) {
	listOut, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	selOut, err := o.characterRepo.GetSelected(ctx, characterrepo.GetSelectedInput{})
	if err != nil {
		return nil, err
	}

	return &ListCharactersOutput{Characters: listOut.Characters, SelectedID: selOut.CharacterID}, nil
}

func (o *orchestrator) SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}
	if _, err := o.characterRepo.SetSelected(ctx, characterrepo.SetSelectedInput{CharacterID: input.CharacterID}); err != nil {
		return nil, err
	}

	return &SelectCharacterOutput{}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	if _, err := o.EndSession(ctx, &EndSessionInput{CharacterID: input.CharacterID}); err != nil {
		return nil, err
	}
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) GrantExperience(ctx context.Context, input *GrantExperienceInput) (*GrantExperienceOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	levels, err := o.grantExp(ctx, char, input.Amount)
	if err != nil {
		return nil, err
	}

	return &GrantExperienceOutput{LevelsGained: levels, NewLevel: char.Level}, nil
}

// grantExp credits experience to an already-loaded character, runs the
// level-up loop, persists the result and refreshes any live session.
func (o *orchestrator) grantExp(ctx context.Context, char *entities.Character, amount int) (int, error) {
	char.Experience += amount

	levels := 0
	for char.Experience >= ExpNeeded(char.Level) {
		char.Experience -= ExpNeeded(char.Level)
		char.Level++
		levels++

		gain := entities.Stats{
			HP:      10 + o.roller.Intn(5),
			MP:      8 + o.roller.Intn(4),
			Attack:  2 + o.roller.Intn(2),
			Defense: 2 + o.roller.Intn(2),
			Magic:   2 + o.roller.Intn(2),
			Speed:   1 + o.roller.Intn(2),
		}
		char.Stats = char.Stats.Add(gain)

		o.appendLog(char.ID, fmt.Sprintf("🎉 level up! now level %d", char.Level), entities.LogVictory)
		o.appendLog(char.ID, fmt.Sprintf(
			"stats up: HP+%d MP+%d ATK+%d DEF+%d MAG+%d SPD+%d",
			gain.HP, gain.MP, gain.Attack, gain.Defense, gain.Magic, gain.Speed,
		), entities.LogInfo)
	}

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return 0, err
	}

	if levels > 0 {
		if err := o.refreshSessionStats(ctx, char, true); err != nil {
			return 0, err
		}
		if qt := o.questTracker(); qt != nil {
			if err := qt.UnlockMaps(ctx, char.ID); err != nil {
				return 0, err
			}
		}
		slog.InfoContext(ctx, "character leveled up",
			"character_id", char.ID,
			"new_level", char.Level,
			"levels_gained", levels)
	}

	return levels, nil
}

// refreshSessionStats recomputes a live session's effective stats after a
// stat change. Level-ups also refill HP and MP.
func (o *orchestrator) refreshSessionStats(ctx context.Context, char *entities.Character, refill bool) error {
	o.mu.Lock()
	sess := o.sessions[char.ID]
	o.mu.Unlock()
	if sess == nil {
		return nil
	}

	bonusOut, err := o.equipment.GetBonus(ctx, &equipment.GetBonusInput{CharacterID: char.ID})
	if err != nil {
		return err
	}
	effective := char.Stats.Add(bonusOut.Bonus)

	o.mu.Lock()
	defer o.mu.Unlock()
	if sess = o.sessions[char.ID]; sess == nil {
		return nil
	}
	sess.level = char.Level
	sess.stats = effective
	if refill {
		sess.hp = effective.HP
		sess.mp = effective.MP
	} else {
		sess.hp = min(sess.hp, effective.HP)
		sess.mp = min(sess.mp, effective.MP)
	}

	return nil
}
