package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/a602017206/WordRPGGame/internal/data"
	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	characterrepo "github.com/a602017206/WordRPGGame/internal/repositories/character"
	progressrepo "github.com/a602017206/WordRPGGame/internal/repositories/progress"
)

// Config holds the orchestrator dependencies
type Config struct {
	ProgressRepo  progressrepo.Repository
	CharacterRepo characterrepo.Repository
	Experience    ExperienceGranter
	Items         ItemGranter
	Gold          GoldLedger
	Diamonds      DiamondLedger
	Clock         clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.ProgressRepo == nil {
		vb.RequiredField("progress_repo")
	}
	if cfg.CharacterRepo == nil {
		vb.RequiredField("character_repo")
	}
	if cfg.Experience == nil {
		vb.RequiredField("experience_granter")
	}
	if cfg.Items == nil {
		vb.RequiredField("item_granter")
	}
	if cfg.Gold == nil {
		vb.RequiredField("gold_ledger")
	}
	if cfg.Diamonds == nil {
		vb.RequiredField("diamond_ledger")
	}
	return vb.Build()
}

type orchestrator struct {
	progressRepo  progressrepo.Repository
	characterRepo characterrepo.Repository
	experience    ExperienceGranter
	items         ItemGranter
	gold          GoldLedger
	diamonds      DiamondLedger
	clock         clock.Clock
}

// NewOrchestrator creates a quest orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		progressRepo:  cfg.ProgressRepo,
		characterRepo: cfg.CharacterRepo,
		experience:    cfg.Experience,
		items:         cfg.Items,
		gold:          cfg.Gold,
		diamonds:      cfg.Diamonds,
		clock:         c,
	}, nil
}

func (o *orchestrator) ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	questsOut, err := o.progressRepo.GetQuests(ctx, progressrepo.GetQuestsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	active := questsOut.Quests

	accepted := make(map[string]bool, len(active))
	for _, pq := range active {
		accepted[pq.QuestID] = true
	}
	completed := make(map[string]bool, len(char.Progress.CompletedQuests))
	for _, id := range char.Progress.CompletedQuests {
		completed[id] = true
	}

	var available []entities.Quest
	for _, tmpl := range data.Quests {
		if accepted[tmpl.ID] || completed[tmpl.ID] {
			continue
		}
		if char.Level < tmpl.RequiredLevel {
			continue
		}
		if !allCompleted(tmpl.RequiredQuests, completed) {
			continue
		}
		available = append(available, tmpl)
	}

	return &ListQuestsOutput{Active: active, Available: available}, nil
}

func allCompleted(required []string, completed map[string]bool) bool {
	for _, id := range required {
		if !completed[id] {
			return false
		}
	}
	return true
}

func (o *orchestrator) AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	tmpl := data.QuestByID(input.QuestID)
	if tmpl == nil {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	questsOut, err := o.progressRepo.GetQuests(ctx, progressrepo.GetQuestsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	quests := questsOut.Quests

	for _, pq := range quests {
		if pq.QuestID == input.QuestID {
			return &AcceptQuestOutput{Success: true, Message: "quest already accepted"}, nil
		}
	}

	completed := make(map[string]bool, len(char.Progress.CompletedQuests))
	for _, id := range char.Progress.CompletedQuests {
		completed[id] = true
	}
	if completed[input.QuestID] {
		return &AcceptQuestOutput{Success: false, Message: "quest already completed"}, nil
	}
	if char.Level < tmpl.RequiredLevel {
		return &AcceptQuestOutput{
			Success: false,
			Message: fmt.Sprintf("level %d required", tmpl.RequiredLevel),
		}, nil
	}
	if !allCompleted(tmpl.RequiredQuests, completed) {
		return &AcceptQuestOutput{Success: false, Message: "prerequisite quests not completed"}, nil
	}

	quests = append(quests, &entities.PlayerQuest{
		QuestID:    input.QuestID,
		Status:     entities.QuestInProgress,
		Progress:   make(map[string]int),
		AcceptedAt: o.clock.Now().UnixMilli(),
	})

	if _, err := o.progressRepo.SaveQuests(ctx, progressrepo.SaveQuestsInput{
		CharacterID: input.CharacterID,
		Quests:      quests,
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "quest accepted",
		"character_id", input.CharacterID,
		"quest_id", input.QuestID)

	return &AcceptQuestOutput{Success: true, Message: fmt.Sprintf("accepted %s", tmpl.Name)}, nil
}

func objectiveMatchesKill(obj entities.QuestObjective, templateID, enemyName string) bool {
	if obj.Type != entities.QuestKill && obj.Type != entities.QuestBoss {
		return false
	}
	if obj.TargetID == templateID {
		return true
	}
	if obj.TargetName == "" || enemyName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(enemyName), strings.ToLower(obj.TargetName))
}

func objectiveMatchesCollect(obj entities.QuestObjective, item entities.Item) bool {
	if obj.Type != entities.QuestCollect {
		return false
	}
	if obj.TargetID == item.ID {
		return true
	}
	if obj.TargetName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(item.Name), strings.ToLower(obj.TargetName))
}

func (o *orchestrator) RecordKill(ctx context.Context, input *RecordKillInput) (*RecordKillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	return o.advance(ctx, input.CharacterID, func(tmpl *entities.Quest, pq *entities.PlayerQuest) bool {
		advanced := false
		for _, obj := range tmpl.Objectives {
			if !objectiveMatchesKill(obj, input.TemplateID, input.EnemyName) {
				continue
			}
			if pq.Progress[obj.TargetID] < obj.Quantity {
				pq.Progress[obj.TargetID]++
				advanced = true
			}
		}
		return advanced
	})
}

func (o *orchestrator) RecordCollect(ctx context.Context, input *RecordCollectInput) (*RecordCollectOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	out, err := o.advance(ctx, input.CharacterID, func(tmpl *entities.Quest, pq *entities.PlayerQuest) bool {
		advanced := false
		for _, obj := range tmpl.Objectives {
			if !objectiveMatchesCollect(obj, input.Item) {
				continue
			}
			if pq.Progress[obj.TargetID] < obj.Quantity {
				pq.Progress[obj.TargetID] = min(pq.Progress[obj.TargetID]+input.Quantity, obj.Quantity)
				advanced = true
			}
		}
		return advanced
	})
	if err != nil {
		return nil, err
	}
	return &RecordCollectOutput{CompletedQuests: out.CompletedQuests}, nil
}

// advance applies fn to every in-progress quest, completes quests whose
// objectives are all met and pays out their rewards.
func (o *orchestrator) advance(
	ctx context.Context,
	characterID string,
	fn func(*entities.Quest, *entities.PlayerQuest) bool,
) (*RecordKillOutput, error) {
	questsOut, err := o.progressRepo.GetQuests(ctx, progressrepo.GetQuestsInput{CharacterID: characterID})
	if err != nil {
		return nil, err
	}
	quests := questsOut.Quests

	changed := false
	var newlyCompleted []*entities.Quest
	for _, pq := range quests {
		if pq.Status != entities.QuestInProgress {
			continue
		}
		tmpl := data.QuestByID(pq.QuestID)
		if tmpl == nil {
			continue
		}
		if pq.Progress == nil {
			pq.Progress = make(map[string]int)
		}
		if !fn(tmpl, pq) {
			continue
		}
		changed = true

		if objectivesMet(tmpl, pq) {
			pq.Status = entities.QuestCompleted
			newlyCompleted = append(newlyCompleted, tmpl)
		}
	}

	if !changed {
		return &RecordKillOutput{}, nil
	}

	if _, err := o.progressRepo.SaveQuests(ctx, progressrepo.SaveQuestsInput{
		CharacterID: characterID,
		Quests:      quests,
	}); err != nil {
		return nil, err
	}

	out := &RecordKillOutput{}
	for _, tmpl := range newlyCompleted {
		if err := o.completeQuest(ctx, characterID, tmpl); err != nil {
			return nil, err
		}
		out.CompletedQuests = append(out.CompletedQuests, tmpl.ID)
	}

	return out, nil
}

func objectivesMet(tmpl *entities.Quest, pq *entities.PlayerQuest) bool {
	for _, obj := range tmpl.Objectives {
		if pq.Progress[obj.TargetID] < obj.Quantity {
			return false
		}
	}
	return true
}

func (o *orchestrator) completeQuest(ctx context.Context, characterID string, tmpl *entities.Quest) error {
	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return err
	}
	char := charOut.Character
	char.Progress.CompletedQuests = append(char.Progress.CompletedQuests, tmpl.ID)

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char}); err != nil {
		return err
	}

	if err := o.payRewards(ctx, characterID, tmpl.Rewards); err != nil {
		return err
	}

	slog.InfoContext(ctx, "quest completed",
		"character_id", characterID,
		"quest_id", tmpl.ID,
		"reward_experience", tmpl.Rewards.Experience,
		"reward_gold", tmpl.Rewards.Gold)

	// Completing a quest may satisfy a map gate
	if _, err := o.UnlockMaps(ctx, &UnlockMapsInput{CharacterID: characterID}); err != nil {
		return err
	}

	return nil
}

func (o *orchestrator) payRewards(ctx context.Context, characterID string, rewards entities.QuestRewards) error {
	if rewards.Gold > 0 {
		if err := o.gold.AddGold(ctx, characterID, rewards.Gold); err != nil {
			return err
		}
	}

	for _, grant := range rewards.Items {
		if grant.ItemID == data.ItemDiamond {
			if err := o.diamonds.AddDiamond(ctx, grant.Quantity); err != nil {
				return err
			}
			continue
		}

		var item *entities.Item
		if tmpl := data.ItemByID(grant.ItemID); tmpl != nil {
			item = tmpl
		} else if eq := data.EquipmentByID(grant.ItemID); eq != nil {
			item = &eq.Item
		}
		if item == nil {
			slog.WarnContext(ctx, "reward item not in catalog, skipping",
				"item_id", grant.ItemID)
			continue
		}
		if err := o.items.GrantItem(ctx, characterID, *item, grant.Quantity); err != nil {
			return err
		}
	}

	// Experience goes last so level-up unlock scans see the other rewards
	if rewards.Experience > 0 {
		if err := o.experience.GrantExperience(ctx, characterID, rewards.Experience); err != nil {
			return err
		}
	}

	return nil
}

func (o *orchestrator) ActiveKillTargets(ctx context.Context, input *ActiveKillTargetsInput) (*ActiveKillTargetsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	questsOut, err := o.progressRepo.GetQuests(ctx, progressrepo.GetQuestsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, pq := range questsOut.Quests {
		if pq.Status != entities.QuestInProgress {
			continue
		}
		tmpl := data.QuestByID(pq.QuestID)
		if tmpl == nil {
			continue
		}
		for _, obj := range tmpl.Objectives {
			if obj.Type != entities.QuestKill && obj.Type != entities.QuestBoss {
				continue
			}
			if pq.Progress[obj.TargetID] < obj.Quantity {
				targets = append(targets, obj.TargetID)
			}
		}
	}

	return &ActiveKillTargetsOutput{TargetIDs: targets}, nil
}

func (o *orchestrator) GetMaps(ctx context.Context, input *GetMapsInput) (*GetMapsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	mapsOut, err := o.progressRepo.GetMaps(ctx, progressrepo.GetMapsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.MapProgress, len(mapsOut.Maps))
	for _, mp := range mapsOut.Maps {
		byID[mp.MapID] = mp
	}

	out := &GetMapsOutput{}
	for _, tmpl := range data.Maps {
		status := MapStatus{Map: tmpl}
		if mp := byID[tmpl.ID]; mp != nil {
			status.Unlocked = mp.Unlocked
			status.Completed = mp.Completed
			status.CompletionCount = mp.CompletionCount
		}
		out.Maps = append(out.Maps, status)
	}

	return out, nil
}

func (o *orchestrator) UnlockMaps(ctx context.Context, input *UnlockMapsInput) (*UnlockMapsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	completed := make(map[string]bool, len(char.Progress.CompletedQuests))
	for _, id := range char.Progress.CompletedQuests {
		completed[id] = true
	}

	mapsOut, err := o.progressRepo.GetMaps(ctx, progressrepo.GetMapsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	maps := mapsOut.Maps
	byID := make(map[string]*entities.MapProgress, len(maps))
	for _, mp := range maps {
		byID[mp.MapID] = mp
	}

	out := &UnlockMapsOutput{}
	for _, tmpl := range data.Maps {
		mp := byID[tmpl.ID]
		if mp != nil && mp.Unlocked {
			continue
		}
		if char.Level < tmpl.RequiredLevel {
			continue
		}
		if !allCompleted(tmpl.RequiredQuests, completed) {
			continue
		}

		if mp == nil {
			mp = &entities.MapProgress{MapID: tmpl.ID}
			maps = append(maps, mp)
		}
		mp.Unlocked = true
		out.Unlocked = append(out.Unlocked, tmpl.ID)
	}

	if len(out.Unlocked) == 0 {
		return out, nil
	}

	if _, err := o.progressRepo.SaveMaps(ctx, progressrepo.SaveMapsInput{
		CharacterID: input.CharacterID,
		Maps:        maps,
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "maps unlocked",
		"character_id", input.CharacterID,
		"map_ids", out.Unlocked)

	return out, nil
}

func (o *orchestrator) CompleteMap(ctx context.Context, input *CompleteMapInput) (*CompleteMapOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	tmpl := data.MapByID(input.MapID)
	if tmpl == nil {
		return nil, errors.NotFoundf("map %s not found", input.MapID)
	}

	mapsOut, err := o.progressRepo.GetMaps(ctx, progressrepo.GetMapsInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	maps := mapsOut.Maps

	var mp *entities.MapProgress
	for _, m := range maps {
		if m.MapID == input.MapID {
			mp = m
			break
		}
	}
	if mp == nil || !mp.Unlocked {
		return &CompleteMapOutput{Success: false, Message: "map is locked"}, nil
	}

	mp.Completed = true
	mp.CompletionCount++

	if _, err := o.progressRepo.SaveMaps(ctx, progressrepo.SaveMapsInput{
		CharacterID: input.CharacterID,
		Maps:        maps,
	}); err != nil {
		return nil, err
	}

	if err := o.payRewards(ctx, input.CharacterID, tmpl.Rewards); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "map completed",
		"character_id", input.CharacterID,
		"map_id", input.MapID,
		"completion_count", mp.CompletionCount)

	return &CompleteMapOutput{
		Success: true,
		Message: fmt.Sprintf("cleared %s (x%d)", tmpl.Name, mp.CompletionCount),
	}, nil
}
