package entities

// QuestType classifies quests
type QuestType string

// Quest types
const (
	QuestKill    QuestType = "kill"
	QuestCollect QuestType = "collect"
	QuestBoss    QuestType = "boss"
)

// QuestStatus is the lifecycle state of an accepted quest
type QuestStatus string

// Quest statuses
const (
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
)

// QuestObjective is one countable condition of a quest
type QuestObjective struct {
	Type        QuestType
	TargetID    string
	TargetName  string
	Quantity    int
	Description string
}

// ItemGrant pairs an item id with a quantity in a reward list
type ItemGrant struct {
	ItemID   string
	Quantity int
}

// QuestRewards is what completing a quest (or clearing a map) pays out
type QuestRewards struct {
	Experience int
	Gold       int
	Items      []ItemGrant
}

// Quest is an immutable quest template
type Quest struct {
	ID             string
	Name           string
	Description    string
	Type           QuestType
	Objectives     []QuestObjective
	Rewards        QuestRewards
	RequiredLevel  int
	RequiredQuests []string
}

// PlayerQuest is a mutable per-character progress record. Progress is keyed
// by objective target id.
type PlayerQuest struct {
	QuestID    string
	Status     QuestStatus
	Progress   map[string]int
	AcceptedAt int64
}

// MapProgress is the per-character unlock state of one map
type MapProgress struct {
	MapID           string
	Unlocked        bool
	Completed       bool
	CompletionCount int
}

// NPC is a static map inhabitant
type NPC struct {
	ID          string
	Name        string
	Description string
	Type        string
	Icon        string
	Dialogues   []string
	Quests      []string
}

// GameMap is an immutable map template, gated by level and quest
// prerequisites
type GameMap struct {
	ID             string
	Name           string
	Description    string
	Theme          string
	Difficulty     string
	Icon           string
	RequiredLevel  int
	RequiredQuests []string
	BossID         string
	NPCs           []NPC
	Monsters       []string
	Rewards        QuestRewards
}
