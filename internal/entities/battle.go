package entities

// EnemyTier splits the template pool by character level
type EnemyTier string

// Tiers
const (
	TierLow  EnemyTier = "low"
	TierHigh EnemyTier = "high"
)

// EnemyTemplate is an immutable enemy archetype before level scaling
type EnemyTemplate struct {
	ID          string
	Name        string
	Icon        string
	BaseHP      int
	BaseAttack  int
	BaseDefense int
	Tier        EnemyTier
}

// Enemy is an ephemeral scaled encounter opponent. It is never persisted and
// lives only for the duration of a battle.
type Enemy struct {
	ID         string
	TemplateID string
	Name       string
	Icon       string
	Level      int
	HP         int
	MaxHP      int
	Attack     int
	Defense    int
	Experience int
	GoldReward int
}

// LogType classifies battle log entries
type LogType string

// Log entry types
const (
	LogInfo    LogType = "info"
	LogDamage  LogType = "damage"
	LogHeal    LogType = "heal"
	LogVictory LogType = "victory"
	LogDefeat  LogType = "defeat"
)

// BattleLog is a single battle log line
type BattleLog struct {
	ID        string
	Timestamp int64
	Message   string
	Type      LogType
}
