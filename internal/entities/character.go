// Package entities defines the persisted data model for the adventure engine.
package entities

// ClassType identifies a playable class
type ClassType string

// Playable classes
const (
	ClassWarrior ClassType = "WARRIOR"
	ClassMage    ClassType = "MAGE"
	ClassRogue   ClassType = "ROGUE"
	ClassCleric  ClassType = "CLERIC"
)

// Stats holds the six core character stats. It doubles as an equipment bonus
// block, where each field is a delta instead of a base value.
type Stats struct {
	HP      int
	MP      int
	Attack  int
	Defense int
	Magic   int
	Speed   int
}

// Add returns the field-wise sum of s and o
func (s Stats) Add(o Stats) Stats {
	return Stats{
		HP:      s.HP + o.HP,
		MP:      s.MP + o.MP,
		Attack:  s.Attack + o.Attack,
		Defense: s.Defense + o.Defense,
		Magic:   s.Magic + o.Magic,
		Speed:   s.Speed + o.Speed,
	}
}

// GameProgress tracks coarse per-character progression counters
type GameProgress struct {
	CurrentLocation string
	CompletedQuests []string
	EnemiesDefeated int
}

// Character is a persisted playable character. Base stats exclude equipment
// bonuses; current HP/MP are session state and live in the battle engine,
// not here.
type Character struct {
	ID         string
	Name       string
	Class      ClassType
	ClassName  string
	Icon       string
	Level      int
	Experience int
	Stats      Stats
	Progress   GameProgress
	CreatedAt  int64
}

// CharacterCurrency is the per-character gold ledger
type CharacterCurrency struct {
	CharacterID string
	Gold        int
}

// AccountCurrency is the account-wide diamond ledger shared by all characters
type AccountCurrency struct {
	Diamond int
}
