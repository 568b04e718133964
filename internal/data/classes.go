// Package data holds the static game catalogs: classes, enemies, items,
// equipment, skills, quests and maps. Catalog entries are templates; callers
// copy them before mutating.
package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// ClassDefinition describes a playable class and its starting stats
type ClassDefinition struct {
	Type      entities.ClassType
	Name      string
	Icon      string
	BaseStats entities.Stats
}

// Classes lists all playable classes
var Classes = []ClassDefinition{
	{
		Type: entities.ClassWarrior,
		Name: "Warrior",
		Icon: "⚔️",
		BaseStats: entities.Stats{
			HP: 120, MP: 30, Attack: 15, Defense: 12, Magic: 5, Speed: 8,
		},
	},
	{
		Type: entities.ClassMage,
		Name: "Mage",
		Icon: "🔮",
		BaseStats: entities.Stats{
			HP: 70, MP: 100, Attack: 6, Defense: 5, Magic: 18, Speed: 10,
		},
	},
	{
		Type: entities.ClassRogue,
		Name: "Rogue",
		Icon: "🗡️",
		BaseStats: entities.Stats{
			HP: 90, MP: 50, Attack: 12, Defense: 8, Magic: 8, Speed: 16,
		},
	},
	{
		Type: entities.ClassCleric,
		Name: "Cleric",
		Icon: "✨",
		BaseStats: entities.Stats{
			HP: 100, MP: 80, Attack: 8, Defense: 10, Magic: 14, Speed: 9,
		},
	},
}

// ClassByType returns the class definition for t, or nil if unknown
func ClassByType(t entities.ClassType) *ClassDefinition {
	for i := range Classes {
		if Classes[i].Type == t {
			return &Classes[i]
		}
	}
	return nil
}
