package data

import (
	"strings"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// Enemies lists all enemy archetypes. Low-tier templates serve characters of
// any level; high-tier templates join the pool at character level 8 and above.
var Enemies = []entities.EnemyTemplate{
	{ID: "enemy_slime", Name: "Slime", Icon: "🟢", BaseHP: 30, BaseAttack: 3, BaseDefense: 1, Tier: entities.TierLow},
	{ID: "enemy_goblin", Name: "Goblin", Icon: "👺", BaseHP: 40, BaseAttack: 5, BaseDefense: 2, Tier: entities.TierLow},
	{ID: "enemy_skeleton_warrior", Name: "Skeleton Warrior", Icon: "💀", BaseHP: 50, BaseAttack: 7, BaseDefense: 3, Tier: entities.TierLow},
	{ID: "enemy_wolf", Name: "Wild Wolf", Icon: "🐺", BaseHP: 45, BaseAttack: 6, BaseDefense: 2, Tier: entities.TierLow},
	{ID: "enemy_spider", Name: "Giant Spider", Icon: "🕷️", BaseHP: 55, BaseAttack: 8, BaseDefense: 4, Tier: entities.TierLow},
	{ID: "enemy_demon", Name: "Demon", Icon: "😈", BaseHP: 70, BaseAttack: 10, BaseDefense: 5, Tier: entities.TierLow},

	{ID: "enemy_sand_scorpion", Name: "Sand Scorpion", Icon: "🦂", BaseHP: 80, BaseAttack: 12, BaseDefense: 6, Tier: entities.TierHigh},
	{ID: "enemy_desert_bandit", Name: "Desert Bandit", Icon: "🏴‍☠️", BaseHP: 90, BaseAttack: 14, BaseDefense: 7, Tier: entities.TierHigh},
	{ID: "enemy_mummy", Name: "Mummy", Icon: "🧟", BaseHP: 100, BaseAttack: 13, BaseDefense: 8, Tier: entities.TierHigh},
	{ID: "enemy_ice_wolf", Name: "Ice Wolf", Icon: "🐺", BaseHP: 110, BaseAttack: 16, BaseDefense: 9, Tier: entities.TierHigh},
	{ID: "enemy_snow_golem", Name: "Snow Golem", Icon: "⛄", BaseHP: 130, BaseAttack: 15, BaseDefense: 12, Tier: entities.TierHigh},
	{ID: "enemy_frost_elemental", Name: "Frost Elemental", Icon: "❄️", BaseHP: 120, BaseAttack: 18, BaseDefense: 10, Tier: entities.TierHigh},

	{ID: "enemy_ancient_treant", Name: "Ancient Treant", Icon: "🌳", BaseHP: 200, BaseAttack: 15, BaseDefense: 10, Tier: entities.TierHigh},
	{ID: "enemy_desert_scorpion_king", Name: "Scorpion King", Icon: "🦂", BaseHP: 350, BaseAttack: 22, BaseDefense: 14, Tier: entities.TierHigh},
	{ID: "enemy_ice_dragon", Name: "Ice Dragon", Icon: "🐉", BaseHP: 600, BaseAttack: 30, BaseDefense: 20, Tier: entities.TierHigh},
}

// EnemyByID returns the template with the given id, or nil
func EnemyByID(id string) *entities.EnemyTemplate {
	for i := range Enemies {
		if Enemies[i].ID == id {
			return &Enemies[i]
		}
	}
	return nil
}

// EnemyByName returns the first template whose name matches exactly, falling
// back to case-insensitive substring match. Returns nil when nothing matches.
func EnemyByName(name string) *entities.EnemyTemplate {
	for i := range Enemies {
		if Enemies[i].Name == name {
			return &Enemies[i]
		}
	}
	lower := strings.ToLower(name)
	for i := range Enemies {
		if strings.Contains(strings.ToLower(Enemies[i].Name), lower) {
			return &Enemies[i]
		}
	}
	return nil
}

// EnemiesByTier returns all templates of the given tier
func EnemiesByTier(tier entities.EnemyTier) []entities.EnemyTemplate {
	var out []entities.EnemyTemplate
	for _, t := range Enemies {
		if t.Tier == tier {
			out = append(out, t)
		}
	}
	return out
}
