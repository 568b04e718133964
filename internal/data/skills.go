package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// Skills lists all skill templates
var Skills = []entities.Skill{
	{
		ID: "skill_basic_attack", Name: "Basic Attack",
		Description: "A plain physical strike",
		Icon:        "👊", Element: entities.ElementPhysical,
		Rarity: entities.RarityCommon, Class: entities.SkillClassUniversal,
		Level: 1, MaxLevel: 10,
		BaseDamage: 10, DamageMultiplier: 1.0, MPCost: 0, Cooldown: 0,
		DamageGrowth: 2, MPCostGrowth: 0, CooldownReduction: 0,
	},
	{
		ID: "skill_warrior_slash", Name: "Heavy Slash",
		Description: "A powerful single-target physical attack",
		Icon:        "⚔️", Element: entities.ElementPhysical,
		Rarity: entities.RarityCommon, Class: entities.SkillClassWarrior,
		Level: 1, MaxLevel: 10,
		BaseDamage: 25, DamageMultiplier: 1.5, MPCost: 15, Cooldown: 3,
		DamageGrowth: 5, MPCostGrowth: 2, CooldownReduction: 0.2,
	},
	{
		ID: "skill_warrior_charge", Name: "Charge",
		Description: "Rush the enemy, dealing damage with a chance to stun",
		Icon:        "💨", Element: entities.ElementPhysical,
		Rarity: entities.RarityUncommon, Class: entities.SkillClassWarrior,
		Level: 1, MaxLevel: 10,
		BaseDamage: 30, DamageMultiplier: 1.8, MPCost: 25, Cooldown: 8,
		DamageGrowth: 6, MPCostGrowth: 3, CooldownReduction: 0.5,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectStun, Value: 1, Duration: 2, Chance: 0.3},
		},
	},
	{
		ID: "skill_warrior_whirlwind", Name: "Whirlwind",
		Description: "A spinning attack that hits everything nearby",
		Icon:        "🌀", Element: entities.ElementPhysical,
		Rarity: entities.RarityRare, Class: entities.SkillClassWarrior,
		Level: 1, MaxLevel: 10,
		BaseDamage: 40, DamageMultiplier: 2.0, MPCost: 35, Cooldown: 12,
		DamageGrowth: 8, MPCostGrowth: 4, CooldownReduction: 0.8,
	},
	{
		ID: "skill_mage_fireball", Name: "Fireball",
		Description: "Hurl a fireball that deals fire damage",
		Icon:        "🔥", Element: entities.ElementFire,
		Rarity: entities.RarityCommon, Class: entities.SkillClassMage,
		Level: 1, MaxLevel: 10,
		BaseDamage: 30, DamageMultiplier: 2.0, MPCost: 20, Cooldown: 4,
		DamageGrowth: 7, MPCostGrowth: 2, CooldownReduction: 0.3,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectDot, Value: 5, Duration: 3, Chance: 0.5},
		},
	},
	{
		ID: "skill_mage_icebolt", Name: "Ice Bolt",
		Description: "Fire an ice bolt that slows the enemy",
		Icon:        "❄️", Element: entities.ElementIce,
		Rarity: entities.RarityUncommon, Class: entities.SkillClassMage,
		Level: 1, MaxLevel: 10,
		BaseDamage: 28, DamageMultiplier: 1.8, MPCost: 22, Cooldown: 5,
		DamageGrowth: 6, MPCostGrowth: 2, CooldownReduction: 0.4,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectDebuff, Value: -5, Duration: 4, Chance: 0.7},
		},
	},
	{
		ID: "skill_mage_lightning", Name: "Chain Lightning",
		Description: "Call down lightning for massive magic damage",
		Icon:        "⚡", Element: entities.ElementLightning,
		Rarity: entities.RarityRare, Class: entities.SkillClassMage,
		Level: 1, MaxLevel: 10,
		BaseDamage: 50, DamageMultiplier: 2.5, MPCost: 40, Cooldown: 15,
		DamageGrowth: 10, MPCostGrowth: 5, CooldownReduction: 1.0,
	},
	{
		ID: "skill_rogue_backstab", Name: "Backstab",
		Description: "Strike from behind for critical damage",
		Icon:        "🗡️", Element: entities.ElementPhysical,
		Rarity: entities.RarityCommon, Class: entities.SkillClassRogue,
		Level: 1, MaxLevel: 10,
		BaseDamage: 35, DamageMultiplier: 2.2, MPCost: 18, Cooldown: 6,
		DamageGrowth: 7, MPCostGrowth: 2, CooldownReduction: 0.4,
	},
	{
		ID: "skill_rogue_poison", Name: "Poison Blade",
		Description: "Coat the blade in venom, dealing damage over time",
		Icon:        "☠️", Element: entities.ElementDark,
		Rarity: entities.RarityUncommon, Class: entities.SkillClassRogue,
		Level: 1, MaxLevel: 10,
		BaseDamage: 20, DamageMultiplier: 1.2, MPCost: 25, Cooldown: 10,
		DamageGrowth: 4, MPCostGrowth: 3, CooldownReduction: 0.6,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectDot, Value: 8, Duration: 5, Chance: 0.9},
		},
	},
	{
		ID: "skill_rogue_shadowstrike", Name: "Shadow Strike",
		Description: "Ambush from the shadows for massive damage",
		Icon:        "🌑", Element: entities.ElementDark,
		Rarity: entities.RarityEpic, Class: entities.SkillClassRogue,
		Level: 1, MaxLevel: 10,
		BaseDamage: 60, DamageMultiplier: 3.0, MPCost: 45, Cooldown: 18,
		DamageGrowth: 12, MPCostGrowth: 5, CooldownReduction: 1.2,
	},
	{
		ID: "skill_cleric_heal", Name: "Heal",
		Description: "Restore your own HP",
		Icon:        "💚", Element: entities.ElementHoly,
		Rarity: entities.RarityCommon, Class: entities.SkillClassCleric,
		Level: 1, MaxLevel: 10,
		BaseDamage: 0, DamageMultiplier: 0, MPCost: 20, Cooldown: 8,
		DamageGrowth: 0, MPCostGrowth: 2, CooldownReduction: 0.5,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectHeal, Value: 40, Duration: 0, Chance: 1.0},
		},
	},
	{
		ID: "skill_cleric_smite", Name: "Holy Smite",
		Description: "Strike the enemy with holy power",
		Icon:        "✨", Element: entities.ElementHoly,
		Rarity: entities.RarityUncommon, Class: entities.SkillClassCleric,
		Level: 1, MaxLevel: 10,
		BaseDamage: 35, DamageMultiplier: 2.0, MPCost: 28, Cooldown: 7,
		DamageGrowth: 7, MPCostGrowth: 3, CooldownReduction: 0.5,
	},
	{
		ID: "skill_cleric_blessing", Name: "Divine Blessing",
		Description: "A blessing that raises attack and defense",
		Icon:        "🌟", Element: entities.ElementHoly,
		Rarity: entities.RarityRare, Class: entities.SkillClassCleric,
		Level: 1, MaxLevel: 10,
		BaseDamage: 0, DamageMultiplier: 0, MPCost: 35, Cooldown: 20,
		DamageGrowth: 0, MPCostGrowth: 4, CooldownReduction: 1.5,
		Effects: []entities.SkillEffect{
			{Kind: entities.EffectBuff, Value: 10, Duration: 10, Chance: 1.0},
		},
	},
}

// SkillByID returns the skill template with the given id, or nil
func SkillByID(id string) *entities.Skill {
	for i := range Skills {
		if Skills[i].ID == id {
			return &Skills[i]
		}
	}
	return nil
}

// DefaultSkillForClass returns a copy of the starting skill for the class,
// falling back to the universal basic attack.
func DefaultSkillForClass(class entities.ClassType) entities.Skill {
	defaults := map[entities.ClassType]string{
		entities.ClassWarrior: "skill_warrior_slash",
		entities.ClassMage:    "skill_mage_fireball",
		entities.ClassRogue:   "skill_rogue_backstab",
		entities.ClassCleric:  "skill_cleric_heal",
	}
	if skill := SkillByID(defaults[class]); skill != nil {
		return *skill
	}
	return *SkillByID("skill_basic_attack")
}
