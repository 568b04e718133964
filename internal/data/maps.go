package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// Maps lists all game maps in unlock order
var Maps = []entities.GameMap{
	{
		ID:          "map_forest_1",
		Name:        "Misty Forest",
		Description: "A mysterious forest shrouded in ancient magic",
		Theme:       "forest",
		Difficulty:  "easy",
		Icon:        "🌲",
		RequiredLevel: 1,
		BossID:        "enemy_ancient_treant",
		NPCs: []entities.NPC{
			{
				ID:          "npc_forest_elder",
				Name:        "Forest Elder",
				Description: "A wise elder who watches over the forest",
				Type:        "quest_giver",
				Icon:        "👴",
				Dialogues: []string{
					"Welcome to the Misty Forest, young adventurer.",
					"Many secrets hide in these woods. Beware the dangers that lurk.",
					"Help me with a problem and I will reward you well.",
				},
				Quests: []string{"quest_kill_goblins", "quest_collect_herbs"},
			},
		},
		Monsters: []string{"enemy_goblin", "enemy_wolf", "enemy_spider"},
		Rewards: entities.QuestRewards{
			Experience: 100,
			Gold:       50,
			Items: []entities.ItemGrant{
				{ItemID: ItemHealthPotion, Quantity: 3},
				{ItemID: ItemMagicStone, Quantity: 1},
			},
		},
	},
	{
		ID:          "map_desert_1",
		Name:        "Scorching Desert",
		Description: "An endless desert of blazing sun and frequent sandstorms",
		Theme:       "desert",
		Difficulty:  "medium",
		Icon:        "🏜️",
		RequiredLevel:  5,
		RequiredQuests: []string{"quest_kill_goblins"},
		BossID:         "enemy_desert_scorpion_king",
		NPCs: []entities.NPC{
			{
				ID:          "npc_desert_merchant",
				Name:        "Desert Merchant",
				Description: "A mysterious trader who roams the dunes",
				Type:        "merchant",
				Icon:        "👳",
				Dialogues: []string{
					"Welcome to the desert. It is far less forgiving than the forest.",
					"I carry rare goods. Trade your gold for them.",
					"Watch for quicksand. It is a deadly trap.",
				},
				Quests: []string{"quest_collect_sand_crystals"},
			},
		},
		Monsters: []string{"enemy_sand_scorpion", "enemy_desert_bandit", "enemy_mummy"},
		Rewards: entities.QuestRewards{
			Experience: 250,
			Gold:       120,
			Items: []entities.ItemGrant{
				{ItemID: ItemMagicPotion, Quantity: 2},
				{ItemID: ItemDiamond, Quantity: 1},
			},
		},
	},
	{
		ID:          "map_mountain_1",
		Name:        "Frozen Peaks",
		Description: "Towering snow mountains where the cold cuts to the bone",
		Theme:       "ice",
		Difficulty:  "hard",
		Icon:        "🏔️",
		RequiredLevel:  10,
		RequiredQuests: []string{"quest_collect_sand_crystals"},
		BossID:         "enemy_ice_dragon",
		NPCs: []entities.NPC{
			{
				ID:          "npc_mountain_hermit",
				Name:        "Mountain Hermit",
				Description: "A hermit who has trained on the summit for decades",
				Type:        "trainer",
				Icon:        "🧘",
				Dialogues: []string{
					"Reaching this place proves your strength.",
					"The ice dragon rules the summit. Face it carefully.",
					"Defeat it and I will teach you techniques of battle.",
				},
				Quests: []string{"quest_defeat_ice_dragon"},
			},
		},
		Monsters: []string{"enemy_ice_wolf", "enemy_snow_golem", "enemy_frost_elemental"},
		Rewards: entities.QuestRewards{
			Experience: 500,
			Gold:       250,
			Items: []entities.ItemGrant{
				{ItemID: ItemSkillCrystal, Quantity: 1},
				{ItemID: ItemLegendaryWeapon, Quantity: 1},
			},
		},
	},
}

// MapByID returns the map template with the given id, or nil
func MapByID(id string) *entities.GameMap {
	for i := range Maps {
		if Maps[i].ID == id {
			return &Maps[i]
		}
	}
	return nil
}
