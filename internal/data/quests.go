package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// Quests lists all quest templates
var Quests = []entities.Quest{
	{
		ID:          "quest_kill_goblins",
		Name:        "Goblin Cull",
		Description: "Goblins have overrun the forest and threaten the villagers",
		Type:        entities.QuestKill,
		Objectives: []entities.QuestObjective{
			{
				Type:        entities.QuestKill,
				TargetID:    "enemy_goblin",
				TargetName:  "Goblin",
				Quantity:    10,
				Description: "Defeat 10 goblins",
			},
		},
		Rewards: entities.QuestRewards{
			Experience: 50,
			Gold:       30,
			Items: []entities.ItemGrant{
				{ItemID: ItemHealthPotion, Quantity: 2},
			},
		},
		RequiredLevel: 1,
	},
	{
		ID:          "quest_collect_herbs",
		Name:        "Herb Gathering",
		Description: "The forest elder needs rare herbs for a potion",
		Type:        entities.QuestCollect,
		Objectives: []entities.QuestObjective{
			{
				Type:        entities.QuestCollect,
				TargetID:    ItemMoonlightHerb,
				TargetName:  "Moonlight Herb",
				Quantity:    5,
				Description: "Collect 5 moonlight herbs",
			},
		},
		Rewards: entities.QuestRewards{
			Experience: 30,
			Gold:       20,
			Items: []entities.ItemGrant{
				{ItemID: ItemMagicPotion, Quantity: 1},
			},
		},
		RequiredLevel: 1,
	},
	{
		ID:          "quest_collect_sand_crystals",
		Name:        "Crystal Harvest",
		Description: "The desert merchant needs sand crystals for magic trinkets",
		Type:        entities.QuestCollect,
		Objectives: []entities.QuestObjective{
			{
				Type:        entities.QuestCollect,
				TargetID:    ItemSandCrystal,
				TargetName:  "Sand Crystal",
				Quantity:    8,
				Description: "Collect 8 sand crystals",
			},
		},
		Rewards: entities.QuestRewards{
			Experience: 100,
			Gold:       60,
			Items: []entities.ItemGrant{
				{ItemID: ItemDiamond, Quantity: 2},
			},
		},
		RequiredLevel:  5,
		RequiredQuests: []string{"quest_kill_goblins"},
	},
	{
		ID:          "quest_defeat_ice_dragon",
		Name:        "Dragon's End",
		Description: "The mountain hermit asks you to slay the ice dragon",
		Type:        entities.QuestBoss,
		Objectives: []entities.QuestObjective{
			{
				Type:        entities.QuestBoss,
				TargetID:    "enemy_ice_dragon",
				TargetName:  "Ice Dragon",
				Quantity:    1,
				Description: "Defeat the Ice Dragon",
			},
		},
		Rewards: entities.QuestRewards{
			Experience: 300,
			Gold:       150,
			Items: []entities.ItemGrant{
				{ItemID: ItemSkillCrystal, Quantity: 1},
				{ItemID: ItemLegendaryWeapon, Quantity: 1},
			},
		},
		RequiredLevel:  10,
		RequiredQuests: []string{"quest_collect_sand_crystals"},
	},
}

// QuestByID returns the quest template with the given id, or nil
func QuestByID(id string) *entities.Quest {
	for i := range Quests {
		if Quests[i].ID == id {
			return &Quests[i]
		}
	}
	return nil
}
