package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// DropChance is the probability that a victory yields an item drop
const DropChance = 0.3

// DiamondDropChance is the probability that a victory yields bonus diamonds
const DiamondDropChance = 0.1

// LootTable lists the templates a victory drop is rolled from, uniformly
var LootTable = []entities.Item{
	{
		ID: ItemHealthPotion, Name: "Health Potion",
		Description: "Restores 50 HP",
		Type:        entities.ItemConsumable, Rarity: entities.RarityCommon,
		Binding: entities.BindCharacter, Icon: "🧪",
		Stackable: true, MaxStack: 99,
	},
	{
		ID: ItemMagicPotion, Name: "Mana Potion",
		Description: "Restores 30 MP",
		Type:        entities.ItemConsumable, Rarity: entities.RarityCommon,
		Binding: entities.BindCharacter, Icon: "💙",
		Stackable: true, MaxStack: 99,
	},
	{
		ID: "weapon_iron_sword", Name: "Iron Sword",
		Description: "Attack +5",
		Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
		Binding: entities.BindCharacter, Icon: "⚔️",
		Stackable: false, MaxStack: 1,
	},
	{
		ID: "armor_leather", Name: "Leather Armor",
		Description: "Defense +3",
		Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
		Binding: entities.BindCharacter, Icon: "🛡️",
		Stackable: false, MaxStack: 1,
	},
	{
		ID: ItemMagicStone, Name: "Magic Stone",
		Description: "Consumed to transfer items to the account vault",
		Type:        entities.ItemMaterial, Rarity: entities.RarityRare,
		Binding: entities.BindAccount, Icon: "💎",
		Stackable: true, MaxStack: 999,
	},
	{
		ID: ItemMysticScroll, Name: "Mystic Scroll",
		Description: "A scroll shared across the whole account",
		Type:        entities.ItemQuest, Rarity: entities.RarityEpic,
		Binding: entities.BindAccount, Icon: "📜",
		Stackable: false, MaxStack: 1,
	},
}
