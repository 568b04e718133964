package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// Well-known item ids referenced by quests, maps and loot
const (
	ItemHealthPotion    = "item_health_potion"
	ItemMagicPotion     = "item_magic_potion"
	ItemMagicStone      = "item_magic_stone"
	ItemMysticScroll    = "item_mystic_scroll"
	ItemMoonlightHerb   = "item_moonlight_herb"
	ItemSandCrystal     = "item_sand_crystal"
	ItemSkillCrystal    = "item_skill_crystal"
	ItemLegendaryWeapon = "item_legendary_weapon"

	// ItemDiamond marks a reward grant that pays out as account diamonds
	// instead of an inventory item.
	ItemDiamond = "item_diamond"
)

// Items lists all non-equipment item templates
var Items = []entities.Item{
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
	{
		ID: ItemMoonlightHerb, Name: "Moonlight Herb",
		Description: "A rare herb that glows under moonlight",
		Type:        entities.ItemMaterial, Rarity: entities.RarityUncommon,
		Binding: entities.BindCharacter, Icon: "🌿",
		Stackable: true, MaxStack: 999,
	},
	{
		ID: ItemSandCrystal, Name: "Sand Crystal",
		Description: "A crystal condensed from desert sand",
		Type:        entities.ItemMaterial, Rarity: entities.RarityUncommon,
		Binding: entities.BindCharacter, Icon: "🔶",
		Stackable: true, MaxStack: 999,
	},
	{
		ID: ItemSkillCrystal, Name: "Skill Crystal",
		Description: "Crystallized knowledge of forgotten masters",
		Type:        entities.ItemMaterial, Rarity: entities.RarityEpic,
		Binding: entities.BindTransferable, Icon: "🔮",
		Stackable: true, MaxStack: 99,
	},
}

// ItemByID returns the item template with the given id, or nil
func ItemByID(id string) *entities.Item {
	for i := range Items {
		if Items[i].ID == id {
			return &Items[i]
		}
	}
	return nil
}
