package data

import "github.com/a602017206/WordRPGGame/internal/entities"

// EquipmentCatalog lists all equipment templates
var EquipmentCatalog = []entities.Equipment{
	{
		Item: entities.Item{
			ID: "weapon_iron_sword", Name: "Iron Sword",
			Description: "A plain iron longsword for beginners",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "🗡️",
		},
		Slot: entities.SlotWeapon, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Attack: 5},
	},
	{
		Item: entities.Item{
			ID: "weapon_steel_sword", Name: "Steel Sword",
			Description: "Forged from refined steel, sharp and durable",
			Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
			Binding: entities.BindTransferable, Icon: "⚔️",
		},
		Slot: entities.SlotWeapon, Quality: entities.QualityMagic,
		LevelRequirement: 5,
		Bonus:            entities.Stats{Attack: 10},
	},
	{
		Item: entities.Item{
			ID: "weapon_flame_sword", Name: "Flame Sword",
			Description: "A blade wreathed in fire magic",
			Type:        entities.ItemEquipment, Rarity: entities.RarityRare,
			Binding: entities.BindCharacter, Icon: "🔥",
		},
		Slot: entities.SlotWeapon, Quality: entities.QualityRare,
		LevelRequirement: 10,
		Bonus:            entities.Stats{Attack: 15, Magic: 8},
	},
	{
		Item: entities.Item{
			ID: "weapon_magic_staff", Name: "Magic Staff",
			Description: "A staff that amplifies magical power",
			Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
			Binding: entities.BindTransferable, Icon: "🪄",
		},
		Slot: entities.SlotWeapon, Quality: entities.QualityMagic,
		LevelRequirement: 3,
		Bonus:            entities.Stats{Magic: 12, MP: 15},
	},
	{
		Item: entities.Item{
			ID: ItemLegendaryWeapon, Name: "Dragon Slayer",
			Description: "A legendary blade said to have slain dragons",
			Type:        entities.ItemEquipment, Rarity: entities.RarityLegendary,
			Binding: entities.BindCharacter, Icon: "⚡",
		},
		Slot: entities.SlotWeapon, Quality: entities.QualityLegendary,
		LevelRequirement: 20,
		Bonus:            entities.Stats{Attack: 30, Defense: 10, HP: 50},
	},
	{
		Item: entities.Item{
			ID: "shield_wooden", Name: "Wooden Shield",
			Description: "A simple wooden shield",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "🛡️",
		},
		Slot: entities.SlotShield, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Defense: 5},
	},
	{
		Item: entities.Item{
			ID: "shield_iron", Name: "Iron Shield",
			Description: "A sturdy iron shield",
			Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
			Binding: entities.BindTransferable, Icon: "🛡️",
		},
		Slot: entities.SlotShield, Quality: entities.QualityMagic,
		LevelRequirement: 5,
		Bonus:            entities.Stats{Defense: 12, HP: 10},
	},
	{
		Item: entities.Item{
			ID: "helmet_leather", Name: "Leather Helmet",
			Description: "A simple leather helmet",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "🧢",
		},
		Slot: entities.SlotHelmet, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Defense: 3, HP: 5},
	},
	{
		Item: entities.Item{
			ID: "helmet_mage", Name: "Mage Hat",
			Description: "A hat that sharpens magical focus",
			Type:        entities.ItemEquipment, Rarity: entities.RarityRare,
			Binding: entities.BindCharacter, Icon: "🎩",
		},
		Slot: entities.SlotHelmet, Quality: entities.QualityRare,
		LevelRequirement: 8,
		Bonus:            entities.Stats{Magic: 10, MP: 20},
	},
	{
		Item: entities.Item{
			ID: "armor_leather", Name: "Leather Armor",
			Description: "Light leather armor for beginners",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "👕",
		},
		Slot: entities.SlotArmor, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Defense: 5, HP: 10},
	},
	{
		Item: entities.Item{
			ID: "armor_chain_mail", Name: "Chain Mail",
			Description: "Interlocking metal rings with solid protection",
			Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
			Binding: entities.BindTransferable, Icon: "👕",
		},
		Slot: entities.SlotArmor, Quality: entities.QualityMagic,
		LevelRequirement: 5,
		Bonus:            entities.Stats{Defense: 12, HP: 20},
	},
	{
		Item: entities.Item{
			ID: "armor_plate", Name: "Plate Armor",
			Description: "Heavy full-body plate, slow but nearly impenetrable",
			Type:        entities.ItemEquipment, Rarity: entities.RarityRare,
			Binding: entities.BindCharacter, Icon: "🥋",
		},
		Slot: entities.SlotArmor, Quality: entities.QualityRare,
		LevelRequirement: 10,
		Bonus:            entities.Stats{Defense: 20, HP: 40, Speed: -2},
	},
	{
		Item: entities.Item{
			ID: "gloves_leather", Name: "Leather Gloves",
			Description: "Basic leather gloves",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "🧤",
		},
		Slot: entities.SlotGloves, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Defense: 2, Attack: 1},
	},
	{
		Item: entities.Item{
			ID: "boots_leather", Name: "Leather Boots",
			Description: "Light boots with basic protection",
			Type:        entities.ItemEquipment, Rarity: entities.RarityCommon,
			Binding: entities.BindTransferable, Icon: "👢",
		},
		Slot: entities.SlotBoots, Quality: entities.QualityNormal,
		LevelRequirement: 1,
		Bonus:            entities.Stats{Defense: 2, Speed: 2},
	},
	{
		Item: entities.Item{
			ID: "boots_speed", Name: "Gale Boots",
			Description: "Enchanted boots that greatly boost speed",
			Type:        entities.ItemEquipment, Rarity: entities.RarityEpic,
			Binding: entities.BindCharacter, Icon: "👟",
		},
		Slot: entities.SlotBoots, Quality: entities.QualityEpic,
		LevelRequirement: 15,
		Bonus:            entities.Stats{Defense: 5, Speed: 10},
	},
	{
		Item: entities.Item{
			ID: "accessory_ring", Name: "Ring of Strength",
			Description: "A magic ring that empowers its wearer",
			Type:        entities.ItemEquipment, Rarity: entities.RarityUncommon,
			Binding: entities.BindTransferable, Icon: "💍",
		},
		Slot: entities.SlotAccessory, Quality: entities.QualityMagic,
		LevelRequirement: 3,
		Bonus:            entities.Stats{Attack: 5},
	},
	{
		Item: entities.Item{
			ID: "accessory_amulet", Name: "Amulet of Life",
			Description: "An amulet that bolsters vitality",
			Type:        entities.ItemEquipment, Rarity: entities.RarityRare,
			Binding: entities.BindCharacter, Icon: "📿",
		},
		Slot: entities.SlotAccessory, Quality: entities.QualityRare,
		LevelRequirement: 8,
		Bonus:            entities.Stats{HP: 30},
	},
}

// EquipmentByID returns the equipment template with the given id, or nil
func EquipmentByID(id string) *entities.Equipment {
	for i := range EquipmentCatalog {
		if EquipmentCatalog[i].ID == id {
			return &EquipmentCatalog[i]
		}
	}
	return nil
}
