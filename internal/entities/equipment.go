package entities

// EquipmentSlot names a gear slot
type EquipmentSlot string

// Gear slots
const (
	SlotWeapon    EquipmentSlot = "weapon"
	SlotShield    EquipmentSlot = "shield"
	SlotHelmet    EquipmentSlot = "helmet"
	SlotArmor     EquipmentSlot = "armor"
	SlotGloves    EquipmentSlot = "gloves"
	SlotBoots     EquipmentSlot = "boots"
	SlotAccessory EquipmentSlot = "accessory"
)

// EquipmentSlots lists all gear slots in display order
var EquipmentSlots = []EquipmentSlot{
	SlotWeapon, SlotShield, SlotHelmet, SlotArmor, SlotGloves, SlotBoots, SlotAccessory,
}

// EquipmentQuality grades equipment independently of rarity
type EquipmentQuality string

// Qualities
const (
	QualityNormal    EquipmentQuality = "normal"
	QualityMagic     EquipmentQuality = "magic"
	QualityRare      EquipmentQuality = "rare"
	QualityEpic      EquipmentQuality = "epic"
	QualityLegendary EquipmentQuality = "legendary"
)

// Equipment is an immutable equipment template. Bonus fields are deltas
// applied on top of base stats while the item is equipped.
type Equipment struct {
	Item
	Slot             EquipmentSlot
	Quality          EquipmentQuality
	LevelRequirement int
	Bonus            Stats
}

// EquippedItem is an occupied gear slot
type EquippedItem struct {
	Equipment  Equipment
	EquippedAt int64
}

// CharacterEquipment is the per-character gear state
type CharacterEquipment struct {
	CharacterID string
	Slots       map[EquipmentSlot]*EquippedItem
}

// NewCharacterEquipment returns an empty gear state for the character
func NewCharacterEquipment(characterID string) *CharacterEquipment {
	return &CharacterEquipment{
		CharacterID: characterID,
		Slots:       make(map[EquipmentSlot]*EquippedItem),
	}
}

// Bonus sums stat bonuses across all occupied slots
func (ce *CharacterEquipment) Bonus() Stats {
	var total Stats
	for _, eq := range ce.Slots {
		if eq != nil {
			total = total.Add(eq.Equipment.Bonus)
		}
	}
	return total
}
