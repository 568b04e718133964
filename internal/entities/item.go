package entities

// ItemRarity grades items and skills
type ItemRarity string

// Rarities, lowest to highest
const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// ItemType classifies items
type ItemType string

// Item types
const (
	ItemConsumable ItemType = "consumable"
	ItemEquipment  ItemType = "equipment"
	ItemMaterial   ItemType = "material"
	ItemQuest      ItemType = "quest"
)

// ItemBinding restricts where an item may reside.
//
// character-bound items may never enter the account inventory. account-bound
// items move freely between the two containers. transferable items may move
// to the account inventory only by consuming a catalyst material.
type ItemBinding string

// Bindings
const (
	BindCharacter    ItemBinding = "character"
	BindAccount      ItemBinding = "account"
	BindTransferable ItemBinding = "transferable"
)

// Item is an immutable item template
type Item struct {
	ID          string
	Name        string
	Description string
	Type        ItemType
	Rarity      ItemRarity
	Binding     ItemBinding
	Icon        string
	Stackable   bool
	MaxStack    int
}

// InventoryEntry is an item stack inside a container
type InventoryEntry struct {
	Item       Item
	Quantity   int
	AcquiredAt int64
}

// QuickSlot references a consumable in the character inventory by item id.
// Quantity is always read live from the backing stack.
type QuickSlot struct {
	ItemID      string
	CooldownEnd int64
}

// QuickSlotCount is the size of the quick-item bar
const QuickSlotCount = 8

// CharacterInventory is the per-character item container
type CharacterInventory struct {
	CharacterID string
	Entries     []InventoryEntry
	Capacity    int
	QuickSlots  [QuickSlotCount]*QuickSlot
}

// AccountInventory is the account-wide item container shared by all
// characters. Character-bound items never appear here.
type AccountInventory struct {
	Entries  []InventoryEntry
	Capacity int
}

// Find returns the entry holding itemID, or nil
func (inv *CharacterInventory) Find(itemID string) *InventoryEntry {
	for i := range inv.Entries {
		if inv.Entries[i].Item.ID == itemID {
			return &inv.Entries[i]
		}
	}
	return nil
}

// Find returns the entry holding itemID, or nil
func (inv *AccountInventory) Find(itemID string) *InventoryEntry {
	for i := range inv.Entries {
		if inv.Entries[i].Item.ID == itemID {
			return &inv.Entries[i]
		}
	}
	return nil
}

// Remove deletes the entry holding itemID
func (inv *CharacterInventory) Remove(itemID string) {
	for i := range inv.Entries {
		if inv.Entries[i].Item.ID == itemID {
			inv.Entries = append(inv.Entries[:i], inv.Entries[i+1:]...)
			return
		}
	}
}

// Remove deletes the entry holding itemID
func (inv *AccountInventory) Remove(itemID string) {
	for i := range inv.Entries {
		if inv.Entries[i].Item.ID == itemID {
			inv.Entries = append(inv.Entries[:i], inv.Entries[i+1:]...)
			return
		}
	}
}
