// Package inventory implements item containers, transfers, quick slots and
// the currency ledgers.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/a602017206/WordRPGGame/internal/orchestrators/inventory Service,QuestProgress

import (
	"context"

	"github.com/a602017206/WordRPGGame/internal/entities"
)

// QuestProgress receives collect notifications when items enter a character
// inventory. Wired after construction to break the dependency loop with the
// quest orchestrator.
type QuestProgress interface {
	RecordCollect(ctx context.Context, characterID string, item entities.Item, quantity int)
}

// Service defines the inventory orchestrator interface
type Service interface {
	// GetInventories returns the character and account containers
	GetInventories(ctx context.Context, input *GetInventoriesInput) (*GetInventoriesOutput, error)

	// AddItem places an item into a container, stacking when possible.
	// Stacks clamp at the item's max stack; a full container rejects new
	// entries with Added=false.
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem takes a quantity out of a container, dropping the entry
	// when it reaches zero
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// TransferToAccount moves items from the character container to the
	// account container, enforcing binding rules
	TransferToAccount(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// TransferToCharacter moves items from the account container to the
	// character container
	TransferToCharacter(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// SetQuickSlot binds a consumable to a quick slot by item id
	SetQuickSlot(ctx context.Context, input *SetQuickSlotInput) (*SetQuickSlotOutput, error)

	// ClearQuickSlot empties a quick slot
	ClearQuickSlot(ctx context.Context, input *ClearQuickSlotInput) (*ClearQuickSlotOutput, error)

	// UseQuickSlot consumes one item from the slot's backing stack and
	// reports the restore effect. Slots cool down for 30 seconds after use.
	UseQuickSlot(ctx context.Context, input *UseQuickSlotInput) (*UseQuickSlotOutput, error)

	// ConsumeCatalyst removes catalyst materials matched by display-name
	// substring from the character bag, or from the account vault when
	// FromAccount is set
	ConsumeCatalyst(ctx context.Context, input *ConsumeCatalystInput) (*ConsumeCatalystOutput, error)

	// GetBalances returns the character gold and account diamond balances
	GetBalances(ctx context.Context, input *GetBalancesInput) (*GetBalancesOutput, error)

	// AddGold credits gold to a character
	AddGold(ctx context.Context, input *AddGoldInput) (*AddGoldOutput, error)

	// SpendGold debits gold atomically; Success=false when the balance is
	// short and nothing is deducted
	SpendGold(ctx context.Context, input *SpendGoldInput) (*SpendGoldOutput, error)

	// AddDiamond credits diamonds to the account
	AddDiamond(ctx context.Context, input *AddDiamondInput) (*AddDiamondOutput, error)

	// SpendDiamond debits diamonds atomically; Success=false when the
	// balance is short and nothing is deducted
	SpendDiamond(ctx context.Context, input *SpendDiamondInput) (*SpendDiamondOutput, error)

	// SetQuestProgress wires the collect-notification sink
	SetQuestProgress(qp QuestProgress)
}

// GetInventoriesInput holds the character whose containers to fetch
type GetInventoriesInput struct {
	CharacterID string
}

// GetInventoriesOutput holds both containers
type GetInventoriesOutput struct {
	Character *entities.CharacterInventory
	Account   *entities.AccountInventory
}

// AddItemInput describes an item grant
type AddItemInput struct {
	CharacterID string
	Item        entities.Item
	Quantity    int
	ToAccount   bool
}

// AddItemOutput reports whether the grant landed
type AddItemOutput struct {
	Added   bool
	Message string
}

// RemoveItemInput describes an item removal
type RemoveItemInput struct {
	CharacterID string
	ItemID      string
	Quantity    int
	FromAccount bool
}

// RemoveItemOutput reports whether the removal succeeded
type RemoveItemOutput struct {
	Removed bool
	Message string
}

// TransferInput describes a cross-container move
type TransferInput struct {
	CharacterID string
	ItemID      string
	Quantity    int
}

// TransferOutput reports the transfer result
type TransferOutput struct {
	Success bool
	Message string
}

// SetQuickSlotInput binds an item to a quick slot
type SetQuickSlotInput struct {
	CharacterID string
	SlotIndex   int
	ItemID      string
}

// SetQuickSlotOutput reports the binding result
type SetQuickSlotOutput struct {
	Success bool
	Message string
}

// ClearQuickSlotInput empties a quick slot
type ClearQuickSlotInput struct {
	CharacterID string
	SlotIndex   int
}

// ClearQuickSlotOutput reports the clear result
type ClearQuickSlotOutput struct{}

// UseQuickSlotInput uses a quick slot
type UseQuickSlotInput struct {
	CharacterID string
	SlotIndex   int
}

// UseQuickSlotOutput reports the consumable's effect
type UseQuickSlotOutput struct {
	Success bool
	Message string
	HealHP  int
	HealMP  int
}

// ConsumeCatalystInput removes catalyst materials by name substring
type ConsumeCatalystInput struct {
	CharacterID   string
	NameSubstring string
	Quantity      int
	FromAccount   bool
}

// ConsumeCatalystOutput reports whether the catalysts were consumed
type ConsumeCatalystOutput struct {
	Consumed bool
	Message  string
}

// GetBalancesInput holds the character whose balances to fetch
type GetBalancesInput struct {
	CharacterID string
}

// GetBalancesOutput holds both balances
type GetBalancesOutput struct {
	Gold    int
	Diamond int
}

// AddGoldInput credits gold
type AddGoldInput struct {
	CharacterID string
	Amount      int
}

// AddGoldOutput holds the new balance
type AddGoldOutput struct {
	Balance int
}

// SpendGoldInput debits gold
type SpendGoldInput struct {
	CharacterID string
	Amount      int
}

// SpendGoldOutput reports the debit result
type SpendGoldOutput struct {
	Success bool
	Balance int
}

// AddDiamondInput credits diamonds
type AddDiamondInput struct {
	Amount int
}

// AddDiamondOutput holds the new balance
type AddDiamondOutput struct {
	Balance int
}

// SpendDiamondInput debits diamonds
type SpendDiamondInput struct {
	Amount int
}

// SpendDiamondOutput reports the debit result
type SpendDiamondOutput struct {
	Success bool
	Balance int
}
