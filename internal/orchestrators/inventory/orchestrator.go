package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/a602017206/WordRPGGame/internal/entities"
	"github.com/a602017206/WordRPGGame/internal/errors"
	"github.com/a602017206/WordRPGGame/internal/pkg/clock"
	currencyrepo "github.com/a602017206/WordRPGGame/internal/repositories/currency"
	inventoryrepo "github.com/a602017206/WordRPGGame/internal/repositories/inventory"
)

const (
	// QuickSlotCooldown is how long a quick slot locks after use
	QuickSlotCooldown = 30 * time.Second

	// TransferCatalystName matches the material consumed when moving a
	// transferable item to the account container
	TransferCatalystName = "magic stone"

	healthPotionRestore = 50
	manaPotionRestore   = 30
)

// Config holds the orchestrator dependencies
type Config struct {
	InventoryRepo inventoryrepo.Repository
	CurrencyRepo  currencyrepo.Repository
	Clock         clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.InventoryRepo == nil {
		vb.RequiredField("inventory_repo")
	}
	if cfg.CurrencyRepo == nil {
		vb.RequiredField("currency_repo")
	}
	return vb.Build()
}

type orchestrator struct {
	inventoryRepo inventoryrepo.Repository
	currencyRepo  currencyrepo.Repository
	clock         clock.Clock

	mu            sync.Mutex
	questProgress QuestProgress
}

// NewOrchestrator creates an inventory orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		currencyRepo:  cfg.CurrencyRepo,
		clock:         c,
	}, nil
}

func (o *orchestrator) SetQuestProgress(qp QuestProgress) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.questProgress = qp
}

func (o *orchestrator) notifyCollect(ctx context.Context, characterID string, item entities.Item, quantity int) {
	o.mu.Lock()
	qp := o.questProgress
	o.mu.Unlock()
	if qp != nil {
		qp.RecordCollect(ctx, characterID, item, quantity)
	}
}

func (o *orchestrator) GetInventories(ctx context.Context, input *GetInventoriesInput) (*GetInventoriesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}

	return &GetInventoriesOutput{Character: charOut.Inventory, Account: acctOut.Inventory}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	// Character-bound items never enter the account container
	if input.ToAccount && input.Item.Binding == entities.BindCharacter {
		return nil, errors.FailedPreconditionf("item %s is character-bound", input.Item.ID)
	}

	if input.ToAccount {
		acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
		if err != nil {
			return nil, err
		}
		inv := acctOut.Inventory

		added, msg := addToAccount(inv, input.Item, input.Quantity, o.clock.Now().UnixMilli())
		if !added {
			return &AddItemOutput{Added: false, Message: msg}, nil
		}

		if _, err := o.inventoryRepo.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: inv}); err != nil {
			return nil, err
		}
		return &AddItemOutput{Added: true, Message: msg}, nil
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	added, msg := addToCharacter(inv, input.Item, input.Quantity, o.clock.Now().UnixMilli())
	if !added {
		return &AddItemOutput{Added: false, Message: msg}, nil
	}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item added",
		"character_id", input.CharacterID,
		"item_id", input.Item.ID,
		"quantity", input.Quantity)

	o.notifyCollect(ctx, input.CharacterID, input.Item, input.Quantity)

	return &AddItemOutput{Added: true, Message: msg}, nil
}

func addToCharacter(inv *entities.CharacterInventory, item entities.Item, quantity int, now int64) (bool, string) {
	if existing := inv.Find(item.ID); existing != nil && item.Stackable {
		existing.Quantity = min(existing.Quantity+quantity, item.MaxStack)
		return true, fmt.Sprintf("added %d x %s", quantity, item.Name)
	}
	if len(inv.Entries) >= inv.Capacity {
		return false, "inventory is full"
	}
	inv.Entries = append(inv.Entries, entities.InventoryEntry{Item: item, Quantity: quantity, AcquiredAt: now})
	return true, fmt.Sprintf("added %d x %s", quantity, item.Name)
}

func addToAccount(inv *entities.AccountInventory, item entities.Item, quantity int, now int64) (bool, string) {
	if existing := inv.Find(item.ID); existing != nil && item.Stackable {
		existing.Quantity = min(existing.Quantity+quantity, item.MaxStack)
		return true, fmt.Sprintf("added %d x %s", quantity, item.Name)
	}
	if len(inv.Entries) >= inv.Capacity {
		return false, "account vault is full"
	}
	inv.Entries = append(inv.Entries, entities.InventoryEntry{Item: item, Quantity: quantity, AcquiredAt: now})
	return true, fmt.Sprintf("added %d x %s", quantity, item.Name)
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	if input.FromAccount {
		acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
		if err != nil {
			return nil, err
		}
		inv := acctOut.Inventory

		entry := inv.Find(input.ItemID)
		if entry == nil || entry.Quantity < input.Quantity {
			return &RemoveItemOutput{Removed: false, Message: "not enough items"}, nil
		}
		entry.Quantity -= input.Quantity
		if entry.Quantity == 0 {
			inv.Remove(input.ItemID)
		}

		if _, err := o.inventoryRepo.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: inv}); err != nil {
			return nil, err
		}
		return &RemoveItemOutput{Removed: true}, nil
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	entry := inv.Find(input.ItemID)
	if entry == nil || entry.Quantity < input.Quantity {
		return &RemoveItemOutput{Removed: false, Message: "not enough items"}, nil
	}
	entry.Quantity -= input.Quantity
	if entry.Quantity == 0 {
		inv.Remove(input.ItemID)
		clearQuickSlotsFor(inv, input.ItemID)
	}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}
	return &RemoveItemOutput{Removed: true}, nil
}

func clearQuickSlotsFor(inv *entities.CharacterInventory, itemID string) {
	for i, slot := range inv.QuickSlots {
		if slot != nil && slot.ItemID == itemID {
			inv.QuickSlots[i] = nil
		}
	}
}

func (o *orchestrator) TransferToAccount(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	entry := inv.Find(input.ItemID)
	if entry == nil {
		return &TransferOutput{Success: false, Message: "item not found"}, nil
	}
	item := entry.Item

	// Binding gate comes first, then the catalyst, then the quantity check.
	// A failed quantity check after a consumed catalyst does not refund it.
	if item.Binding == entities.BindCharacter {
		return &TransferOutput{Success: false, Message: "this item cannot move to the account vault"}, nil
	}

	if item.Binding == entities.BindTransferable {
		catalyst := findByNameSubstring(inv.Entries, TransferCatalystName)
		if catalyst == nil || catalyst.Quantity < 1 {
			return &TransferOutput{Success: false, Message: "a magic stone is required to transfer this item"}, nil
		}
		catalyst.Quantity--
		if catalyst.Quantity == 0 {
			inv.Remove(catalyst.Item.ID)
			// Removing the catalyst shifts the entries slice, so the
			// transfer entry must be looked up again.
			entry = inv.Find(input.ItemID)
		}
	}

	if entry == nil || entry.Quantity < input.Quantity {
		if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
			return nil, err
		}
		return &TransferOutput{Success: false, Message: "not enough items"}, nil
	}

	entry.Quantity -= input.Quantity
	if entry.Quantity == 0 {
		inv.Remove(input.ItemID)
		clearQuickSlotsFor(inv, input.ItemID)
	}

	acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	acct := acctOut.Inventory

	added, msg := addToAccount(acct, item, input.Quantity, o.clock.Now().UnixMilli())
	if !added {
		return &TransferOutput{Success: false, Message: msg}, nil
	}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}
	if _, err := o.inventoryRepo.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: acct}); err != nil {
		return nil, err
	}

	return &TransferOutput{
		Success: true,
		Message: fmt.Sprintf("transferred %d x %s to the account vault", input.Quantity, item.Name),
	}, nil
}

func (o *orchestrator) TransferToCharacter(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	acct := acctOut.Inventory

	entry := acct.Find(input.ItemID)
	if entry == nil {
		return &TransferOutput{Success: false, Message: "item not found"}, nil
	}
	if entry.Quantity < input.Quantity {
		return &TransferOutput{Success: false, Message: "not enough items"}, nil
	}
	item := entry.Item

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	added, msg := addToCharacter(inv, item, input.Quantity, o.clock.Now().UnixMilli())
	if !added {
		return &TransferOutput{Success: false, Message: msg}, nil
	}

	entry.Quantity -= input.Quantity
	if entry.Quantity == 0 {
		acct.Remove(input.ItemID)
	}

	if _, err := o.inventoryRepo.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: acct}); err != nil {
		return nil, err
	}
	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	o.notifyCollect(ctx, input.CharacterID, item, input.Quantity)

	return &TransferOutput{
		Success: true,
		Message: fmt.Sprintf("transferred %d x %s to the character bag", input.Quantity, item.Name),
	}, nil
}

func findByNameSubstring(entries []entities.InventoryEntry, sub string) *entities.InventoryEntry {
	lower := strings.ToLower(sub)
	for i := range entries {
		if strings.Contains(strings.ToLower(entries[i].Item.Name), lower) {
			return &entries[i]
		}
	}
	return nil
}

func (o *orchestrator) SetQuickSlot(ctx context.Context, input *SetQuickSlotInput) (*SetQuickSlotOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.QuickSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	entry := inv.Find(input.ItemID)
	if entry == nil {
		return &SetQuickSlotOutput{Success: false, Message: "item not found"}, nil
	}
	if entry.Item.Type != entities.ItemConsumable {
		return &SetQuickSlotOutput{Success: false, Message: "only consumables can be placed in quick slots"}, nil
	}

	inv.QuickSlots[input.SlotIndex] = &entities.QuickSlot{ItemID: input.ItemID}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	return &SetQuickSlotOutput{Success: true, Message: fmt.Sprintf("%s bound to slot %d", entry.Item.Name, input.SlotIndex+1)}, nil
}

func (o *orchestrator) ClearQuickSlot(ctx context.Context, input *ClearQuickSlotInput) (*ClearQuickSlotOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.QuickSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory
	inv.QuickSlots[input.SlotIndex] = nil

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	return &ClearQuickSlotOutput{}, nil
}

func (o *orchestrator) UseQuickSlot(ctx context.Context, input *UseQuickSlotInput) (*UseQuickSlotOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.QuickSlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	slot := inv.QuickSlots[input.SlotIndex]
	if slot == nil {
		return &UseQuickSlotOutput{Success: false, Message: "slot is empty"}, nil
	}

	now := o.clock.Now()
	if slot.CooldownEnd > now.UnixMilli() {
		remaining := time.Duration(slot.CooldownEnd-now.UnixMilli()) * time.Millisecond
		return &UseQuickSlotOutput{
			Success: false,
			Message: fmt.Sprintf("slot on cooldown, %ds remaining", int(remaining.Seconds())+1),
		}, nil
	}

	// Quantity reads live from the backing stack, so a stack emptied
	// elsewhere clears the slot here.
	entry := inv.Find(slot.ItemID)
	if entry == nil || entry.Quantity == 0 {
		inv.QuickSlots[input.SlotIndex] = nil
		if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
			return nil, err
		}
		return &UseQuickSlotOutput{Success: false, Message: "item is gone, slot cleared"}, nil
	}

	out := &UseQuickSlotOutput{Success: true}
	name := strings.ToLower(entry.Item.Name)
	switch {
	case strings.Contains(name, "health potion"):
		out.HealHP = healthPotionRestore
		out.Message = fmt.Sprintf("used %s, restored %d HP", entry.Item.Name, healthPotionRestore)
	case strings.Contains(name, "mana potion"):
		out.HealMP = manaPotionRestore
		out.Message = fmt.Sprintf("used %s, restored %d MP", entry.Item.Name, manaPotionRestore)
	default:
		out.Message = fmt.Sprintf("used %s", entry.Item.Name)
	}

	entry.Quantity--
	if entry.Quantity == 0 {
		inv.Remove(entry.Item.ID)
		inv.QuickSlots[input.SlotIndex] = nil
	} else {
		slot.CooldownEnd = now.Add(QuickSlotCooldown).UnixMilli()
	}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) ConsumeCatalyst(ctx context.Context, input *ConsumeCatalystInput) (*ConsumeCatalystOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	if input.FromAccount {
		acctOut, err := o.inventoryRepo.GetAccount(ctx, inventoryrepo.GetAccountInput{})
		if err != nil {
			return nil, err
		}
		acct := acctOut.Inventory

		entry := findByNameSubstring(acct.Entries, input.NameSubstring)
		if entry == nil || entry.Quantity < input.Quantity {
			return &ConsumeCatalystOutput{
				Consumed: false,
				Message:  fmt.Sprintf("%d x %s required", input.Quantity, input.NameSubstring),
			}, nil
		}

		entry.Quantity -= input.Quantity
		if entry.Quantity == 0 {
			acct.Remove(entry.Item.ID)
		}

		if _, err := o.inventoryRepo.SaveAccount(ctx, inventoryrepo.SaveAccountInput{Inventory: acct}); err != nil {
			return nil, err
		}
		return &ConsumeCatalystOutput{Consumed: true}, nil
	}

	charOut, err := o.inventoryRepo.GetCharacter(ctx, inventoryrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	inv := charOut.Inventory

	entry := findByNameSubstring(inv.Entries, input.NameSubstring)
	if entry == nil || entry.Quantity < input.Quantity {
		return &ConsumeCatalystOutput{
			Consumed: false,
			Message:  fmt.Sprintf("%d x %s required", input.Quantity, input.NameSubstring),
		}, nil
	}

	entry.Quantity -= input.Quantity
	if entry.Quantity == 0 {
		inv.Remove(entry.Item.ID)
	}

	if _, err := o.inventoryRepo.SaveCharacter(ctx, inventoryrepo.SaveCharacterInput{Inventory: inv}); err != nil {
		return nil, err
	}

	return &ConsumeCatalystOutput{Consumed: true}, nil
}

func (o *orchestrator) GetBalances(ctx context.Context, input *GetBalancesInput) (*GetBalancesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.currencyRepo.GetCharacter(ctx, currencyrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	acctOut, err := o.currencyRepo.GetAccount(ctx, currencyrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}

	return &GetBalancesOutput{Gold: charOut.Currency.Gold, Diamond: acctOut.Currency.Diamond}, nil
}

func (o *orchestrator) AddGold(ctx context.Context, input *AddGoldInput) (*AddGoldOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	charOut, err := o.currencyRepo.GetCharacter(ctx, currencyrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	cur := charOut.Currency
	cur.Gold += input.Amount

	if _, err := o.currencyRepo.SaveCharacter(ctx, currencyrepo.SaveCharacterInput{Currency: cur}); err != nil {
		return nil, err
	}

	return &AddGoldOutput{Balance: cur.Gold}, nil
}

func (o *orchestrator) SpendGold(ctx context.Context, input *SpendGoldInput) (*SpendGoldOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	charOut, err := o.currencyRepo.GetCharacter(ctx, currencyrepo.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	cur := charOut.Currency

	if cur.Gold < input.Amount {
		return &SpendGoldOutput{Success: false, Balance: cur.Gold}, nil
	}
	cur.Gold -= input.Amount

	if _, err := o.currencyRepo.SaveCharacter(ctx, currencyrepo.SaveCharacterInput{Currency: cur}); err != nil {
		return nil, err
	}

	return &SpendGoldOutput{Success: true, Balance: cur.Gold}, nil
}

func (o *orchestrator) AddDiamond(ctx context.Context, input *AddDiamondInput) (*AddDiamondOutput, error) {
	if input == nil || input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	acctOut, err := o.currencyRepo.GetAccount(ctx, currencyrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	cur := acctOut.Currency
	cur.Diamond += input.Amount

	if _, err := o.currencyRepo.SaveAccount(ctx, currencyrepo.SaveAccountInput{Currency: cur}); err != nil {
		return nil, err
	}

	return &AddDiamondOutput{Balance: cur.Diamond}, nil
}

func (o *orchestrator) SpendDiamond(ctx context.Context, input *SpendDiamondInput) (*SpendDiamondOutput, error) {
	if input == nil || input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	acctOut, err := o.currencyRepo.GetAccount(ctx, currencyrepo.GetAccountInput{})
	if err != nil {
		return nil, err
	}
	cur := acctOut.Currency

	if cur.Diamond < input.Amount {
		return &SpendDiamondOutput{Success: false, Balance: cur.Diamond}, nil
	}
	cur.Diamond -= input.Amount

	if _, err := o.currencyRepo.SaveAccount(ctx, currencyrepo.SaveAccountInput{Currency: cur}); err != nil {
		return nil, err
	}

	return &SpendDiamondOutput{Success: true, Balance: cur.Diamond}, nil
}
