package entities

// SkillElement determines which stat scales a skill's damage: physical skills
// scale with attack, everything else with magic.
type SkillElement string

// Elements
const (
	ElementPhysical  SkillElement = "physical"
	ElementFire      SkillElement = "fire"
	ElementIce       SkillElement = "ice"
	ElementLightning SkillElement = "lightning"
	ElementHoly      SkillElement = "holy"
	ElementDark      SkillElement = "dark"
)

// SkillClass restricts who can learn a skill
type SkillClass string

// Skill class tags
const (
	SkillClassWarrior   SkillClass = "warrior"
	SkillClassMage      SkillClass = "mage"
	SkillClassRogue     SkillClass = "rogue"
	SkillClassCleric    SkillClass = "cleric"
	SkillClassUniversal SkillClass = "universal"
)

// EffectKind classifies a skill side effect
type EffectKind string

// Effect kinds
const (
	EffectDot    EffectKind = "dot"
	EffectHeal   EffectKind = "heal"
	EffectBuff   EffectKind = "buff"
	EffectDebuff EffectKind = "debuff"
	EffectStun   EffectKind = "stun"
)

// SkillEffect is an optional side effect attached to a skill. Duration is in
// seconds; Chance is a trigger probability in [0, 1].
type SkillEffect struct {
	Kind     EffectKind
	Value    int
	Duration int
	Chance   float64
}

// Skill is a skill template. Learned skills are clones of a template with a
// mutable Level; everything else stays fixed.
type Skill struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Element     SkillElement
	Rarity      ItemRarity
	Class       SkillClass
	Level       int
	MaxLevel    int

	BaseDamage       int
	DamageMultiplier float64
	MPCost           int
	Cooldown         float64

	DamageGrowth      int
	MPCostGrowth      int
	CooldownReduction float64

	Effects []SkillEffect
}

// SkillSlotCount is the number of equippable skill slots
const SkillSlotCount = 3

// SkillSlot holds a reference into the learned-skills list by skill id, so
// leveling a learned skill is visible through every slot referencing it.
type SkillSlot struct {
	SkillID    string
	EquippedAt int64
	LastUsedAt int64
}

// CharacterSkills is the per-character skill state
type CharacterSkills struct {
	CharacterID string
	Slots       [SkillSlotCount]*SkillSlot
	Learned     []Skill
}

// FindLearned returns the learned skill with the given id, or nil
func (cs *CharacterSkills) FindLearned(skillID string) *Skill {
	for i := range cs.Learned {
		if cs.Learned[i].ID == skillID {
			return &cs.Learned[i]
		}
	}
	return nil
}

// SlotOf returns the slot index holding skillID, or -1
func (cs *CharacterSkills) SlotOf(skillID string) int {
	for i, slot := range cs.Slots {
		if slot != nil && slot.SkillID == skillID {
			return i
		}
	}
	return -1
}

// SkillBook is an item payload that teaches a skill when consumed
type SkillBook struct {
	ID      string
	SkillID string
	Name    string
	Rarity  ItemRarity
	Class   SkillClass
}

// MailEntry is a pending cross-character delivery. The skill payload keeps
// its level from the sending character.
type MailEntry struct {
	ID              string
	FromCharacterID string
	Skill           Skill
	SentAt          int64
}
