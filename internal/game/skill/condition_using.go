package skill

// Leaf constructors for <using> (equipment-in-use) condition attributes.

// UsingKind requires the equipped weapon/armor kind mask to intersect.
func UsingKind(mask int32) *Leaf {
	return NewLeaf(LeafUsing, "kind", func(env *Env) bool {
		return env.Equip != nil && env.Equip.KindMask&mask != 0
	})
}

// UsingSlot requires an item equipped in one of the masked slots.
func UsingSlot(mask int64) *Leaf {
	return NewLeaf(LeafUsing, "slot", func(env *Env) bool {
		return env.Equip != nil && env.Equip.SlotsUsed&mask != 0
	})
}

// UsingSkill requires the given item skill granted by equipment.
func UsingSkill(id int32) *Leaf {
	return NewLeaf(LeafUsing, "skill", func(env *Env) bool {
		return env.Equip != nil && env.Equip.ItemSkills[id]
	})
}

// UsingSlotItem requires a specific item in a specific slot with at least
// the given enchant level.
func UsingSlotItem(slot int64, itemID, enchant int32) *Leaf {
	return NewLeaf(LeafUsing, "slotitem", func(env *Env) bool {
		if env.Equip == nil {
			return false
		}
		it, ok := env.Equip.Items[slot]
		return ok && it.ID == itemID && it.Enchant >= enchant
	})
}

// UsingWeaponChange requires the "weapon was just changed" flag to match.
func UsingWeaponChange(want bool) *Leaf {
	return NewLeaf(LeafUsing, "weaponchange", func(env *Env) bool {
		return env.Equip != nil && env.Equip.WeaponChanged == want
	})
}
