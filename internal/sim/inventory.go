package sim

// Inventory holds collected keys. Two mutually exclusive designs exist
// across the variants: a per-color count and a single held-key slot; the
// mode is fixed at construction and both share this type so the step logic
// stays uniform.
type Inventory struct {
	mode    InventoryMode
	counts  [PaletteSize]int
	slot    ColorTag
	hasSlot bool
}

// NewInventory creates an empty inventory in the given mode.
func NewInventory(mode InventoryMode) Inventory {
	return Inventory{mode: mode}
}

// Mode returns the inventory mode.
func (inv *Inventory) Mode() InventoryMode {
	return inv.mode
}

// Add stores a key of the given color. Returns false when the inventory
// cannot take it (slot mode with a key already held, or mode None).
func (inv *Inventory) Add(c ColorTag) bool {
	switch inv.mode {
	case InventoryCounted:
		inv.counts[c]++
		return true
	case InventorySlot:
		if inv.hasSlot {
			return false
		}
		inv.slot = c
		inv.hasSlot = true
		return true
	default:
		return false
	}
}

// Has reports whether a key of the given color is available.
func (inv *Inventory) Has(c ColorTag) bool {
	switch inv.mode {
	case InventoryCounted:
		return inv.counts[c] > 0
	case InventorySlot:
		return inv.hasSlot && inv.slot == c
	default:
		return false
	}
}

// Consume removes one key of the given color. Returns false without
// mutating when none is held, so counts can never go negative.
func (inv *Inventory) Consume(c ColorTag) bool {
	if !inv.Has(c) {
		return false
	}
	switch inv.mode {
	case InventoryCounted:
		inv.counts[c]--
	case InventorySlot:
		inv.hasSlot = false
	}
	return true
}

// Count returns the held count for a color (0 or 1 in slot mode).
func (inv *Inventory) Count(c ColorTag) int {
	switch inv.mode {
	case InventoryCounted:
		return inv.counts[c]
	case InventorySlot:
		if inv.hasSlot && inv.slot == c {
			return 1
		}
	}
	return 0
}

// Holding returns the held key color in slot mode.
func (inv *Inventory) Holding() (ColorTag, bool) {
	if inv.mode == InventorySlot && inv.hasSlot {
		return inv.slot, true
	}
	return 0, false
}

// Empty reports whether nothing is held.
func (inv *Inventory) Empty() bool {
	switch inv.mode {
	case InventoryCounted:
		for _, n := range inv.counts {
			if n > 0 {
				return false
			}
		}
		return true
	case InventorySlot:
		return !inv.hasSlot
	default:
		return true
	}
}
