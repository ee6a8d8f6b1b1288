package tracker

import "fmt"

// SlotKey identifies one independently timed ability of a unit.
type SlotKey int

// The slots of a unit.
const (
	SlotOne SlotKey = iota + 1
	SlotTwo
	SlotUltimate
)

// UltimateLabel is how the ultimate ability is named in the status log.
const UltimateLabel = "R"

var slotOrder = []SlotKey{SlotOne, SlotTwo, SlotUltimate}

var genericSlots = []SlotKey{SlotOne, SlotTwo}

func (k SlotKey) String() string {
	switch k {
	case SlotOne:
		return "slot1"
	case SlotTwo:
		return "slot2"
	case SlotUltimate:
		return "ultimate"
	default:
		return fmt.Sprintf("slot(%d)", int(k))
	}
}

// SlotFromNumber converts the operator-facing generic slot number (1 or 2).
func SlotFromNumber(n int) (SlotKey, error) {
	switch n {
	case 1:
		return SlotOne, nil
	case 2:
		return SlotTwo, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, n)
	}
}

// AbilitySlot is the identity of a generic ability slot.
type AbilitySlot struct {
	Ability  string `json:"ability"`
	Upgraded bool   `json:"upgraded"`
}
