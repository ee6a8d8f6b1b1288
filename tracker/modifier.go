package tracker

import (
	"fmt"
	"strings"
)

// ModifierSource names one of the two cooldown-reduction sources of a unit.
// Source A is the boots item, source B the rune.
type ModifierSource int

// The modifier sources.
const (
	ModifierA ModifierSource = iota
	ModifierB
)

// Discount tiers. The sources do not stack beyond these.
const (
	DiscountNone = 1.0
	DiscountA    = 0.9091
	DiscountB    = 0.8475
	DiscountBoth = 0.78125
)

func (s ModifierSource) String() string {
	switch s {
	case ModifierA:
		return "A"
	case ModifierB:
		return "B"
	default:
		return fmt.Sprintf("ModifierSource(%d)", int(s))
	}
}

// ParseModifierSource accepts "A"/"B" in any case, or the names of the
// sources.
func ParseModifierSource(s string) (ModifierSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "lucidity", "boots":
		return ModifierA, nil
	case "b", "cosmic", "rune":
		return ModifierB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidModifierSource, s)
	}
}

// ModifierSet holds the enabled cooldown-reduction sources of a unit.
type ModifierSet struct {
	A bool `json:"a"`
	B bool `json:"b"`
}

// Discount returns the multiplier applied to generic ability cooldowns.
func (m ModifierSet) Discount() float64 {
	switch {
	case m.A && m.B:
		return DiscountBoth
	case m.A:
		return DiscountA
	case m.B:
		return DiscountB
	default:
		return DiscountNone
	}
}

// Set enables or disables a source.
func (m *ModifierSet) Set(src ModifierSource, enabled bool) error {
	switch src {
	case ModifierA:
		m.A = enabled
	case ModifierB:
		m.B = enabled
	default:
		return fmt.Errorf("%w: %s", ErrInvalidModifierSource, src)
	}

	return nil
}
