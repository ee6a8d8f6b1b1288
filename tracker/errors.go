package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Valid ranges of the numeric unit attributes.
const (
	MinLevel     = 1
	MaxLevel     = 18
	MinPowerStat = 0
	MaxPowerStat = 999
)

var (
	// ErrInvalidLevel is returned for a level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidPowerStat is returned for a power stat outside
	// [MinPowerStat, MaxPowerStat].
	ErrInvalidPowerStat = errors.New("invalid power stat")

	// ErrUnknownUnitRef is returned when a command names a roster entry that
	// does not exist.
	ErrUnknownUnitRef = errors.New("unknown unit")

	// ErrInvalidSlot is returned for a generic slot number other than 1 or 2.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidModifierSource is returned for a modifier source other than
	// A or B.
	ErrInvalidModifierSource = errors.New("invalid modifier source")
)

// ValidateLevel checks that the level is in range.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d is outside [%d,%d]",
			ErrInvalidLevel, level, MinLevel, MaxLevel)
	}

	return nil
}

// ValidatePowerStat checks that the power stat is in range.
func ValidatePowerStat(v int) error {
	if v < MinPowerStat || v > MaxPowerStat {
		return fmt.Errorf("%w: %d is outside [%d,%d]",
			ErrInvalidPowerStat, v, MinPowerStat, MaxPowerStat)
	}

	return nil
}

// ParsePowerStat converts operator text into a power stat. Text that is not
// a number counts as 0; numbers out of range are rejected.
func ParsePowerStat(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, nil
	}

	if err := ValidatePowerStat(v); err != nil {
		return 0, err
	}

	return v, nil
}
