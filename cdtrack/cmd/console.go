package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/tracker"
)

var (
	// ErrUnknownCommand is returned for a console line whose first word is
	// not a command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("usage")

	errQuit = errors.New("quit")
)

const consoleHelp = `commands (units are numbered from 1):
  start                              start the game clock
  roster <unit>[,slot1,slot2,level,power] ...
                                     configure the roster
  s1 <u> | s2 <u>                    start the timer of a generic slot
  cast <u> <1|2> <ability>           start a slot timer with a given ability
  ult <u>                            start the ultimate timer
  mod <u> <a|b> <on|off>             toggle a cooldown modifier
  level <u> <n>                      set the level
  power <u> <value>                  set the power stat
  reset                              reset clock, log and timers
  show                               print every unit
  log                                print the status log
  help                               print this text
  quit                               leave`

// A Console executes operator command lines against a tracker.
type Console struct {
	tracker *tracker.Tracker
	out     io.Writer
}

// NewConsole creates a console that prints to out.
func NewConsole(t *tracker.Tracker, out io.Writer) *Console {
	return &Console{tracker: t, out: out}
}

// Exec runs one command line. Blank lines and lines starting with # are
// ignored.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "start":
		c.tracker.StartClock()
		return nil
	case "roster":
		return c.roster(args)
	case "s1", "s2":
		return c.startSlot(name, args)
	case "cast":
		return c.cast(args)
	case "ult":
		return c.ult(args)
	case "mod":
		return c.modifier(args)
	case "level":
		return c.level(args)
	case "power":
		return c.power(args)
	case "reset":
		c.tracker.Reset()
		return nil
	case "show":
		c.show()
		return nil
	case "log":
		fmt.Fprintln(c.out, c.tracker.LogText())
		return nil
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (c *Console) roster(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: roster <unit>[,slot1,slot2,level,power] ...",
			ErrUsage)
	}

	units := make([]tracker.UnitConfig, 0, len(args))
	for _, arg := range args {
		u, err := parseUnitConfig(arg)
		if err != nil {
			return err
		}

		units = append(units, u)
	}

	return c.tracker.ConfigureRoster(units)
}

// parseUnitConfig reads "unit,slot1,slot2,level,power". Empty or missing
// fields take the defaults. Underscores in ability names stand for spaces.
func parseUnitConfig(s string) (tracker.UnitConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 5 {
		return tracker.UnitConfig{}, fmt.Errorf("%w: too many fields in %q",
			ErrUsage, s)
	}

	for len(parts) < 5 {
		parts = append(parts, "")
	}

	u := tracker.UnitConfig{
		UnitID: catalog.InternalName(parts[0]),
		Slot1:  strings.ReplaceAll(parts[1], "_", " "),
		Slot2:  strings.ReplaceAll(parts[2], "_", " "),
	}

	if parts[3] != "" {
		level, err := strconv.Atoi(parts[3])
		if err != nil {
			return tracker.UnitConfig{}, fmt.Errorf("%w: %q",
				tracker.ErrInvalidLevel, parts[3])
		}
		u.Level = tracker.Level(level)
	}

	if parts[4] != "" {
		power, err := tracker.ParsePowerStat(parts[4])
		if err != nil {
			return tracker.UnitConfig{}, err
		}
		u.PowerStat = power
	}

	return u, nil
}

func (c *Console) startSlot(name string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s <unit>", ErrUsage, name)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	slot := tracker.SlotOne
	if name == "s2" {
		slot = tracker.SlotTwo
	}

	_, err = c.tracker.StartSlot(unit, slot)

	return err
}

func (c *Console) cast(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: cast <unit> <1|2> <ability>", ErrUsage)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q", tracker.ErrInvalidSlot, args[1])
	}

	slot, err := tracker.SlotFromNumber(n)
	if err != nil {
		return err
	}

	_, err = c.tracker.StartSlotTimer(unit, slot, strings.Join(args[2:], " "))

	return err
}

func (c *Console) ult(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: ult <unit>", ErrUsage)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	_, err = c.tracker.StartUltimateTimer(unit)

	return err
}

func (c *Console) modifier(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: mod <unit> <a|b> <on|off>", ErrUsage)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	src, err := tracker.ParseModifierSource(args[1])
	if err != nil {
		return err
	}

	var enabled bool
	switch strings.ToLower(args[2]) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("%w: mod <unit> <a|b> <on|off>", ErrUsage)
	}

	return c.tracker.SetModifier(unit, src, enabled)
}

func (c *Console) level(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: level <unit> <n>", ErrUsage)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q", tracker.ErrInvalidLevel, args[1])
	}

	return c.tracker.SetLevel(unit, level)
}

func (c *Console) power(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: power <unit> <value>", ErrUsage)
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		return err
	}

	return c.tracker.SetPowerStatText(unit, args[1])
}

func (c *Console) show() {
	snapshot := c.tracker.Snapshot()

	state := "idle"
	if snapshot.Running {
		state = "running"
	}
	fmt.Fprintf(c.out, "clock %s (%s)\n", snapshot.Clock, state)

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tUNIT\tLVL\tPOWER\tMODS\tSLOT1\t\tSLOT2\t\tR")

	for _, u := range snapshot.Units {
		name := u.Name
		if !u.Known {
			name += "?"
		}

		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.Index+1, name, u.Level, u.PowerStat, modifierFlags(u.Modifiers),
			u.Slot1.Ability, u.Slot1.Display,
			u.Slot2.Ability, u.Slot2.Display,
			u.UltimateDisplay)
	}

	_ = w.Flush()

	if snapshot.Log != "" {
		fmt.Fprintln(c.out, snapshot.Log)
	}
}

func modifierFlags(m tracker.ModifierSet) string {
	flags := ""
	if m.A {
		flags += "a"
	}

	if m.B {
		flags += "b"
	}

	if flags == "" {
		return "-"
	}

	return flags
}

// parseUnit converts a 1-based console unit number to a 0-based index.
func parseUnit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", tracker.ErrUnknownUnitRef, s)
	}

	return n - 1, nil
}
