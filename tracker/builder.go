package tracker

import (
	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/sim"
)

// Builder can build Trackers.
type Builder struct {
	engine   sim.Engine
	catalog  catalog.Catalog
	ids      sim.IDGenerator
	defaults UnitConfig
	rule     UpgradeRule
	roster   []UnitConfig
}

// MakeBuilder returns a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{}.WithConfig(config.Default())
}

// WithEngine sets the engine the tracker ticks on.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithCatalog sets the game data used to compute durations.
func (b Builder) WithCatalog(cat catalog.Catalog) Builder {
	b.catalog = cat
	return b
}

// WithIDGenerator sets the generator of timer tokens.
func (b Builder) WithIDGenerator(ids sim.IDGenerator) Builder {
	b.ids = ids
	return b
}

// WithConfig takes the unit defaults and the upgrade rule from a Config.
func (b Builder) WithConfig(c config.Config) Builder {
	b.defaults = UnitConfig{
		UnitID: c.DefaultUnit,
		Slot1:  c.DefaultSlot1,
		Slot2:  c.DefaultSlot2,
		Level:  Level(c.DefaultLevel),
	}
	b.rule = UpgradeRule{
		Threshold: c.UpgradeThreshold,
		From:      c.UpgradeFrom,
		To:        c.UpgradeTo,
	}

	return b
}

// WithUpgradeRule overrides the upgrade rule.
func (b Builder) WithUpgradeRule(rule UpgradeRule) Builder {
	b.rule = rule
	return b
}

// WithRoster sets the roster the tracker starts with.
func (b Builder) WithRoster(units []UnitConfig) Builder {
	b.roster = units
	return b
}

// Build creates a new Tracker. It panics if the roster is invalid.
func (b Builder) Build(name string) *Tracker {
	if b.engine == nil {
		panic("tracker requires an engine")
	}

	t := &Tracker{
		catalog:   b.catalog,
		ids:       b.ids,
		defaults:  b.defaults,
		statusLog: NewStatusLog(),
		upgrades:  UpgradeScheduler{Rule: b.rule},
	}
	t.TickingComponent = sim.NewTickingComponent(name, b.engine, t)

	if t.catalog == nil {
		t.catalog = catalog.Default()
	}

	if t.ids == nil {
		t.ids = sim.GetIDGenerator()
	}

	if err := t.ConfigureRoster(b.roster); err != nil {
		panic(err)
	}

	return t
}
