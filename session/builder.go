package session

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/datarecording"
	"github.com/sarchlab/cdtrack/monitoring"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracing"
	"github.com/sarchlab/cdtrack/tracker"
)

// DefaultRosterSize is the number of tracked units when no roster is given.
const DefaultRosterSize = 5

// Builder can be used to build a session.
type Builder struct {
	config     config.Config
	catalog    *catalog.Table
	roster     []tracker.UnitConfig
	ids        sim.IDGenerator
	logger     *log.Logger
	engineLog  *log.Logger
	httpClient *http.Client
	noMonitor  bool
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		config:     config.Default(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithConfig sets the configuration.
func (b Builder) WithConfig(c config.Config) Builder {
	b.config = c
	return b
}

// WithCatalog uses the given game data instead of loading it as the
// configuration says.
func (b Builder) WithCatalog(t *catalog.Table) Builder {
	b.catalog = t
	return b
}

// WithRoster sets the initial roster.
func (b Builder) WithRoster(units []tracker.UnitConfig) Builder {
	b.roster = units
	return b
}

// WithIDGenerator sets the generator of timer tokens.
func (b Builder) WithIDGenerator(ids sim.IDGenerator) Builder {
	b.ids = ids
	return b
}

// WithLogger prints every timer event to the logger.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// WithEngineLogger prints every event the engine handles to the logger.
func (b Builder) WithEngineLogger(l *log.Logger) Builder {
	b.engineLog = l
	return b
}

// WithHTTPClient sets the client used to fetch game data.
func (b Builder) WithHTTPClient(c *http.Client) Builder {
	b.httpClient = c
	return b
}

// WithoutMonitoring keeps the monitor off regardless of the configuration.
func (b Builder) WithoutMonitoring() Builder {
	b.noMonitor = true
	return b
}

// Build builds the session. The monitor, if enabled, is already serving when
// Build returns.
func (b Builder) Build(ctx context.Context) (*Session, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:     xid.New().String(),
		config: b.config,
		engine: sim.NewSerialEngine(),
		logger: b.logger,
	}

	if b.engineLog != nil {
		s.engine.AcceptHook(sim.NewEventLogger(b.engineLog))
	}

	cat, err := b.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.catalog = cat

	roster := append([]tracker.UnitConfig(nil), b.roster...)
	if b.roster == nil {
		roster = DefaultRoster(DefaultRosterSize)
	}

	for i, u := range roster {
		roster[i].UnitID = catalog.InternalName(u.UnitID)
	}

	s.tracker = tracker.MakeBuilder().
		WithConfig(b.config).
		WithEngine(s.engine).
		WithCatalog(cat).
		WithIDGenerator(b.ids).
		WithRoster(roster).
		Build("Tracker")

	if b.logger != nil {
		tracing.CollectTrace(s.tracker, tracing.NewLogTracer(b.logger))
	}

	if b.config.RecordPath != "" {
		if err := b.startRecording(s); err != nil {
			return nil, err
		}
	}

	s.driver = sim.NewRealTimeDriver(s.engine, b.config.TickInterval)

	if b.config.MonitorOn && !b.noMonitor {
		s.monitor = monitoring.NewMonitor().
			WithPortNumber(b.config.MonitorPort)
		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterTracker(s.tracker)
		s.monitor.StartServer()
	}

	return s, nil
}

func (b Builder) startRecording(s *Session) error {
	recorder, err := datarecording.New(b.config.RecordPath)
	if err != nil {
		return fmt.Errorf("failed to start recording: %w", err)
	}

	s.dataRecorder = recorder
	s.dbTracer = tracing.NewDBTracer(s.engine, recorder)
	tracing.CollectTrace(s.tracker, s.dbTracer)

	return nil
}

func (b Builder) loadCatalog(ctx context.Context) (*catalog.Table, error) {
	if b.catalog != nil {
		return b.catalog, nil
	}

	cat := catalog.Default()

	if b.config.FetchCatalog {
		fetched, err := catalog.Fetch(ctx, b.httpClient, b.config.DataDragonURL)
		if err != nil {
			if b.logger != nil {
				b.logger.Printf("using built-in game data: %v", err)
			}
		} else {
			cat = fetched
		}
	}

	if b.config.CatalogFile != "" {
		overrides, err := catalog.ReadOverride(b.config.CatalogFile)
		if err != nil {
			return nil, err
		}

		cat.Merge(overrides)
	}

	return cat, nil
}

// DefaultRoster returns n entries that take every field from the defaults.
func DefaultRoster(n int) []tracker.UnitConfig {
	return make([]tracker.UnitConfig, n)
}
