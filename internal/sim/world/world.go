package world

import (
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"farmstead.gg/internal/protocol"
	"farmstead.gg/internal/sim/catalogs"
)

// World is the authoritative simulation. All mutable entity collections are
// owned here and touched only from the loop goroutine; mutual exclusion is
// structural, not locked.
type World struct {
	cfg      WorldConfig
	catalogs catalogs.Catalogs
	log      *logrus.Logger

	clock   *Clock
	weather string

	tiles       *TileGrid
	decorations []Decoration
	buildings   []Building

	crops      map[string]*Crop
	cropAt     map[TileKey]string
	players    map[string]*Player
	nameToID   map[string]string
	clients    map[string]*Client
	animals    map[string]*Animal
	pets       map[string]*Pet
	npcs       map[string]*NPC
	rels       map[relKey]*Relationship
	sprinklers map[TileKey]*Sprinkler
	machines   map[string]*Machine

	// resumeTokens maps one-shot reconnect tokens to player ids.
	resumeTokens map[string]string

	store  Gateway
	cmdLog CommandLogger

	// rng drives non-reproducible gameplay rolls (catches, quality); the
	// deterministic generators never touch it.
	rng *rand.Rand

	// tick is atomic only so /healthz can peek at it from outside the loop.
	tick atomic.Uint64
	// lastWholeHour dedupes time:update broadcasts to hour boundaries.
	lastWholeHour int

	// Events addressed to every connected client this tick.
	pendingAll []protocol.Event
	// Players whose clients need a fresh full snapshot this tick.
	fullSyncDue bool

	join  chan JoinRequest
	leave chan LeaveRequest
	inbox chan CommandEnvelope
	stop  chan struct{}

	nextCropNum    uint64
	nextPlayerNum  uint64
	nextMachineNum uint64
}

// Client is the transport-side handle for one connected player.
type Client struct {
	PlayerID string
	Out      chan []byte
}

type JoinRequest struct {
	Name        string
	ResumeToken string
	Out         chan []byte
	Resp        chan JoinResponse
}

// LeaveRequest carries the leaving connection's out channel so a stale
// socket cannot detach a newer session for the same player.
type LeaveRequest struct {
	PlayerID string
	Out      chan []byte
}

type JoinResponse struct {
	PlayerID    string
	ResumeToken string
	Welcome     protocol.WelcomeMsg
	Err         error
}

type CommandEnvelope struct {
	PlayerID string
	Cmd      protocol.CommandMsg
}

// CommandLogEntry is the replay/audit record for one processed command.
type CommandLogEntry struct {
	Tick     uint64 `json:"tick"`
	PlayerID string `json:"player_id"`
	Cmd      string `json:"cmd"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// CommandLogger receives every processed command; nil disables logging.
type CommandLogger interface {
	WriteCommand(entry CommandLogEntry) error
}

func New(cfg WorldConfig, cats catalogs.Catalogs, store Gateway, logger *logrus.Logger) (*World, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = logrus.New()
	}
	if err := validateCommandDispatch(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:        cfg,
		catalogs:   cats,
		log:        logger,
		crops:      map[string]*Crop{},
		cropAt:     map[TileKey]string{},
		players:    map[string]*Player{},
		nameToID:   map[string]string{},
		clients:    map[string]*Client{},
		animals:    map[string]*Animal{},
		pets:       map[string]*Pet{},
		npcs:       map[string]*NPC{},
		rels:       map[relKey]*Relationship{},
		sprinklers: map[TileKey]*Sprinkler{},
		machines:   map[string]*Machine{},

		resumeTokens: map[string]string{},
		store:        store,
		join:         make(chan JoinRequest, 16),
		leave:        make(chan LeaveRequest, 16),
		inbox:        make(chan CommandEnvelope, 256),
		stop:         make(chan struct{}),
	}

	w.clock = NewClock(cfg.TimeScale, cfg.HoursPerDay, cfg.DaysPerSeason)

	// The world row is the root of durable state: without its seed and
	// calendar the world cannot run, so load failure here is fatal upstream.
	if store != nil {
		row, ok, err := store.LoadWorld(cfg.ID)
		if err != nil {
			return nil, fmt.Errorf("load world row: %w", err)
		}
		if ok {
			w.cfg.Seed = row.Seed
			w.clock.Season = row.Season
			w.clock.Day = row.Day
			w.clock.Hour = row.Hour
			w.clock.TotalDays = row.TotalDays
			w.weather = row.Weather
			logger.WithFields(logrus.Fields{
				"world": cfg.ID, "seed": row.Seed,
				"season": row.Season, "day": row.Day,
			}).Info("resumed world from storage")
		} else {
			if err := store.SaveWorld(WorldRow{
				ID: cfg.ID, Seed: w.cfg.Seed,
				Season: w.clock.Season, Day: w.clock.Day, Hour: w.clock.Hour,
				Weather: w.weather, TotalDays: w.clock.TotalDays,
			}); err != nil {
				return nil, fmt.Errorf("create world row: %w", err)
			}
		}
	}
	if w.weather == "" {
		w.weather = WeatherForDay(w.cfg.Seed, w.clock.TotalDays, w.clock.Season)
	}

	// Deterministic generation: same seed, same map, bit for bit.
	w.tiles = GenerateTerrain(w.cfg.Seed, w.cfg.Size)
	w.decorations = GenerateDecorations(w.cfg.Seed, w.tiles)
	w.buildings = BuildingsFor(w.cfg.Size)

	for id, def := range cats.NPCs.Defs {
		w.npcs[id] = &NPC{ID: id, Name: def.Name, X: def.X, Z: def.Z}
	}
	for i, def := range cats.Shop.Animals {
		id := fmt.Sprintf("AN%02d", i+1)
		w.animals[id] = &Animal{
			ID: id, Kind: def.Kind, Name: def.Name,
			Product: def.Product, Feed: def.Feed,
			Happiness: 50,
		}
	}

	w.rng = rand.New(rand.NewSource(w.cfg.Seed ^ 0x6AF1))
	w.lastWholeHour = int(w.clock.Hour)
	return w, nil
}

func (w *World) ID() string        { return w.cfg.ID }
func (w *World) Seed() int64       { return w.cfg.Seed }
func (w *World) TickRateHz() int   { return w.cfg.TickRateHz }
func (w *World) CurrentTick() uint64 { return w.tick.Load() }

func (w *World) Join() chan<- JoinRequest       { return w.join }
func (w *World) Leave() chan<- LeaveRequest     { return w.leave }
func (w *World) Inbox() chan<- CommandEnvelope  { return w.inbox }

func (w *World) SetCommandLogger(l CommandLogger) { w.cmdLog = l }

func (w *World) newCropID() string {
	w.nextCropNum++
	return fmt.Sprintf("C%06d", w.nextCropNum)
}

func (w *World) newMachineID() string {
	w.nextMachineNum++
	return fmt.Sprintf("M%04d", w.nextMachineNum)
}

func (w *World) cropOn(x, z int) *Crop {
	id, ok := w.cropAt[TileKey{X: x, Z: z}]
	if !ok {
		return nil
	}
	return w.crops[id]
}

// sortedCrops iterates in stable ID order so per-tick passes are
// deterministic regardless of map ordering.
func (w *World) sortedCrops() []*Crop {
	out := make([]*Crop, 0, len(w.crops))
	for _, c := range w.crops {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *World) sortedPlayers() []*Player {
	out := make([]*Player, 0, len(w.players))
	for _, p := range w.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *World) sortedAnimals() []*Animal {
	out := make([]*Animal, 0, len(w.animals))
	for _, a := range w.animals {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *World) relationship(playerID, npcID string) *Relationship {
	k := relKey{PlayerID: playerID, NPCID: npcID}
	if r, ok := w.rels[k]; ok {
		return r
	}
	r := &Relationship{PlayerID: playerID, NPCID: npcID}
	w.rels[k] = r
	return r
}
