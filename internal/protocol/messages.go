package protocol

// HELLO (client -> server): first frame on a new connection.
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	PlayerName      string `json:"player_name"`
	// ResumeToken lets a reconnecting client reclaim its player.
	ResumeToken string `json:"resume_token,omitempty"`
}

// WELCOME (server -> client): handshake reply. A full STATE snapshot follows
// immediately on the same connection.
type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	PlayerID        string      `json:"player_id"`
	SessionID       string      `json:"session_id"`
	ResumeToken     string      `json:"resume_token"`
	WorldParams     WorldParams `json:"world_params"`
	Catalogs        Digests     `json:"catalogs"`
}

type WorldParams struct {
	TickRateHz    int     `json:"tick_rate_hz"`
	TimeScale     float64 `json:"time_scale"`
	HoursPerDay   int     `json:"hours_per_day"`
	DaysPerSeason int     `json:"days_per_season"`
	WorldSize     int     `json:"world_size"`
	Seed          int64   `json:"seed"`
}

type Digests struct {
	Crops       string `json:"crops"`
	Fish        string `json:"fish"`
	Items       string `json:"items"`
	Fertilizers string `json:"fertilizers"`
	Recipes     string `json:"recipes"`
	NPCs        string `json:"npcs"`
	Shop        string `json:"shop"`
}

// CMD (client -> server): one player intent. The server validates it against
// authoritative state and silently drops it when any guard fails; clients
// reconcile through the next EVENTS/STATE frame.
type CommandMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Cmd             string `json:"cmd"`
	X               int    `json:"x,omitempty"`
	Z               int    `json:"z,omitempty"`
	Item            string `json:"item,omitempty"`
	Qty             int    `json:"qty,omitempty"`
	Quality         int    `json:"quality,omitempty"`
	Target          string `json:"target,omitempty"`
	Recipe          string `json:"recipe,omitempty"`
}

// Command names accepted in CommandMsg.Cmd.
const (
	CmdPlayerMove     = "player:move"
	CmdFarmTill       = "farm:till"
	CmdFarmPlant      = "farm:plant"
	CmdFarmWater      = "farm:water"
	CmdFarmHarvest    = "farm:harvest"
	CmdFarmFertilize  = "farm:fertilize"
	CmdPlaceSprinkler = "farm:placeSprinkler"
	CmdFishCast       = "fish:cast"
	CmdFishReel       = "fish:reel"
	CmdShopBuy        = "shop:buy"
	CmdShopSell       = "shop:sell"
	CmdNPCTalk        = "npc:talk"
	CmdNPCGift        = "npc:gift"
	CmdCraftStart     = "craft:start"
	CmdCraftCollect   = "craft:collect"
	CmdToolUpgrade    = "tool:upgrade"
	CmdAnimalFeed     = "animal:feed"
	CmdAnimalCollect  = "animal:collect"
	CmdPetPlay        = "pet:play"
)

// EVENTS (server -> client): incremental deltas accumulated during one tick.
type EventsMsg struct {
	Type   string  `json:"type"`
	Tick   uint64  `json:"tick"`
	Events []Event `json:"events"`
}

// STATE (server -> client): authoritative full snapshot. Clients must discard
// any pending incremental assumptions for the entity classes it carries.
type StateMsg struct {
	Type  string     `json:"type"`
	Tick  uint64     `json:"tick"`
	State WorldState `json:"state"`
}

type WorldState struct {
	PlayerID    string           `json:"playerId"`
	Tiles       []TileState      `json:"tiles"`
	Decorations []DecorState     `json:"decorations"`
	Crops       []CropState      `json:"crops"`
	Animals     []AnimalState    `json:"animals"`
	Pets        []PetState       `json:"pets"`
	NPCs        []NPCState       `json:"npcs"`
	Players     []PlayerState    `json:"players"`
	Buildings   []BuildingState  `json:"buildings"`
	Sprinklers  []SprinklerState `json:"sprinklers"`
	Machines    []MachineState   `json:"machines"`
	Time        TimeState        `json:"time"`
	Weather     WeatherState     `json:"weather"`
}

type SprinklerState struct {
	X       int    `json:"x"`
	Z       int    `json:"z"`
	OwnerID string `json:"ownerId"`
}

type MachineState struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Kind        string  `json:"kind"`
	Busy        bool    `json:"busy"`
	Recipe      string  `json:"recipe,omitempty"`
	ReadyAtHour float64 `json:"readyAtHour,omitempty"`
}

type TileState struct {
	X      int     `json:"x"`
	Z      int     `json:"z"`
	Kind   string  `json:"type"`
	Height float64 `json:"height"`
}

type DecorState struct {
	Kind     string  `json:"type"`
	X        int     `json:"x"`
	Z        int     `json:"z"`
	Variant  int     `json:"variant"`
	Rotation float64 `json:"rotation"`
}

type CropState struct {
	ID         string  `json:"id"`
	TileX      int     `json:"tileX"`
	TileZ      int     `json:"tileZ"`
	CropType   string  `json:"cropType"`
	Stage      string  `json:"stage"`
	Growth     float64 `json:"growth"`
	Watered    bool    `json:"watered"`
	Fertilizer string  `json:"fertilizer,omitempty"`
}

type AnimalState struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	Happiness    int    `json:"happiness"`
	FedToday     bool   `json:"fedToday"`
	ProductReady bool   `json:"productReady"`
}

type PetState struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Kind        string `json:"kind"`
	Loyalty     int    `json:"loyalty"`
	PlayedToday bool   `json:"playedToday"`
}

type NPCState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
}

type PlayerState struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	X         int              `json:"x"`
	Z         int              `json:"z"`
	Coins     int              `json:"coins"`
	Energy    int              `json:"energy"`
	MaxEnergy int              `json:"maxEnergy"`
	Inventory []ItemStackState `json:"inventory"`
	Skills    map[string]SkillState `json:"skills"`
	Level     int              `json:"level"`
	RodTier   int              `json:"rodTier"`
}

type ItemStackState struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Quality  int    `json:"quality"`
}

type SkillState struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

type BuildingState struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Z    int    `json:"z"`
}

type TimeState struct {
	Season int     `json:"season"`
	Day    int     `json:"day"`
	Hour   float64 `json:"hour"`
}

type WeatherState struct {
	Weather string `json:"weather"`
}
