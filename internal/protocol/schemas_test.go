package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	cmdSchema := compile("cmd.schema.json")
	eventsSchema := compile("events.schema.json")
	stateSchema := compile("state.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"1.0",
	  "player_name":"ada",
	  "resume_token":"9f2c"
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"1.0",
	  "player_id":"P0001",
	  "session_id":"s-1",
	  "resume_token":"9f2c",
	  "world_params":{
	    "tick_rate_hz":10,
	    "time_scale":1.0,
	    "hours_per_day":24,
	    "days_per_season":28,
	    "world_size":96,
	    "seed":1337
	  },
	  "catalogs":{
	    "crops":"deadbeef","fish":"deadbeef","items":"deadbeef",
	    "fertilizers":"deadbeef","recipes":"deadbeef","npcs":"deadbeef",
	    "shop":"deadbeef"
	  }
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var cmd any
	_ = json.Unmarshal([]byte(`{
	  "type":"CMD",
	  "protocol_version":"1.0",
	  "cmd":"farm:plant",
	  "x":12,"z":30,
	  "item":"wheat_seed"
	}`), &cmd)
	validate(cmdSchema, cmd)

	var events any
	_ = json.Unmarshal([]byte(`{
	  "type":"EVENTS",
	  "tick":420,
	  "events":[
	    {"t":420,"type":"world:update","kind":"tile","x":12,"z":30,"tile":"TILLED"},
	    {"t":420,"type":"time:update","season":0,"day":3,"hour":14}
	  ]
	}`), &events)
	validate(eventsSchema, events)

	var state any
	_ = json.Unmarshal([]byte(`{
	  "type":"STATE",
	  "tick":0,
	  "state":{
	    "playerId":"P0001",
	    "tiles":[{"x":0,"z":0,"type":"GRASS","height":0.42}],
	    "crops":[{"id":"C000001","tileX":12,"tileZ":30,"cropType":"wheat","stage":"SEED","growth":0,"watered":false}],
	    "time":{"season":0,"day":1,"hour":6},
	    "weather":{"weather":"sunny"}
	  }
	}`), &state)
	validate(stateSchema, state)
}
