package world

import (
	"fmt"

	"farmstead.gg/internal/protocol"
)

// commandHandler validates and applies one player command. It reports whether
// the command was applied, and a short reason when it was dropped. Dropped
// commands surface nothing to the client; the next delta or full sync
// reconciles any stale client view.
type commandHandler func(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string)

var commandDispatch = map[string]commandHandler{
	protocol.CmdPlayerMove:     handlePlayerMove,
	protocol.CmdFarmTill:       handleFarmTill,
	protocol.CmdFarmPlant:      handleFarmPlant,
	protocol.CmdFarmWater:      handleFarmWater,
	protocol.CmdFarmHarvest:    handleFarmHarvest,
	protocol.CmdFarmFertilize:  handleFarmFertilize,
	protocol.CmdPlaceSprinkler: handlePlaceSprinkler,
	protocol.CmdFishCast:       handleFishCast,
	protocol.CmdFishReel:       handleFishReel,
	protocol.CmdShopBuy:        handleShopBuy,
	protocol.CmdShopSell:       handleShopSell,
	protocol.CmdNPCTalk:        handleNPCTalk,
	protocol.CmdNPCGift:        handleNPCGift,
	protocol.CmdCraftStart:     handleCraftStart,
	protocol.CmdCraftCollect:   handleCraftCollect,
	protocol.CmdToolUpgrade:    handleToolUpgrade,
	protocol.CmdAnimalFeed:     handleAnimalFeed,
	protocol.CmdAnimalCollect:  handleAnimalCollect,
	protocol.CmdPetPlay:        handlePetPlay,
}

var supportedCommands = []string{
	protocol.CmdPlayerMove,
	protocol.CmdFarmTill,
	protocol.CmdFarmPlant,
	protocol.CmdFarmWater,
	protocol.CmdFarmHarvest,
	protocol.CmdFarmFertilize,
	protocol.CmdPlaceSprinkler,
	protocol.CmdFishCast,
	protocol.CmdFishReel,
	protocol.CmdShopBuy,
	protocol.CmdShopSell,
	protocol.CmdNPCTalk,
	protocol.CmdNPCGift,
	protocol.CmdCraftStart,
	protocol.CmdCraftCollect,
	protocol.CmdToolUpgrade,
	protocol.CmdAnimalFeed,
	protocol.CmdAnimalCollect,
	protocol.CmdPetPlay,
}

// validateCommandDispatch keeps the dispatch map and the supported command
// list in lockstep; run at world construction so drift fails fast.
func validateCommandDispatch() error {
	allowed := make(map[string]struct{}, len(supportedCommands))
	for _, k := range supportedCommands {
		if k == "" {
			return fmt.Errorf("commandDispatch: empty supported key")
		}
		if _, ok := allowed[k]; ok {
			return fmt.Errorf("commandDispatch: duplicate supported key %q", k)
		}
		allowed[k] = struct{}{}
	}
	if len(commandDispatch) != len(allowed) {
		return fmt.Errorf("commandDispatch size mismatch: got=%d want=%d", len(commandDispatch), len(allowed))
	}
	for k := range commandDispatch {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("commandDispatch has unsupported key %q", k)
		}
	}
	return nil
}
