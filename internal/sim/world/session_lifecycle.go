package world

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"farmstead.gg/internal/protocol"
)

// handleJoin resolves one join request on the loop goroutine: resume token
// first, then durable row by name, then a fresh farmer. The response carries
// the WELCOME frame; the full STATE snapshot is queued right behind it.
func (w *World) handleJoin(req JoinRequest, nowTick uint64) {
	p := w.resolvePlayer(req)

	if old, ok := w.clients[p.ID]; ok && old.Out != req.Out {
		// A second connection for the same farmer evicts the first; the
		// stale socket sees its channel close and hangs up.
		close(old.Out)
	}
	w.clients[p.ID] = &Client{PlayerID: p.ID, Out: req.Out}

	token := uuid.NewString()
	w.resumeTokens[token] = p.ID

	w.log.WithFields(logrus.Fields{
		"player": p.ID, "name": p.Name, "clients": len(w.clients),
	}).Info("player joined")

	req.Resp <- JoinResponse{
		PlayerID:    p.ID,
		ResumeToken: token,
		Welcome: protocol.WelcomeMsg{
			Type:            protocol.TypeWelcome,
			ProtocolVersion: protocol.Version,
			PlayerID:        p.ID,
			SessionID:       uuid.NewString(),
			ResumeToken:     token,
			WorldParams: protocol.WorldParams{
				TickRateHz:    w.cfg.TickRateHz,
				TimeScale:     w.cfg.TimeScale,
				HoursPerDay:   w.cfg.HoursPerDay,
				DaysPerSeason: w.cfg.DaysPerSeason,
				WorldSize:     w.cfg.Size,
				Seed:          w.cfg.Seed,
			},
			Catalogs: protocol.Digests{
				Crops:       w.catalogs.Crops.Digest,
				Fish:        w.catalogs.Fish.Digest,
				Items:       w.catalogs.Items.Digest,
				Fertilizers: w.catalogs.Fertilizers.Digest,
				Recipes:     w.catalogs.Recipes.Digest,
				NPCs:        w.catalogs.NPCs.Digest,
				Shop:        w.catalogs.Shop.Digest,
			},
		},
	}

	w.sendFullState(nowTick, p.ID)
	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "player:joined",
		"player": p.ID,
		"name":   p.Name,
		"x":      p.X,
		"z":      p.Z,
	})
}

func (w *World) resolvePlayer(req JoinRequest) *Player {
	if req.ResumeToken != "" {
		if id, ok := w.resumeTokens[req.ResumeToken]; ok {
			if p, ok := w.players[id]; ok {
				delete(w.resumeTokens, req.ResumeToken)
				return p
			}
		}
	}
	if id, ok := w.nameToID[req.Name]; ok {
		if p, ok := w.players[id]; ok {
			return p
		}
	}
	if p := w.loadPlayer(req.Name); p != nil {
		return p
	}
	return w.createPlayer(req.Name)
}

// loadPlayer rebuilds a farmer from durable rows, or returns nil when none
// exist.
func (w *World) loadPlayer(name string) *Player {
	if w.store == nil {
		return nil
	}
	row, skills, items, ok, err := w.store.LoadPlayer(w.cfg.ID, name)
	if err != nil {
		w.log.WithError(err).WithField("name", name).Error("player load failed; starting fresh")
		return nil
	}
	if !ok {
		return nil
	}

	// Keep the id counter ahead of every durable id so new farmers never
	// collide with stored rows.
	var n uint64
	if _, err := fmt.Sscanf(row.ID, "P%d", &n); err == nil && n > w.nextPlayerNum {
		w.nextPlayerNum = n
	}

	p := &Player{
		ID: row.ID, Name: row.Name,
		X: row.X, Z: row.Z,
		Coins: row.Coins, Energy: row.Energy, MaxEnergy: row.MaxEnergy,
	}
	if row.Professions != "" {
		p.Professions = strings.Split(row.Professions, ",")
	}
	p.initDefaults(w.cfg.StartingMaxEnergy, w.cfg.StartingCoins)
	for _, s := range skills {
		p.Skills[s.Skill] = &Skill{Level: s.Level, XP: s.XP}
	}
	for _, it := range items {
		p.AddItem(it.ItemID, it.Quantity, Quality(it.Quality))
	}

	rels, err := w.store.LoadRelationships(p.ID)
	if err != nil {
		w.log.WithError(err).WithField("player", p.ID).Error("relationship load failed")
	}
	for _, r := range rels {
		w.rels[relKey{PlayerID: r.PlayerID, NPCID: r.NPCID}] = &Relationship{
			PlayerID: r.PlayerID, NPCID: r.NPCID,
			Hearts: r.Hearts, TalkedToday: r.TalkedToday,
		}
	}

	w.players[p.ID] = p
	w.nameToID[p.Name] = p.ID
	w.ensurePet(p.ID)
	return p
}

func (w *World) createPlayer(name string) *Player {
	w.nextPlayerNum++
	p := &Player{
		ID:   fmt.Sprintf("P%04d", w.nextPlayerNum),
		Name: name,
	}
	fx, fz, _, _ := farmZone(w.cfg.Size)
	p.X = fx + 2
	p.Z = fz + 2
	p.initDefaults(w.cfg.StartingMaxEnergy, w.cfg.StartingCoins)
	p.AddItem("wheat_seed", 10, QualityNormal)

	w.players[p.ID] = p
	w.nameToID[p.Name] = p.ID
	w.ensurePet(p.ID)
	w.flushPlayer(p)
	return p
}

// ensurePet gives every farmer exactly one companion.
func (w *World) ensurePet(playerID string) {
	if w.petOf(playerID) != nil {
		return
	}
	id := "PET_" + playerID
	w.pets[id] = &Pet{ID: id, OwnerID: playerID, Kind: "dog", Loyalty: 50}
}

// handleLeave detaches the client and checkpoints the farmer. The player
// entity stays resident so a reconnect picks up exactly where it left off.
// A leave from an already-evicted connection is ignored.
func (w *World) handleLeave(req LeaveRequest, nowTick uint64) {
	c, ok := w.clients[req.PlayerID]
	if !ok || (req.Out != nil && c.Out != req.Out) {
		return
	}
	delete(w.clients, req.PlayerID)
	close(c.Out)

	if p, ok := w.players[req.PlayerID]; ok {
		w.flushPlayer(p)
	}
	w.log.WithFields(logrus.Fields{
		"player": req.PlayerID, "clients": len(w.clients),
	}).Info("player left")
	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "player:left",
		"player": req.PlayerID,
	})
}
