package system

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/platformsim/internal/domain/entity"
)

// EntitySnapshot is the kinematic state of one entity
type EntitySnapshot struct {
	ID       entity.EntityID `msgpack:"id"`
	Kind     string          `msgpack:"k"`
	X        float64         `msgpack:"x"`
	Y        float64         `msgpack:"y"`
	VX       float64         `msgpack:"vx"`
	VY       float64         `msgpack:"vy"`
	OnGround bool            `msgpack:"g"`
	Health   int             `msgpack:"hp"`
	State    string          `msgpack:"st,omitempty"`
}

// Snapshot is a canonical, order-independent view of a world.
// Entities are sorted by ID so two worlds holding the same entities in a
// different slice order encode identically.
type Snapshot struct {
	Frame    uint64           `msgpack:"f"`
	Score    int              `msgpack:"score"`
	Gold     int              `msgpack:"gold"`
	Entities []EntitySnapshot `msgpack:"e"`
}

// TakeSnapshot captures every active entity in the world
func TakeSnapshot(w *entity.World) Snapshot {
	snap := Snapshot{Frame: w.Frame}

	if p := w.Player; p != nil {
		snap.Score = p.Score
		snap.Gold = p.Gold
		snap.Entities = append(snap.Entities, bodySnapshot(&p.Body, "player", ""))
	}
	for _, e := range w.Enemies {
		if e.Active {
			snap.Entities = append(snap.Entities, bodySnapshot(&e.Body, e.Kind, e.State.String()))
		}
	}
	for _, it := range w.Items {
		if it.Active {
			snap.Entities = append(snap.Entities, bodySnapshot(&it.Body, it.Kind, ""))
		}
	}
	for _, p := range w.Projectiles {
		if p.Active {
			snap.Entities = append(snap.Entities, bodySnapshot(&p.Body, "projectile", ""))
		}
	}

	slices.SortFunc(snap.Entities, func(a, b EntitySnapshot) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return snap
}

func bodySnapshot(b *entity.Body, kind, state string) EntitySnapshot {
	return EntitySnapshot{
		ID:       b.ID,
		Kind:     kind,
		X:        b.X,
		Y:        b.Y,
		VX:       b.VX,
		VY:       b.VY,
		OnGround: b.OnGround,
		Health:   b.Health,
		State:    state,
	}
}

// Encode serializes the snapshot with msgpack
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}

// Digest returns a hex SHA-256 of the encoded snapshot. Float fields are
// encoded bit-exactly, so equal digests mean bit-identical state.
func (s Snapshot) Digest() (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
