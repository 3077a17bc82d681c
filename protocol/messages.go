package protocol

import "encoding/json"

// Envelope
type MsgEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ================= C -> S =================

type CreateRoom struct {
	Name string `json:"name"`
}

type JoinRoom struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

type SetReady struct {
	Ready bool `json:"ready"`
}

type LeaveRoom struct{}

// PositionUpdate reports the local player's continuous position. Sent at
// ReportIntervalMs, not every frame.
type PositionUpdate struct {
	X  float64 `json:"x"`
	Z  float64 `json:"z"`
	Ts int64   `json:"ts"` // client timestamp (Unix ms)
}

// ================= S -> C =================

type RoomJoined struct {
	Room     string   `json:"room"`
	PlayerID string   `json:"playerId"`
	Players  []Player `json:"players"`
}

// RosterSnapshot replaces the whole player mapping.
type RosterSnapshot struct {
	Players []Player `json:"players"`
}

type PlayerJoined struct {
	Player Player `json:"player"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

type ReadyChanged struct {
	PlayerID string `json:"playerId"`
	Ready    bool   `json:"ready"`
}

// GameStarted carries the whole session setup in one payload.
type GameStarted struct {
	Maze      Maze       `json:"maze"`
	Treasures []Treasure `json:"treasures"`
	Players   []Player   `json:"players"`
	StartedAt int64      `json:"startedAt"` // Unix ms
}

type TreasureCollected struct {
	TreasureID string `json:"treasureId"`
	PlayerID   string `json:"playerId"`
}

type PlayerMoved struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
}

type ErrorMsg struct {
	Message string `json:"message"`
}
