// Command schema writes a JSON schema for the wire protocol, used to keep
// the server implementation and this client agreeing on message shapes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// wireCatalog is the closed set of payloads that may appear in an
// envelope, keyed by the envelope's type tag.
type wireCatalog struct {
	CreateRoom        protocol.CreateRoom        `json:"CreateRoom"`
	JoinRoom          protocol.JoinRoom          `json:"JoinRoom"`
	SetReady          protocol.SetReady          `json:"SetReady"`
	LeaveRoom         protocol.LeaveRoom         `json:"LeaveRoom"`
	PositionUpdate    protocol.PositionUpdate    `json:"PositionUpdate"`
	RoomJoined        protocol.RoomJoined        `json:"RoomJoined"`
	RosterSnapshot    protocol.RosterSnapshot    `json:"RosterSnapshot"`
	PlayerJoined      protocol.PlayerJoined      `json:"PlayerJoined"`
	PlayerLeft        protocol.PlayerLeft        `json:"PlayerLeft"`
	ReadyChanged      protocol.ReadyChanged      `json:"ReadyChanged"`
	GameStarted       protocol.GameStarted       `json:"GameStarted"`
	TreasureCollected protocol.TreasureCollected `json:"TreasureCollected"`
	PlayerMoved       protocol.PlayerMoved       `json:"PlayerMoved"`
	ErrorMsg          protocol.ErrorMsg          `json:"ErrorMsg"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schema := buildSchema()

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(wireCatalog))
	schema.Title = "Maze Hunt Protocol"
	schema.Description = "Envelope payloads exchanged between client and server, keyed by the envelope type tag."
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
