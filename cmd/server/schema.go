package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"tileworld-server/internal/engine/handlers/admin"
	"tileworld-server/internal/version"
	"tileworld-server/pkg/api"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print JSON schemas of the websocket protocol",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := json.MarshalIndent(buildSchemas(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		data = append(data, '\n')

		if schemaOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return writeSchema(schemaOut, data)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, version.Info())
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "Write schemas to a file instead of stdout")
}

// buildSchemas - схемы сообщений сервера, команд наблюдателя и их payload'ов
func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	schemas := map[string]*jsonschema.Schema{
		"server_response": reflector.Reflect(new(api.ServerResponse)),
		"client_command":  reflector.Reflect(new(api.ClientCommand)),
		"camera":          reflector.Reflect(new(api.CameraPayload)),
		"resize":          reflector.Reflect(new(api.ResizePayload)),
		"spawn_enemy":     reflector.Reflect(new(api.SpawnEnemyPayload)),
		"spawn_drop":      reflector.Reflect(new(api.SpawnDropPayload)),
		"set_block":       reflector.Reflect(new(api.SetBlockPayload)),
		"set_wall":        reflector.Reflect(new(api.SetWallPayload)),
		"teleport":        reflector.Reflect(new(admin.TeleportPayload)),
		"kill":            reflector.Reflect(new(admin.KillPayload)),
	}
	schemas["server_response"].Title = "Tile world server message"
	schemas["client_command"].Title = "Tile world observer command"
	return schemas
}

func writeSchema(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
