package main

import (
	"encoding/json"
	"fmt"
	"tileworld-server/internal/engine"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new world and save it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		w, err := generateWorld(cfg)
		if err != nil {
			return err
		}
		if err := store.Save(cmd.Context(), w); err != nil {
			return err
		}
		return printJSON(cmd, engine.SummarizeWorld(w, 0))
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load a saved world, classify its biome at the camera and print a summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		w, err := store.Load(cmd.Context(), cfg.WorldName, worldOptions(cfg)...)
		if err != nil {
			return err
		}
		centerCamera(w)
		w.ClassifyBiome()
		return printJSON(cmd, engine.SummarizeWorld(w, 0))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved worlds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <world>",
	Short: "Delete a saved world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	addWorldFlags(generateCmd)
	addWorldFlags(inspectCmd)
	addWorldFlags(listCmd)
	addWorldFlags(deleteCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
