package main

import (
	"fmt"
	"os"
	"tileworld-server/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "tileworld-server",
	Short: "Tile world simulation server",
	Long:  `Tile world server: runs the world loop, classifies biomes and streams frames to websocket observers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitWith(logger.Options{Level: logLevel, Format: logFormat})
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); LOG_LEVEL by default")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text or json); LOG_FORMAT by default")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}
