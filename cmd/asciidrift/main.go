//go:build !js
// +build !js

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlofgren/asciidrift/common"
	"github.com/jlofgren/asciidrift/effect"
)

var version = "0.1.0-dev"

func main() {
	var (
		configPath string
		logPath    string
		seed       uint32
		fps        int
		showFPS    bool
	)

	rootCmd := &cobra.Command{
		Use:   "asciidrift",
		Short: "Cursor-trail ASCII effect in your terminal",
		Long: `asciidrift renders a grid of characters whose brightness follows the
mouse cursor through layered gradient noise, leaving an organic trail
that decays when the cursor stops.

Move the mouse inside the terminal; press q or Esc to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := effect.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = loadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(logPath)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if seed == 0 {
				seed = uint32(time.Now().UnixNano())
			}

			app, err := newTermApp(cfg, common.NewSeededRNG(seed), logger, fps, showFPS)
			if err != nil {
				return err
			}
			defer app.cleanup()

			app.run()
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file overriding the default tuning")
	rootCmd.Flags().StringVar(&logPath, "log", "", "Write debug logs to this file (disabled when empty)")
	rootCmd.Flags().Uint32Var(&seed, "seed", 0, "Noise permutation seed (0 = derive from clock)")
	rootCmd.Flags().IntVar(&fps, "fps", 30, "Target frames per second")
	rootCmd.Flags().BoolVar(&showFPS, "show-fps", false, "Show the achieved frame rate in the corner")

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("asciidrift version %s\n", version)
		},
	}
}
