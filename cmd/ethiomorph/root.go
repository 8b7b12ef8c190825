// Root command for the ethiomorph CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethiomorph/ethiomorph"
	"github.com/ethiomorph/ethiomorph/internal/app"
	"github.com/ethiomorph/ethiomorph/internal/config"
	"github.com/ethiomorph/ethiomorph/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds the state PersistentPreRunE prepares for subcommands.
type cli struct {
	configFile string

	cfg    *config.Config
	logger *zap.Logger
	engine *ethiomorph.Engine
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "ethiomorph",
		Short: "Ge'ez root extraction and verb generation",
		Long: `ethiomorph analyses Ge'ez words back to their consonantal roots and
generates conjugations, derived nominals and stem forms from roots.

Every command prints JSON.`,
		Version:       ethiomorph.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default: ./ethiomorph.yaml if present)")
	pf.String("data-dir", "", "directory holding lexicon.json, templates.json and stems.json (default: embedded data)")
	pf.String("log-level", "", "log level: debug, info, warn or error (default info)")
	pf.String("log-format", "", "log format: json or console (default json)")

	root.AddCommand(
		newAnalyzeCmd(c),
		newGenerateCmd(c),
		newExpandCmd(c),
		newDerivedCmd(c),
		newStemsCmd(c),
		newTemplatesCmd(c),
		newServeCmd(c),
	)
	return root
}

// init loads configuration, the logger and the engine.
func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	engine, err := app.OpenEngine(cfg, logger)
	if err != nil {
		return err
	}
	c.cfg, c.logger, c.engine = cfg, logger, engine
	return nil
}

// printJSON writes v to the command's output as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
