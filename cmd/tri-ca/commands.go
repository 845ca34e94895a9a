package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tri-ca/internal/automaton"
	"tri-ca/internal/config"
	"tri-ca/internal/export"
	"tri-ca/internal/render"
)

type cli struct {
	cfg        config.Config
	configPath string
	verbose    bool
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "tri-ca",
		Short:         "Three-state, left-neighbor cellular automata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(c.log)
			return c.loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	c.cfg.Bind(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "table",
			Short: "Print the lookup table of --rule",
			Args:  cobra.NoArgs,
			RunE:  c.runTable,
		},
		&cobra.Command{
			Use:   "evolve",
			Short: "Evolve an automaton and print its spacetime field",
			Args:  cobra.NoArgs,
			RunE:  c.runEvolve,
		},
		&cobra.Command{
			Use:   "render",
			Short: "Evolve an automaton and write its spacetime field as a grayscale PNG",
			Args:  cobra.NoArgs,
			RunE:  c.runRender,
		},
		newRulesCmd(),
		newSurveyCmd(c),
	)
	return root
}

// loadConfig layers flags given on the command line over the config file.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	if c.configPath != "" {
		fileCfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		explicit := map[string]string{}
		flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })
		c.cfg = fileCfg
		for name, value := range explicit {
			if err := flags.Set(name, value); err != nil {
				return fmt.Errorf("reapply --%s: %w", name, err)
			}
		}
		c.log.Debug("config loaded", slog.String("path", c.configPath), slog.Int("overrides", len(explicit)))
	}
	return c.cfg.Validate()
}

// output opens the configured output file, or stdout when none is set.
func (c *cli) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if c.cfg.Output == "" || c.cfg.Output == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(c.cfg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func (c *cli) runTable(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(c.cfg.Format)
	if err != nil {
		return err
	}
	w, closeFn, err := c.output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteTable(w, format, c.cfg.Rule, automaton.TableForRule(c.cfg.Rule)); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func (c *cli) evolve() (*automaton.Automaton, automaton.Field, error) {
	a, err := c.cfg.Automaton()
	if err != nil {
		return nil, nil, err
	}
	field, err := a.SpacetimeField(c.cfg.Time)
	if err != nil {
		return nil, nil, err
	}
	c.log.Debug("evolved",
		slog.Int("rule", a.Rule()),
		slog.Int("length", a.Length()),
		slog.Int("time", c.cfg.Time),
	)
	return a, field, nil
}

func (c *cli) runEvolve(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(c.cfg.Format)
	if err != nil {
		return err
	}
	a, field, err := c.evolve()
	if err != nil {
		return err
	}
	w, closeFn, err := c.output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteField(w, format, export.NewDocument(a, field)); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func (c *cli) runRender(cmd *cobra.Command, args []string) error {
	if c.cfg.Output == "" || c.cfg.Output == "-" {
		return errors.New("render needs --output")
	}
	_, field, err := c.evolve()
	if err != nil {
		return err
	}
	w, closeFn, err := c.output(cmd)
	if err != nil {
		return err
	}
	if err := render.WritePNG(w, field, render.Options{Scale: c.cfg.Scale, Invert: c.cfg.Invert}); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}
	c.log.Info("wrote image", slog.String("path", c.cfg.Output), slog.Int("rows", len(field)))
	return nil
}
