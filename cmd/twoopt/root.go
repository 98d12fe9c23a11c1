package main

import (
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config
	log *slog.Logger
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	root := &cobra.Command{
		Use:   "twoopt",
		Short: "Nearest-neighbor + 2-opt solver for symmetric TSPLIB instances",
		Long: `
Builds a nearest-neighbor tour for each coordinate instance (EUC_2D, ATT,
CEIL_2D) and improves it with 2-opt local search using don't-look bits
until no single edge exchange shortens the tour.

Settings come from flags, TWOOPT_* environment variables, or a config file
($HOME/.twoopt.yaml by default).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default is $HOME/.twoopt.yaml)")
	pf.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	pf.StringP(keyFormat, "f", formatText, "report format: text, yaml, json")
	pf.IntP(keyJobs, "j", runtime.GOMAXPROCS(0), "instances processed concurrently")

	root.AddCommand(newSolveCmd(a), newInfoCmd(a))

	return root
}

// setup binds the executing command's flags, reads env and config file,
// validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := readConfigFile(a.v); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config file loaded", "path", used)
	}

	return nil
}
