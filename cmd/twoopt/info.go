package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twoopt/instance"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Parse instances and print their header summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				infos = make([]Info, len(args))
				g     errgroup.Group
			)
			g.SetLimit(a.cfg.Jobs)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					in, err := instance.Load(path)
					if err != nil {
						return err
					}
					infos[i] = newInfo(path, in)
					a.log.Debug("instance parsed", "file", path, "dimension", in.Size())

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				a.log.Error("info failed", "error", err)
				return err
			}

			return writeInfos(cmd.OutOrStdout(), a.cfg.Format, infos)
		},
	}
}
