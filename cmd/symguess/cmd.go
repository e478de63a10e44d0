package main

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vietanhduong/symguess/pkg/config"
	"github.com/vietanhduong/symguess/pkg/guess"
	"github.com/vietanhduong/symguess/pkg/logging"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
	"github.com/vietanhduong/symguess/pkg/report"
	"github.com/vietanhduong/symguess/pkg/syms"
	"github.com/vietanhduong/symguess/pkg/syms/cache"
)

var errUsage = errors.New("older and newer symbol lists are required")

func newCommand(stdout io.Writer) *cobra.Command {
	this := &cobra.Command{
		Use:   "symguess <older_path> <newer_path>",
		Short: "Guess the new address of functions lost during binary version tracking.",
		Long:  helpMessage,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetupLoggingWithViper(v)
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			log := logging.DefaultLogger.WithField(logfields.LogComponent, "cmd")

			older, err := syms.Load(args[0])
			if err != nil {
				return fmt.Errorf("load older symbols: %w", err)
			}
			newer, err := syms.Load(args[1])
			if err != nil {
				return fmt.Errorf("load newer symbols: %w", err)
			}

			finder, err := newFinder(cfg, newer)
			if err != nil {
				return err
			}
			resolver, err := guess.NewResolver(older, newer,
				guess.WithTolerance(cfg.Tolerance),
				guess.WithAlignment(cfg.Alignment),
				guess.WithWorkers(cfg.Workers),
				guess.WithFinder(finder),
			)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer cancel()

			reporter := report.NewReporter(stdout, report.NewFormatter(cfg.Color, stdout, cfg.Demangle))
			if err = resolver.Run(ctx, reporter.Report); err != nil {
				return err
			}

			fields := resolver.Stats().Fields()
			if c, ok := finder.(*cache.Cache); ok {
				fields["cache_hits"] = c.TotalHits()
				fields["cache_evicted"] = c.TotalEvicted()
			}
			log.WithFields(fields).WithFields(logrus.Fields{
				logfields.Symbols: older.Len(),
				"lines":           reporter.Lines(),
			}).Info("Finished")
			return nil
		},
	}

	this.SetOut(stdout)
	this.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n\nFlags:\n%s", usageLine, helpMessage, cmd.Flags().FlagUsages())
	})
	config.RegisterFlags(this.Flags())
	return this
}

func newFinder(cfg *config.Config, newer *syms.List) (syms.Finder, error) {
	log := logging.DefaultLogger.WithField(logfields.LogComponent, "cmd")
	log.WithFields(logrus.Fields{
		logfields.Matcher: cfg.Matcher,
		"cache_size":      cfg.CacheSize,
	}).Debug("Building matcher")

	if cfg.Matcher == config.MatcherIndex {
		return syms.NewIndex(newer), nil
	}
	scanner := syms.NewScanner(newer)
	if cfg.CacheSize == 0 {
		return scanner, nil
	}
	c, err := cache.New(scanner.Find, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("new lookup cache: %w", err)
	}
	return c, nil
}
