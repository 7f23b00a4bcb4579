package main

import (
	"github.com/mazzegi/log"
	"github.com/spf13/cobra"

	"github.com/mazzegi/finset/env"
	"github.com/mazzegi/finset/expr"
)

type options struct {
	configPath string
	locale     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	e := env.Load(".")
	rootCmd := &cobra.Command{
		Use:           "finset",
		Short:         "Evaluate and check finite set expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", e.StringOrDefault(env.KeyConfig, ""), "TOML file with named sets")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", e.StringOrDefault(env.KeyLocale, ""), "Locale for numbers in the output (default from config)")

	rootCmd.AddCommand(
		newEvalCmd(opts),
		newCheckCmd(opts),
		newListCmd(opts),
	)
	return rootCmd
}

// session is the loaded configuration shared by the subcommands.
type session struct {
	cfg   env.Config
	scope expr.Scope
	out   *printer
}

func (o *options) load(cmd *cobra.Command) (*session, error) {
	cfg := env.Config{Locale: env.DefaultLocale, Sets: map[string][]int{}}
	if o.configPath != "" {
		var err error
		cfg, err = env.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded %d sets from %q", len(cfg.Sets), o.configPath)
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}
	return &session{
		cfg:   cfg,
		scope: expr.ScopeOf(cfg.Sets),
		out:   newPrinter(cmd.OutOrStdout(), cfg.Locale),
	}, nil
}
