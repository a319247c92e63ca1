// Package main is the entry point for the dmc CLI, which converts delta
// documents captured from a rich-text editor into Markdown.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dmc [input-file]",
		Short: "Convert delta JSON documents to Markdown",
		Long: `dmc reads a delta document (a JSON object with an "ops" array of insert
operations) and prints the equivalent Markdown. Reads stdin when no file or "-"
is given.

Flags can also be set in dmc.yaml (current directory or ~/.config/dmc/) or
through DMC_* environment variables, e.g. DMC_EMBEDS=image.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, v, input)
		},
	}

	flags := cmd.Flags()
	flags.String("preset", presetBalanced, "Preset: balanced|strict|images")
	flags.String("embeds", "", "Embed handling: error|image (overrides preset)")
	flags.String("unknown-attributes", "", "Unknown attribute policy: skip|warn|error (overrides preset)")
	flags.String("path", "", "gjson path selecting the delta inside a larger JSON snapshot")
	flags.String("format", formatMarkdown, "Output format: markdown|json")
	flags.Bool("html", false, "Render the Markdown to HTML")
	flags.Bool("inline-errors", false, "Print conversion errors as the document body and exit 0")
	flags.Bool("watch", false, "Re-convert whenever the input file changes")
	cmd.PersistentFlags().String("config", "", "config file (default: ./dmc.yaml or ~/.config/dmc/dmc.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("dmc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dmc"))
		}
	}

	v.SetEnvPrefix("DMC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return err
		}
	}

	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
