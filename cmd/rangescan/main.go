package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/timsueberkrueb/combine"
)

var log = commonlog.GetLogger("rangescan")

func main() {
	var verbosity int
	cfg := combine.NewConfig()

	rootCmd := &cobra.Command{
		Use:          "rangescan",
		Short:        "Stream files through zero-copy range parsers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.SetInt("log.verbosity", verbosity)
			commonlog.Configure(cfg.GetInt("log.verbosity"), nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more, repeat for debug output")

	rootCmd.AddCommand(newSplitCmd(cfg))
	rootCmd.AddCommand(newRunsCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newConfigCmd(cfg *combine.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg.Debug(cmd.OutOrStdout())
		},
	}
}

// located prefixes err with the line and column it refers to.  Parse
// errors carry their own position; a full buffer is reported where the
// record that didn't fit begins.
func located[O, S any](feeder *combine.Feeder[O, S], err error) error {
	var perr *combine.Error
	switch {
	case errors.As(err, &perr):
		return fmt.Errorf("%s: %w", feeder.Location(perr.Position), err)
	case errors.Is(err, combine.ErrBufferFull):
		return fmt.Errorf("%s: record %w", feeder.Location(feeder.Offset()), err)
	default:
		return err
	}
}
