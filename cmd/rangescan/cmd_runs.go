package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/timsueberkrueb/combine"
)

var classes = map[string]func(byte) bool{
	"digit":  func(b byte) bool { return b >= '0' && b <= '9' },
	"letter": func(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') },
	"space":  func(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' },
}

func newRunsCmd(cfg *combine.Config) *cobra.Command {
	var (
		class     string
		chunkSize int
	)

	cmd := &cobra.Command{
		Use:   "runs <path>",
		Short: "Print the runs of bytes of a class found in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inClass, ok := classes[class]
			if !ok {
				return fmt.Errorf("unknown class `%s`, expected digit, letter or space", class)
			}
			cfg.SetString("runs.class", class)
			cfg.SetInt("feeder.chunk_size", chunkSize)

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer file.Close()

			if err := runRuns(cmd.OutOrStdout(), file, inClass, cfg); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&class, "class", "k", cfg.GetString("runs.class"), "byte class: digit, letter or space")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", cfg.GetInt("feeder.chunk_size"), "bytes read from the file at a time")

	return cmd
}

type runState = combine.SeqState[combine.NoState, combine.SkipState[combine.NoState], int]

// classRun skips bytes outside the class and reads the run that
// follows, which is empty at the end of the input
func classRun(inClass func(byte) bool) combine.Parser[byte, []byte, []byte, runState] {
	outside := combine.Satisfy[byte, []byte](func(b byte) bool { return !inClass(b) })
	return combine.Preceded[byte, []byte, combine.NoState, combine.SkipState[combine.NoState], []byte, int](
		combine.SkipMany[byte, []byte, byte, combine.NoState](outside),
		combine.TakeWhile[byte, []byte](inClass),
	)
}

func runRuns(w io.Writer, r io.Reader, inClass func(byte) bool, cfg *combine.Config) error {
	feeder := combine.NewFeeder(classRun(inClass), cfg)

	runs := 0
	err := feeder.Each(r, func(run []byte) error {
		if len(run) == 0 {
			return nil
		}
		runs++
		_, err := fmt.Fprintf(w, "%s\n", run)
		return err
	})
	if err != nil {
		return located(feeder, err)
	}
	log.Infof("found %d runs", runs)
	return nil
}
