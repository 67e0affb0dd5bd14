package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/timsueberkrueb/combine"
)

func newSplitCmd(cfg *combine.Config) *cobra.Command {
	var (
		delim     string
		keepTail  bool
		chunkSize int
	)

	cmd := &cobra.Command{
		Use:   "split <path>",
		Short: "Print the records of a file separated by a delimiter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := unescape(delim)
			if err != nil {
				return err
			}
			if len(d) == 0 {
				return fmt.Errorf("delimiter can't be empty")
			}
			cfg.SetString("split.delim", delim)
			cfg.SetBool("split.keep_tail", keepTail)
			cfg.SetInt("feeder.chunk_size", chunkSize)

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer file.Close()

			if err := runSplit(cmd.OutOrStdout(), file, d, cfg); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", cfg.GetString("split.delim"), "record delimiter, Go string escapes allowed")
	cmd.Flags().BoolVar(&keepTail, "keep-tail", cfg.GetBool("split.keep_tail"), "print the last record even if no delimiter follows it")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", cfg.GetInt("feeder.chunk_size"), "bytes read from the file at a time")

	return cmd
}

// splitRecord reads a record and the delimiter that ends it
func splitRecord(delim []byte) combine.Parser[byte, []byte, []byte, combine.SeqState[[]byte, int, combine.NoState]] {
	return combine.Terminated[byte, []byte, []byte, int, []byte, combine.NoState](
		combine.TakeUntilRange[byte, []byte](delim),
		combine.Range[byte, []byte](delim),
	)
}

func runSplit(w io.Writer, r io.Reader, delim []byte, cfg *combine.Config) error {
	feeder := combine.NewFeeder(splitRecord(delim), cfg)

	records := 0
	err := feeder.Each(r, func(record []byte) error {
		records++
		_, err := fmt.Fprintf(w, "%s\n", record)
		return err
	})
	if errors.Is(err, combine.ErrTargetNotFound) {
		// the last record isn't followed by a delimiter
		err = nil
		if tail := feeder.Rest(); len(tail) > 0 && cfg.GetBool("split.keep_tail") {
			records++
			_, err = fmt.Fprintf(w, "%s\n", tail)
		}
	}
	if err != nil {
		return located(feeder, err)
	}
	log.Infof("split %d records out of %d bytes", records, feeder.Offset()+len(feeder.Rest()))
	return nil
}

func unescape(s string) ([]byte, error) {
	v, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return nil, fmt.Errorf("invalid delimiter %q: %w", s, err)
	}
	return []byte(v), nil
}
