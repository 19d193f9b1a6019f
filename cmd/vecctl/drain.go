package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawvec/vec"
)

var (
	drainCount int
	drainStart int
	drainEnd   int
)

func init() {
	cmd := newDrainCmd()
	cmd.Flags().IntVarP(&drainCount, "count", "n", 8, "Elements 1..n in the source Vec")
	cmd.Flags().IntVar(&drainStart, "start", 1, "First index drained")
	cmd.Flags().IntVar(&drainEnd, "end", 5, "Index one past the last drained")
	rootCmd.AddCommand(cmd)
}

func newDrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Drain a range and collect it into a new Vec",
		Long: `The drain command fills a Vec with 1..--count, drains [--start, --end)
into a second Vec and prints both.

Example:
  vecctl drain
  vecctl drain -n 100 --start 10 --end 90 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrain()
		},
	}
}

type drainResult struct {
	Before  []int64 `json:"before"`
	Drained []int64 `json:"drained"`
	After   []int64 `json:"after"`
}

func runDrain() error {
	if drainStart < 0 || drainStart > drainEnd || drainEnd > drainCount {
		return fmt.Errorf("range [%d, %d) out of bounds for %d elements", drainStart, drainEnd, drainCount)
	}
	s, err := newSession[int64]()
	if err != nil {
		return err
	}
	defer s.close()

	v := s.Vec()
	defer v.Free()
	v.BulkPopulateGuarded(vec.Exact(drainCount), func(c *vec.Cursor[int64]) {
		for i := range drainCount {
			c.Write(int64(i + 1))
		}
	})
	res := drainResult{Before: append([]int64(nil), v.AsSlice()...)}

	d := v.Drain(drainStart, drainEnd)
	drained := vec.CollectIn(s.alloc, d)
	d.Close()
	defer drained.Free()

	res.Drained = append([]int64(nil), drained.AsSlice()...)
	res.After = append([]int64(nil), v.AsSlice()...)

	if jsonOut {
		return printJSON(res)
	}
	printInfo("Original: %v\n", res.Before)
	printInfo("Drained:  %v\n", res.Drained)
	printInfo("After:    %v\n", res.After)
	return s.printStats()
}
