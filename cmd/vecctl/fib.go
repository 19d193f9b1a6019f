package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawvec/vec"
)

var (
	fibCount  int
	fibRounds int
)

func init() {
	cmd := newFibCmd()
	cmd.Flags().IntVarP(&fibCount, "count", "n", 15, "Fibonacci numbers written per round")
	cmd.Flags().IntVar(&fibRounds, "rounds", 2, "Number of bulk writes")
	rootCmd.AddCommand(cmd)
}

func newFibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib",
		Short: "Bulk-populate Fibonacci numbers through a guarded cursor",
		Long: `The fib command writes the first --count Fibonacci numbers straight into
spare capacity, once per round, then pops the last element and removes
the one at index 3.

Example:
  vecctl fib
  vecctl fib -n 90 --rounds 1 --allocator pages`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFib()
		},
	}
}

// writeFib fills the cursor with F(0), F(1), ...
func writeFib(c *vec.Cursor[uint64]) {
	a, b := uint64(0), uint64(1)
	for c.Remaining() > 0 {
		c.Write(a)
		a, b = b, a+b
	}
}

type fibResult struct {
	Written []uint64 `json:"written"`
	Popped  uint64   `json:"popped"`
	Removed uint64   `json:"removed"`
	Rest    []uint64 `json:"rest"`
}

func runFib() error {
	if fibCount < 1 || fibCount > 94 {
		return fmt.Errorf("count must be in [1, 94], got %d", fibCount)
	}
	if fibRounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", fibRounds)
	}
	s, err := newSession[uint64]()
	if err != nil {
		return err
	}
	defer s.close()

	v := s.Vec()
	defer v.Free()
	for range fibRounds {
		v.BulkPopulateGuarded(vec.Exact(fibCount), writeFib)
	}

	res := fibResult{Written: append([]uint64(nil), v.AsSlice()...)}
	res.Popped, _ = v.Pop()
	if v.Len() > 3 {
		res.Removed = v.Remove(3)
	}
	res.Rest = append([]uint64(nil), v.AsSlice()...)

	if jsonOut {
		return printJSON(res)
	}
	printInfo("After %d fibonacci writes: %v\n", fibRounds, res.Written)
	printInfo("Popped %d\n", res.Popped)
	printInfo("Removed element 3: %d\n", res.Removed)
	printInfo("Remaining: %v\n", res.Rest)
	return s.printStats()
}
