package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var growthCount int

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVarP(&growthCount, "count", "n", 5, "Number of elements to push")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Push elements and show the capacity curve",
		Long: `The growth command pushes --count elements onto an empty Vec, reporting
length and capacity after each push, then pops one more time than it
pushed to show that popping an empty Vec is not an error.

Example:
  vecctl growth
  vecctl growth -n 1000 --allocator offheap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth()
		},
	}
}

type growthStep struct {
	Push  int    `json:"push"`
	Len   int    `json:"len"`
	Cap   int    `json:"cap"`
	Block string `json:"block"`
}

type growthResult struct {
	Steps []growthStep `json:"steps"`
	Pops  []*int64     `json:"pops"`
	Stats allocStats   `json:"allocator"`
}

func runGrowth() error {
	if growthCount < 0 {
		return fmt.Errorf("count must be non-negative, got %d", growthCount)
	}
	s, err := newSession[int64]()
	if err != nil {
		return err
	}
	defer s.close()

	v := s.Vec()
	res := growthResult{}
	for i := 1; i <= growthCount; i++ {
		v.Push(int64(i))
		res.Steps = append(res.Steps, growthStep{
			Push:  i,
			Len:   v.Len(),
			Cap:   v.Cap(),
			Block: blockSize[int64](v.Cap()),
		})
	}
	for range growthCount + 1 {
		if x, ok := v.Pop(); ok {
			res.Pops = append(res.Pops, &x)
		} else {
			res.Pops = append(res.Pops, nil)
		}
	}
	v.Free()

	if res.Stats, err = s.stats(); err != nil {
		return err
	}
	if jsonOut {
		return printJSON(res)
	}

	for _, st := range res.Steps {
		printInfo("After push %d: len=%d cap=%d (%s)\n", st.Push, st.Len, st.Cap, st.Block)
	}
	for i, x := range res.Pops {
		if x == nil {
			printInfo("Pop %d: empty\n", i+1)
			continue
		}
		printVerbose("Pop %d: %d\n", i+1, *x)
	}
	printInfo("Allocator (%s): %s\n", allocName(), res.Stats)
	return nil
}
