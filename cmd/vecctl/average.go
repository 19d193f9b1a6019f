package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
)

var (
	averageCount int
	averageSeed  uint64
)

func init() {
	cmd := newAverageCmd()
	cmd.Flags().IntVarP(&averageCount, "count", "n", 10, "Number of random values")
	cmd.Flags().Uint64Var(&averageSeed, "seed", 1, "Random seed")
	rootCmd.AddCommand(cmd)
}

func newAverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average",
		Short: "Average neighbours in place through a mutable iterator",
		Long: `The average command pushes --count random values in [0, 100) and
replaces each one, except the last, with the mean of itself and its
successor, mutating the Vec in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAverage()
		},
	}
}

type averageResult struct {
	Original []float32 `json:"original"`
	Averaged []float32 `json:"averaged"`
}

func runAverage() error {
	if averageCount < 0 {
		return fmt.Errorf("count must be non-negative, got %d", averageCount)
	}
	s, err := newSession[float32]()
	if err != nil {
		return err
	}
	defer s.close()

	rng := rand.New(rand.NewPCG(averageSeed, averageSeed))
	v := s.Vec()
	defer v.Free()
	for range averageCount {
		v.Push(rng.Float32() * 100)
	}
	res := averageResult{Original: append([]float32(nil), v.AsSlice()...)}

	it := v.IterMut()
	for cur, ok := it.Next(); ok; cur, ok = it.Next() {
		if next, ok := it.Peek(); ok {
			*cur = (*cur + *next) / 2
		}
	}
	res.Averaged = append([]float32(nil), v.AsSlice()...)

	if jsonOut {
		return printJSON(res)
	}
	printInfo("Original: %.2f\n", res.Original)
	printInfo("Averaged: %.2f\n", res.Averaged)
	return s.printStats()
}
