package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReserveCmd())
}

func newReserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve",
		Short: "Walk through exact and amortized reservation",
		Long: `The reserve command reserves exactly 9 slots, writes 3 elements,
shrinks to fit, truncates to 2 and finally reserves 6 more, printing the
capacity after every step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserve()
		},
	}
}

type reserveStep struct {
	Step string `json:"step"`
	Len  int    `json:"len"`
	Cap  int    `json:"cap"`
}

func runReserve() error {
	s, err := newSession[int32]()
	if err != nil {
		return err
	}
	defer s.close()

	v := s.Vec()
	var steps []reserveStep
	record := func(step string) {
		steps = append(steps, reserveStep{Step: step, Len: v.Len(), Cap: v.Cap()})
	}

	v.ReserveExact(9)
	record("reserve exact 9")
	v.ExtendSlice([]int32{1, 2, 3})
	record("extend 3")
	v.ShrinkToFit()
	record("shrink to fit")
	v.Truncate(2)
	record("truncate 2")
	v.Reserve(6)
	record("reserve 6")
	v.Free()

	if jsonOut {
		return printJSON(steps)
	}
	for _, st := range steps {
		printInfo("%-16s len=%d cap=%d\n", st.Step, st.Len, st.Cap)
	}
	return s.printStats()
}
