package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawvec/vec"
)

var (
	extendHint    string
	extendCount   int
	extendPanicAt int
)

func init() {
	cmd := newExtendCmd()
	cmd.Flags().StringVar(&extendHint, "hint", "exact", "Size hint: exact, staged, unbounded or lower")
	cmd.Flags().IntVarP(&extendCount, "count", "n", 6, "Elements the source yields")
	cmd.Flags().IntVar(&extendPanicAt, "panic-at", -1, "Pull index at which the source panics (-1: never)")
	rootCmd.AddCommand(cmd)
}

func newExtendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend",
		Short: "Extend from a source and report the reservation pattern",
		Long: `The extend command appends --count elements from a source reporting the
chosen --hint, then prints the resulting length, capacity and allocator
traffic. With --panic-at the source panics on that pull; the command
reports the length the Vec kept.

Hints:
  exact      (n, n)
  staged     (n/2, n)
  unbounded  (0, none)
  lower      (n/2, none)

Example:
  vecctl extend --hint unbounded -n 10 --panic-at 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtend()
		},
	}
}

// demoSource yields 0, 1, 2, ... and can be told to panic.
type demoSource struct {
	pulls   int
	count   int
	panicAt int
	hint    vec.SizeHint
}

func (s *demoSource) Next() (int64, bool) {
	if s.pulls == s.panicAt {
		panic(fmt.Sprintf("source panicked on pull %d", s.pulls))
	}
	if s.pulls >= s.count {
		return 0, false
	}
	s.pulls++
	return int64(s.pulls - 1), true
}

func (s *demoSource) SizeHint() vec.SizeHint { return s.hint }

func hintFor(name string, n int) (vec.SizeHint, error) {
	switch name {
	case "exact":
		return vec.Exactly(n), nil
	case "staged":
		return vec.Between(n/2, n), nil
	case "unbounded":
		return vec.Unknown(), nil
	case "lower":
		return vec.AtLeast(n / 2), nil
	default:
		return vec.SizeHint{}, fmt.Errorf("unknown hint %q (want exact, staged, unbounded or lower)", name)
	}
}

type extendResult struct {
	Hint     string     `json:"hint"`
	Len      int        `json:"len"`
	Cap      int        `json:"cap"`
	Panicked string     `json:"panicked,omitempty"`
	Stats    allocStats `json:"allocator"`
}

func runExtend() error {
	if extendCount < 0 {
		return fmt.Errorf("count must be non-negative, got %d", extendCount)
	}
	hint, err := hintFor(extendHint, extendCount)
	if err != nil {
		return err
	}
	s, err := newSession[int64]()
	if err != nil {
		return err
	}
	defer s.close()

	v := s.Vec()
	defer v.Free()
	res := extendResult{Hint: extendHint}
	res.Panicked = extendCatching(v, &demoSource{count: extendCount, panicAt: extendPanicAt, hint: hint})
	res.Len, res.Cap = v.Len(), v.Cap()
	if res.Stats, err = s.stats(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	if res.Panicked != "" {
		printInfo("Source panicked: %s\n", res.Panicked)
	}
	printInfo("Hint %s: len=%d cap=%d\n", res.Hint, res.Len, res.Cap)
	printVerbose("Contents: %v\n", v.AsSlice())
	printInfo("Allocator (%s): %s\n", allocName(), res.Stats)
	return nil
}

// extendCatching runs Extend and reports a source panic instead of
// crashing, so the surviving length can be shown.
func extendCatching(v *vec.Vec[int64], src vec.Source[int64]) (panicked string) {
	defer func() {
		if r := recover(); r != nil {
			panicked = fmt.Sprint(r)
		}
	}()
	v.Extend(src)
	return ""
}
