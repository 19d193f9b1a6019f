package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawvec/vec"
)

var nestedRows int

func init() {
	cmd := newNestedCmd()
	cmd.Flags().IntVarP(&nestedRows, "rows", "n", 5, "Number of cloned inner Vecs")
	rootCmd.AddCommand(cmd)
}

func newNestedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nested",
		Short: "Clone a Vec into a Vec of Vecs and mutate each clone",
		Long: `The nested command clones a one-element Vec --rows times into an outer
Vec, pushes a distinct string onto each clone, then deep-clones the outer
Vec to show the copies are independent. String elements always use the
heap allocator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNested()
		},
	}
}

type nestedResult struct {
	Template []string   `json:"template"`
	Rows     [][]string `json:"rows"`
	Clone    [][]string `json:"clone"`
}

func runNested() error {
	if nestedRows < 0 {
		return fmt.Errorf("rows must be non-negative, got %d", nestedRows)
	}
	tmpl := vec.Of("vec")
	outer := vec.Fill(tmpl, nestedRows)
	for i, row := range outer.All() {
		row.Push(fmt.Sprintf("number %d", i))
	}

	copied := outer.Clone()
	for _, row := range copied.All() {
		row.Push("cloned")
	}

	res := nestedResult{Template: tmpl.AsSlice()}
	for _, row := range outer.All() {
		res.Rows = append(res.Rows, row.AsSlice())
	}
	for _, row := range copied.All() {
		res.Clone = append(res.Clone, row.AsSlice())
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("Template: %q\n", res.Template)
	for i := range res.Rows {
		printInfo("Row %d: %q\n", i, res.Rows[i])
		printVerbose("  clone: %q\n", res.Clone[i])
	}
	return nil
}
