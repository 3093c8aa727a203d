package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

var exampleForDayCmd = `
advent day 3
advent day 3 --input schematic.txt
`

// NewDayCmd returns the command that solves a single day.
func NewDayCmd() *cobra.Command {
	var input string
	dayCmd := &cobra.Command{
		Use:     "day <n>",
		Short:   "solve one day and print its answers",
		Example: exampleForDayCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid day %q", args[0])
			}
			reg, err := registry()
			if err != nil {
				return err
			}
			solver, err := reg.Lookup(day)
			if err != nil {
				return err
			}
			answers, err := run(cmd.Context(), solver, input)
			if err != nil {
				return err
			}
			for _, a := range answers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.Label, formatValue(a))
			}
			return nil
		},
	}
	dayCmd.Flags().StringVarP(&input, "input", "i", puzzle.DefaultInput, "path of the puzzle input")
	return dayCmd
}
