package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

var longAllCmdDescription = `Solve every registered day. The input of day N is read from
<dir>/<NN>/input.txt, for example ./03/input.txt. Any failure aborts the run.
`

// NewAllCmd returns the command that solves every day and renders a table.
func NewAllCmd() *cobra.Command {
	var dir string
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "solve every day and print a summary table",
		Long:  longAllCmdDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, s := range reg.All() {
				path := filepath.Join(dir, fmt.Sprintf("%02d", s.Day), puzzle.DefaultInput)
				answers, err := run(cmd.Context(), s, path)
				if err != nil {
					return err
				}
				for _, a := range answers {
					rows = append(rows, []string{strconv.Itoa(s.Day), s.Title, a.Label, formatValue(a)})
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"day", "puzzle", "part", "answer"})
			table.AppendBulk(rows)
			table.Render()
			return nil
		},
	}
	allCmd.Flags().StringVar(&dir, "dir", ".", "directory holding one <NN>/input.txt per day")
	return allCmd
}
