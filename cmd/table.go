package cmd

import (
	"fmt"

	"github.com/peter-clark/polyphonic-rhythmic-contour/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Prints the note classification table",
	Run: func(cmd *cobra.Command, args []string) {
		table := classifier.Table()
		for _, note := range util.GetKeysSorted(table) {
			entry := table[note]
			fmt.Printf("%3d  %-5s %s\n", note, entry.Category, entry.Name)
		}
	},
}
