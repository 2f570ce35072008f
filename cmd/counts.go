package cmd

import (
	"fmt"

	"github.com/peter-clark/polyphonic-rhythmic-contour/flatten"
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/peter-clark/polyphonic-rhythmic-contour/pattern"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countsCmd)
}

var countsCmd = &cobra.Command{
	Use:   "counts <pattern.json>",
	Short: "Shows per-channel onset counts of a pattern",
	Long:  `Shows per-channel onset counts, channel salience and syncopation points of a pattern`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pattern.Load(args[0])
		if err != nil {
			return err
		}
		counts, err := classifier.Count(p)
		if err != nil {
			return err
		}

		fmt.Print(pattern.FormatCounts(counts))
		sal := flatten.Salience(counts)
		for c := 0; c < model.NumChannels; c++ {
			fmt.Printf("salience %-5s %.4f\n", model.Channel(c), sal[c])
		}
		fmt.Printf("syncopation points: %v\n", flatten.SyncopationPoints(counts))
		return nil
	},
}
