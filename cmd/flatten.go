package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var (
	flattenModes modeFlags
	flattenJSON  bool
)

func init() {
	flattenModes.register(flattenCmd)
	flattenCmd.Flags().BoolVar(&flattenJSON, "json", false, "print the profile as a JSON array")
	rootCmd.AddCommand(flattenCmd)
}

var flattenCmd = &cobra.Command{
	Use:   "flatten <pattern.json>",
	Short: "Flattens a pattern into a rhythmic profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, profile, err := flattenModes.flattenFile(args[0])
		if err != nil {
			return err
		}
		if flattenJSON {
			return json.NewEncoder(os.Stdout).Encode(profile)
		}
		printProfile(profile)
		return nil
	},
}
