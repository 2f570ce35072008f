package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/midi"
	"github.com/peter-clark/polyphonic-rhythmic-contour/util"
	"github.com/spf13/cobra"
)

var (
	exportModes modeFlags
	exportOut   string
	exportNote  uint8
	exportBPM   float64
)

func init() {
	exportModes.register(exportCmd)
	defaults := midi.DefaultExportOptions()
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (default: a new file in OUT_DIR)")
	exportCmd.Flags().Uint8Var(&exportNote, "note", defaults.Note, "note to render each step with")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", defaults.BPM, "tempo")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <pattern.json>",
	Short: "Renders a flattened profile as a MIDI file",
	Long:  `Renders a flattened profile as a one-track MIDI file, one 16th note per sounding step with velocity following salience`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, profile, err := exportModes.flattenFile(args[0])
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			if err := util.EnsureOutputDir(); err != nil {
				return err
			}
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}

		opts := midi.DefaultExportOptions()
		opts.Note = exportNote
		opts.BPM = exportBPM
		if err := midi.WriteFile(path, profile, opts); err != nil {
			return err
		}
		log.Info().Str("path", path).Int("steps", len(profile)).Msg("exported profile")
		fmt.Println(path)
		return nil
	},
}
