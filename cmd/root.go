package cmd

import (
	"os"

	"github.com/peter-clark/polyphonic-rhythmic-contour/channel"
	"github.com/peter-clark/polyphonic-rhythmic-contour/constants"
	"github.com/peter-clark/polyphonic-rhythmic-contour/flatten"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	tablePath string
	logLevel  string

	log        = zlog.Logger
	classifier *channel.Classifier
	flattener  *flatten.Flattener
)

var rootCmd = &cobra.Command{
	Use:   "contour",
	Short: "Flattens polyphonic drum patterns into rhythmic profiles",
	Long: `Flattens polyphonic step patterns into one salience value per step,
using onset, weighted, relative or presence density with optional
GTTM meter and syncopation weighting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(logLevel); err != nil {
			return err
		}
		return Setup(tablePath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", constants.GetTablePath(), "classification table JSON (default: General MIDI percussion)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "log level")
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return nil
}

// Setup loads the classification table and builds the shared flattener.
func Setup(path string) error {
	table, err := channel.LoadTableOrDefault(path)
	if err != nil {
		return err
	}
	classifier = channel.New(table)
	flattener = flatten.New(classifier, flatten.WithLogger(log))
	log.Debug().Str("table", path).Int("notes", len(table)).Msg("loaded classification table")
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
