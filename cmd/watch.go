package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

var (
	watchModes    modeFlags
	watchInterval time.Duration
	watchSettle   time.Duration
)

func init() {
	watchModes.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 250*time.Millisecond, "how often to check the pattern file")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 500*time.Millisecond, "quiet time after the last change before reflattening")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <pattern.json>",
	Short: "Reflattens a pattern file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := watchModes.parse(); err != nil {
			return err
		}
		path := args[0]

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		watch(path, stop, reflatten)
		return nil
	},
}

func reflatten(path string) {
	_, profile, err := watchModes.flattenFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not flatten pattern")
		return
	}
	printProfile(profile)
}

// watch polls path until stop fires and calls onChange once up front and
// again after each burst of modifications has settled.
func watch(path string, stop <-chan os.Signal, onChange func(string)) {
	debounced := debounce.New(watchSettle)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	// drop a change still waiting to settle
	defer debounced(func() {})

	var lastMod time.Time
	onChange(path)
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("could not stat pattern")
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			log.Debug().Str("path", path).Msg("pattern changed")
			debounced(func() { onChange(path) })
		}
	}
}
