package cmd

import (
	"fmt"

	"github.com/peter-clark/polyphonic-rhythmic-contour/flatten"
	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
	"github.com/peter-clark/polyphonic-rhythmic-contour/pattern"
	"github.com/spf13/cobra"
)

// modeFlags are the flattening mode flags shared by several commands.
type modeFlags struct {
	density        string
	meter          string
	syncopation    string
	onsetBroadcast bool
}

func (m *modeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&m.density, "density", "d", "onset", "onset, weighted, relative or presence (or 0-3)")
	cmd.Flags().StringVarP(&m.meter, "meter", "m", "off", "off or gttm (or 0-1)")
	cmd.Flags().StringVarP(&m.syncopation, "sync", "s", "none", "none, mono or poly (or 0-2)")
	cmd.Flags().BoolVar(&m.onsetBroadcast, "broadcast-onset", false, "plain onset density assigns the pattern-wide sum to every step")
}

type modes struct {
	density     flatten.Density
	meter       flatten.Meter
	syncopation flatten.Syncopation
}

func (m *modeFlags) parse() (modes, error) {
	var res modes
	var err error
	if res.density, err = flatten.ParseDensity(m.density); err != nil {
		return res, err
	}
	if res.meter, err = flatten.ParseMeter(m.meter); err != nil {
		return res, err
	}
	if res.syncopation, err = flatten.ParseSyncopation(m.syncopation); err != nil {
		return res, err
	}
	return res, nil
}

func (m *modeFlags) flattener() *flatten.Flattener {
	if m.onsetBroadcast {
		return flatten.New(classifier, flatten.WithLogger(log), flatten.WithOnsetBroadcast())
	}
	return flattener
}

// flattenFile loads a pattern file and flattens it with the flag modes.
func (m *modeFlags) flattenFile(path string) (model.Pattern, model.Profile, error) {
	md, err := m.parse()
	if err != nil {
		return nil, nil, err
	}
	p, err := pattern.Load(path)
	if err != nil {
		return nil, nil, err
	}
	profile, err := m.flattener().Flatten(p, md.density, md.meter, md.syncopation)
	if err != nil {
		return nil, nil, err
	}
	return p, profile, nil
}

func printProfile(profile model.Profile) {
	fmt.Println(pattern.FormatProfile(profile))
	for i, v := range profile {
		fmt.Printf("%3d  %.4f\n", i, v)
	}
}
