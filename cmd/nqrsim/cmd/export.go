package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nqrduck/spectrometer-simulator/pkg/pulse"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the current configuration as YAML",
	RunE:  exportConfig,
}

// Snapshot is the YAML view of a model
type Snapshot struct {
	Module          string            `yaml:"module"`
	State           string            `yaml:"state"`
	Averages        int               `yaml:"averages"`
	TargetFrequency float64           `yaml:"target_frequency"`
	Categories      []CategorySection `yaml:"categories"`
	Options         []ChannelOption   `yaml:"pulse_parameter_options"`
}

// CategorySection lists the settings of one category
type CategorySection struct {
	Name     string         `yaml:"name"`
	Settings []SettingValue `yaml:"settings"`
}

// SettingValue is a single setting in a snapshot
type SettingValue struct {
	Name        string      `yaml:"name"`
	Kind        string      `yaml:"kind"`
	Value       interface{} `yaml:"value"`
	Default     interface{} `yaml:"default"`
	Description string      `yaml:"description"`
}

// ChannelOption is a pulse parameter option in a snapshot
type ChannelOption struct {
	Channel string        `yaml:"channel"`
	Shape   string        `yaml:"shape"`
	Fields  []pulse.Field `yaml:"fields,omitempty"`
}

func exportConfig(cmd *cobra.Command, _ []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(buildSnapshot(model)); err != nil {
		return err
	}
	return enc.Close()
}

func buildSnapshot(m *simulator.Model) Snapshot {
	snapshot := Snapshot{
		Module:          m.Module(),
		State:           m.State().String(),
		Averages:        m.Averages(),
		TargetFrequency: m.TargetFrequency(),
	}

	for category, list := range m.CategoriesInOrder() {
		section := CategorySection{Name: category.String()}
		for _, s := range list {
			section.Settings = append(section.Settings, SettingValue{
				Name:        s.Name(),
				Kind:        s.Kind().String(),
				Value:       s.Value(),
				Default:     s.Default(),
				Description: s.Description(),
			})
		}
		snapshot.Categories = append(snapshot.Categories, section)
	}

	for channel, shape := range m.GetOptions().All() {
		option := ChannelOption{Channel: channel, Shape: shape.ShapeName()}
		if d, ok := shape.(*pulse.Descriptor); ok {
			option.Fields = d.Fields
		}
		snapshot.Options = append(snapshot.Options, option)
	}
	return snapshot
}
