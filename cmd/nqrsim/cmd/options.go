package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/pulse"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List pulse parameter options",
	Long:  `List the pulse parameter shapes offered per channel to a pulse sequence editor`,
	RunE:  listOptions,
}

func listOptions(cmd *cobra.Command, _ []string) error {
	table := logger.NewTable("CHANNEL", "SHAPE", "FIELDS")
	for channel, shape := range model.GetOptions().All() {
		var fields []string
		if d, ok := shape.(*pulse.Descriptor); ok {
			for _, f := range d.Fields {
				fields = append(fields, f.Name+" ("+string(f.Kind)+")")
			}
		}
		table.AddRow(channel, shape.ShapeName(), strings.Join(fields, ", "))
	}
	table.Fprint(cmd.OutOrStdout())

	if !model.Linked() {
		for _, d := range model.Diagnostics() {
			logger.Warnf("%s %v", logger.IconWarning, d)
		}
	}
	return nil
}
