package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
)

var getCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Show a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  getSetting,
}

func getSetting(_ *cobra.Command, args []string) error {
	s, err := model.Get(args[0])
	if err != nil {
		return err
	}

	logger.LogKeyValue("Name", s.Name())
	logger.LogKeyValue("Value", s.FormatValue())
	logger.LogKeyValue("Default", settings.Format(s.Default()))
	logger.LogKeyValue("Kind", s.Kind())
	if lo, hasLo, hi, hasHi := s.Bounds(); hasLo || hasHi {
		bounds := "("
		if hasLo {
			bounds += strconv.FormatFloat(lo, 'g', -1, 64)
		}
		bounds += ", "
		if hasHi {
			bounds += strconv.FormatFloat(hi, 'g', -1, 64)
		}
		logger.LogKeyValue("Bounds", bounds+")")
	}
	if choices := s.Choices(); len(choices) > 0 {
		logger.LogKeyValue("Choices", choices)
	}
	logger.LogKeyValue("Description", s.Description())
	return nil
}
