package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
)

var setCmd = &cobra.Command{
	Use:   "set <setting>=<value>...",
	Short: "Validate setting assignments",
	Long: `Apply one or more assignments to the settings and print the result.
All assignments are validated against their setting; the first invalid one
aborts the command. Use "averages" and "target-frequency" for the scalars.`,
	Args: cobra.MinimumNArgs(1),
	RunE: setSettings,
}

func setSettings(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected <setting>=<value>, got %q", arg)
		}
		if err := assign(strings.TrimSpace(name), raw); err != nil {
			return err
		}
		logger.Successf("%s %s %s", name, logger.IconArrow, raw)
	}
	return writeSettings(cmd.OutOrStdout(), model, nil)
}

func assign(name, raw string) error {
	switch name {
	case "averages":
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("averages must be an integer: %q", raw)
		}
		return model.SetAverages(n)
	case "target-frequency":
		hz, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("target frequency must be a number: %q", raw)
		}
		return model.SetTargetFrequency(hz)
	default:
		return model.SetString(name, raw)
	}
}
