package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/prompt"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings interactively",
	RunE:  editSettings,
}

func init() {
	editCmd.Flags().StringSliceP("category", "c", nil, "only edit these categories")
}

func editSettings(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("edit needs an interactive terminal; use set instead")
	}

	names, _ := cmd.Flags().GetStringSlice("category")
	categories, err := parseCategories(names)
	if err != nil {
		return err
	}

	changed, err := prompt.NewEditor().EditSettings(model, categories...)
	if err != nil {
		return err
	}

	logger.Successf("%d settings changed", changed)
	return writeSettings(cmd.OutOrStdout(), model, categories)
}
