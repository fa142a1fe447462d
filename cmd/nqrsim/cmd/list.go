package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings by category",
	Long:  `List all simulator settings grouped by category in display order`,
	RunE:  listSettings,
}

func init() {
	listCmd.Flags().StringSliceP("category", "c", nil, "only list these categories")
}

func listSettings(cmd *cobra.Command, _ []string) error {
	names, _ := cmd.Flags().GetStringSlice("category")
	categories, err := parseCategories(names)
	if err != nil {
		return err
	}
	return writeSettings(cmd.OutOrStdout(), model, categories)
}

// parseCategories matches category names case-insensitively, ignoring spaces
func parseCategories(names []string) ([]settings.Category, error) {
	var categories []settings.Category
	for _, name := range names {
		found := false
		for _, c := range settings.Categories {
			if normalize(c.String()) == normalize(name) {
				categories = append(categories, c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown category %q", name)
		}
	}
	return categories, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

func writeSettings(out io.Writer, m *simulator.Model, categories []settings.Category) error {
	for category, list := range m.CategoriesInOrder() {
		if len(categories) > 0 && !slices.Contains(categories, category) {
			continue
		}

		logger.LogSection(out, category.String())
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tVALUE\tDEFAULT\tKIND\tDESCRIPTION")
		for _, s := range list {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.Name(),
				s.FormatValue(),
				settings.Format(s.Default()),
				s.Kind(),
				s.Description(),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out)
	}

	_, _ = fmt.Fprintf(out, "Averages: %d\nTarget frequency: %s Hz\n", m.Averages(), settings.Format(m.TargetFrequency()))
	return nil
}
