package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nqrduck/spectrometer-simulator/pkg/config"
	"github.com/nqrduck/spectrometer-simulator/pkg/logger"
	"github.com/nqrduck/spectrometer-simulator/pkg/pulse"
	"github.com/nqrduck/spectrometer-simulator/pkg/simulator"
)

const moduleName = "nqrduck_spectrometer_simulator"

var (
	cfgFile    string
	logLevel   string
	noColor    bool
	linkEditor bool

	cfg   *config.Config
	model *simulator.Model
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nqrsim",
	Short: "NQR spectrometer simulator settings",
	Long: `nqrsim inspects and adjusts the configuration of the NQR spectrometer
simulator: its categorized settings, the number of averages, the target
frequency and the pulse parameter options offered to a pulse sequence editor.

Values given on the command line or in the config file apply to the current
invocation only; nothing is written back.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nqrsim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&linkEditor, "link-editor", false, "link the console pulse sequence editor")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the host configuration and builds the model every command works on
func setup(cmd *cobra.Command, _ []string) error {
	v := config.New()
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("no_color", cmd.Flags().Lookup("no-color"))
	_ = v.BindPFlag("link_editor", cmd.Flags().Lookup("link-editor"))

	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	logger.SetNoColor(cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())))

	var opts []simulator.Option
	if cfg.LinkEditor {
		opts = append(opts, simulator.WithEditor(consoleEditor()))
	}

	model, err = simulator.NewModel(moduleName, opts...)
	if err != nil {
		return fmt.Errorf("failed to create simulator model: %w", err)
	}
	if err := cfg.Apply(model); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// consoleEditor stands in for a pulse sequence editor and reports the channels it was offered
func consoleEditor() simulator.Editor {
	return simulator.EditorFunc(func(options pulse.Options) {
		logger.WithPrefix("pulse-programmer").Infof("Loaded pulse parameter options: %s", strings.Join(options.Keys(), ", "))
	})
}
