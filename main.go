package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v2"
)

const configFileName = ".timett.yml"

// Config holds the presentation options. Dates are fixed and not part of it.
type Config struct {
	BarDivisor        int  `yaml:"barDivisor"`
	Live              bool `yaml:"live"`
	RefreshIntervalMs int  `yaml:"refreshIntervalMs"`
	Extras            bool `yaml:"extras"`
	YearMap           bool `yaml:"yearMap"`
}

func defaultConfig() Config {
	return Config{
		BarDivisor:        4,
		Live:              false,
		RefreshIntervalMs: 1000, // milliseconds
		Extras:            false,
		YearMap:           false,
	}
}

func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	configFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // No config file, return default config
		}
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(configFile, &config)
	if err != nil {
		return config, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return config, config.validate()
}

func (c Config) validate() error {
	if c.BarDivisor <= 0 {
		return fmt.Errorf("barDivisor must be positive, got %d", c.BarDivisor)
	}
	if c.RefreshIntervalMs <= 0 {
		return fmt.Errorf("refreshIntervalMs must be positive, got %d", c.RefreshIntervalMs)
	}
	return nil
}

func newRootCmd(config Config, out io.Writer) *cobra.Command {
	var profile bool

	cmd := &cobra.Command{
		Use:           "timett",
		Short:         "Show day, week, month and year progress plus holiday countdowns",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.validate(); err != nil {
				return err
			}

			if profile {
				f, err := os.Create("cpu.prof")
				if err != nil {
					return fmt.Errorf("failed to create cpu profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("failed to start cpu profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			builder := NewStatsBuilder(newChineseCalendar())
			if config.Live {
				return runLive(config, builder)
			}
			return runOnce(out, config, builder, time.Now(), terminalWidth())
		},
	}

	// Flags override the config file
	flags := cmd.Flags()
	flags.IntVar(&config.BarDivisor, "divisor", config.BarDivisor, "Bar width as a fraction of the terminal width (width / divisor)")
	flags.BoolVar(&config.Live, "live", config.Live, "Keep refreshing in a full screen view")
	flags.IntVar(&config.RefreshIntervalMs, "interval", config.RefreshIntervalMs, "Refresh interval for live mode in milliseconds")
	flags.BoolVar(&config.Extras, "extras", config.Extras, "Also show off-work, salary day and festival countdowns")
	flags.BoolVar(&config.YearMap, "map", config.YearMap, "Draw a map of the elapsed days of the year")
	flags.BoolVar(&profile, "profile", false, "profile cpu")

	return cmd
}

// runOnce computes every entry from the single instant now and prints them.
func runOnce(w io.Writer, config Config, builder *StatsBuilder, now time.Time, width int) error {
	report, err := builder.Report(now, config.Extras)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, renderReport(report, config, width))
	return err
}

func runLive(config Config, builder *StatsBuilder) error {
	model := InitialModel(config, builder)
	m := &model

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func main() {
	// Load configuration from file
	config, err := loadConfig(configFileName)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := newRootCmd(config, os.Stdout).Execute(); err != nil {
		log.Fatalf("timett: %v", err)
	}
}
