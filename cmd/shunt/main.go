package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/graeme-hill/shunt-go/lib"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shunt [flags] [file]",
		Short: "Evaluate infix arithmetic via reverse polish notation",
		Long: `shunt reads one infix expression per line, up to the first blank line,
and prints each expression in postfix order followed by its value.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShunt,
	}

	cmd.Flags().String("config", "", "TOML configuration file")
	cmd.Flags().String("color", "", "colorize diagnostics (auto|on|off)")
	cmd.Flags().Int("precision", 0, "significant digits numbers are normalized to")
	cmd.Flags().Int("result-precision", 0, "significant digits printed for results (-1 for shortest)")
	cmd.Flags().String("history-dsn", "", "Postgres connection string to record evaluations in")
	cmd.Flags().Bool("no-stop-at-blank", false, "skip blank lines instead of stopping at the first one")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shunt: %v\n", err)
		os.Exit(1)
	}
}

func runShunt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	configureColor(cfg.Color)

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	session := lib.NewSession(in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	session.Calculator = cfg.Calculator()
	session.StopAtBlank = cfg.StopAtBlank

	ctx := cmd.Context()
	if cfg.History.DSN != "" {
		store, err := lib.OpenHistory(ctx, cfg.History.DSN, cfg.ResultPrecision)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()
		session.Recorder = store
	}

	_, err = session.Run(ctx)
	return err
}

// loadConfig layers explicitly set flags over the config file over defaults.
func loadConfig(cmd *cobra.Command) (lib.Config, error) {
	flags := cmd.Flags()
	cfg := lib.DefaultConfig()

	path, err := flags.GetString("config")
	if err != nil {
		return lib.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err = lib.LoadConfig(path)
		if err != nil {
			return lib.Config{}, err
		}
	}

	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return lib.Config{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("precision") {
		if cfg.Precision, err = flags.GetInt("precision"); err != nil {
			return lib.Config{}, fmt.Errorf("failed to get precision flag: %w", err)
		}
	}
	if flags.Changed("result-precision") {
		if cfg.ResultPrecision, err = flags.GetInt("result-precision"); err != nil {
			return lib.Config{}, fmt.Errorf("failed to get result-precision flag: %w", err)
		}
	}
	if flags.Changed("history-dsn") {
		if cfg.History.DSN, err = flags.GetString("history-dsn"); err != nil {
			return lib.Config{}, fmt.Errorf("failed to get history-dsn flag: %w", err)
		}
	}
	noStop, err := flags.GetBool("no-stop-at-blank")
	if err != nil {
		return lib.Config{}, fmt.Errorf("failed to get no-stop-at-blank flag: %w", err)
	}
	if noStop {
		cfg.StopAtBlank = false
	}

	if err := cfg.Validate(); err != nil {
		return lib.Config{}, err
	}
	return cfg, nil
}

func configureColor(mode string) {
	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
