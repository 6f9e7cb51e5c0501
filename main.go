package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"aoc2021/days"
	"aoc2021/puzzle"
)

// errMissingToken indicates no session token was supplied anywhere.
var errMissingToken = errors.New("missing session token: pass it as the third argument or set TOKEN")

// options holds the root command's flags.
type options struct {
	configPath string
	inputPath  string
	verbose    bool
}

func main() {
	_ = godotenv.Load()
	log := newLogger(false)

	reg := puzzle.NewRegistry()
	days.RegisterAll(reg)

	cmd := newRootCmd(log, reg)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.err(strings.Join(strings.Fields(err.Error()), " "))
		os.Exit(1)
	}
}

func newRootCmd(log *logger, reg *puzzle.Registry) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "aoc2021 DAY STAGE [TOKEN]",
		Short: "Fetch an Advent of Code 2021 input and print the solution",
		Long: "Fetch the input for DAY and run the solver registered for STAGE " +
			"(0/first or 1/second). TOKEN is the session cookie; when omitted " +
			"the TOKEN environment variable (or .env) is used.",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.z = log.z.Level(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), log, reg, opts, args)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.json", "Path to config.json")
	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Read the puzzle input from a file instead of fetching it")

	cmd.AddCommand(newListCmd(reg))
	return cmd
}

func newListCmd(reg *puzzle.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, k := range reg.Keys() {
				if _, err := fmt.Fprintf(w, "day %d %s\n", k.Day, k.Stage); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runSolve(ctx context.Context, out io.Writer, log *logger, reg *puzzle.Registry, opts options, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	stage, err := puzzle.ParseStage(args[1])
	if err != nil {
		return err
	}
	var tokenArg string
	if len(args) > 2 {
		tokenArg = args[2]
	}

	if _, err := reg.Lookup(day, stage); err != nil {
		log.warnf("no solver registered: day %d %s", day, stage)
		return nil
	}

	text, err := readInput(ctx, log, opts, day, tokenArg)
	if err != nil {
		return err
	}

	log.debugf("running: day=%d stage=%s bytes=%d", day, stage, len(text))
	return reg.Run(out, day, stage, text)
}

// readInput returns the trimmed puzzle text, from --input when given and
// from the puzzle site otherwise.
func readInput(ctx context.Context, log *logger, opts options, day int, tokenArg string) (string, error) {
	if opts.inputPath != "" {
		b, err := os.ReadFile(opts.inputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		log.debugf("input loaded: path=%s", opts.inputPath)
		return strings.TrimSpace(string(b)), nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return "", err
	}
	token, err := resolveToken(tokenArg, cfg)
	if err != nil {
		return "", err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return "", err
	}

	log.infof("fetching input: year=%d day=%d", cfg.Year, day)
	text, err := inputWithRetry(ctx, client, log, cfg.Year, day, token)
	if err != nil {
		if isAuthError(err) {
			return "", fmt.Errorf("session token rejected: %w", err)
		}
		return "", fmt.Errorf("fetch input: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", s, err)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("day must be between 1 and 25, got %d", day)
	}
	return day, nil
}
