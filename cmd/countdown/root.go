package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/countdown/internal/config"
	"svw.info/countdown/internal/generator"
	"svw.info/countdown/internal/hint"
	"svw.info/countdown/internal/solver"
	"svw.info/countdown/internal/usecase"
	"svw.info/countdown/internal/validator"
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Countdown numbers game generator and solver",
	Long: `countdown generates "Numbers Game" rounds (six numbers and a three-digit
target) and solves them with two strategies: an exhaustive bruteforce search
and a depth-limited greedy-lookahead search.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	levelStr, _ := cmd.Flags().GetString("log-level")
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newService wires solvers, generator, validator and hinter from config.
func newService(cfg config.Config) *usecase.Service {
	cons := cfg.Solver.Constraints()
	bf := solver.NewBruteforce(cons)
	bf.Parallel = cfg.Solver.Parallel
	mm := solver.NewMinimax(cons, cfg.Solver.Depth)
	return usecase.NewService(bf, mm, generator.New(), validator.New(), hint.NewGreedy(cons))
}
