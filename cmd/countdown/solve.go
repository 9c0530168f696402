package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/countdown/internal/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a numbers round",
	Long:  `Solves the given numbers against the target and prints the closest expression found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, _ := cmd.Flags().GetIntSlice("numbers")
		target, _ := cmd.Flags().GetInt("target")
		strategyStr, _ := cmd.Flags().GetString("strategy")
		depth, _ := cmd.Flags().GetInt("depth")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("depth") {
			cfg.Solver.Depth = depth
		}
		if strategyStr == "" {
			strategyStr = cfg.Solver.Strategy
		}
		strategy := domain.StrategyBruteforce
		if strategyStr == "minimax" {
			strategy = domain.StrategyMinimax
		}

		uc := newService(cfg)
		p := &domain.Puzzle{Numbers: numbers, Target: target}
		sol, st, err := uc.Solve(cmd.Context(), p, strategy)
		if err != nil {
			return err
		}

		fmt.Printf("Numbers: %v  Target: %d  Strategy: %s\n", numbers, target, strategy)
		if sol.Exact() {
			fmt.Printf("Exact solution: %s = %d\n", sol.Render(), sol.Value())
		} else {
			fmt.Printf("Closest found: %s = %d (off by %d)\n", sol.Render(), sol.Value(), sol.Score)
		}
		fmt.Printf("Nodes explored: %d  Time: %v\n", st.Nodes, st.Duration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntSlice("numbers", nil, "source numbers, e.g. --numbers 25,50,75,100,3,6")
	solveCmd.Flags().Int("target", 0, "target value")
	solveCmd.Flags().String("strategy", "", "bruteforce|minimax (default from config)")
	solveCmd.Flags().Int("depth", -1, "minimax lookahead depth")
	_ = solveCmd.MarkFlagRequired("numbers")
	_ = solveCmd.MarkFlagRequired("target")
}
