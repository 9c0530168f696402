package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/usecase"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both solvers on one round and compare them",
	Long: `Runs the bruteforce and minimax solvers on the same round (a freshly
generated one unless --numbers and --target are given) and reports each
solver's result, node count and timing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, _ := cmd.Flags().GetIntSlice("numbers")
		target, _ := cmd.Flags().GetInt("target")
		seed, _ := cmd.Flags().GetInt64("seed")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		uc := newService(cfg)

		var p *domain.Puzzle
		if len(numbers) > 0 && target > 0 {
			p = &domain.Puzzle{Numbers: numbers, Target: target}
		} else {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			large := 1 + int(seed%4)
			p, _, err = uc.Generate(cmd.Context(), seed, large, 6)
			if err != nil {
				return err
			}
		}

		fmt.Println("Countdown Numbers Game - Solver Comparison")
		fmt.Println()
		fmt.Printf("Numbers: %v\n", p.Numbers)
		fmt.Printf("Target:  %d\n", p.Target)
		fmt.Println()

		c, err := uc.Compare(cmd.Context(), p)
		if err != nil {
			return err
		}
		printOutcome("Brute force", c.Bruteforce)
		printOutcome("Minimax", c.Minimax)

		fmt.Printf("Verdict: %s\n", c.Verdict())
		if bf, mm := c.Bruteforce.Stats.Duration, c.Minimax.Stats.Duration; bf > 0 && mm > 0 {
			switch {
			case mm < bf:
				fmt.Printf("Minimax was %.2fx faster\n", float64(bf)/float64(mm))
			case bf < mm:
				fmt.Printf("Brute force was %.2fx faster\n", float64(mm)/float64(bf))
			default:
				fmt.Println("Both solvers took similar time")
			}
		}
		return nil
	},
}

func printOutcome(name string, o usecase.Outcome) {
	fmt.Printf("%s:\n", name)
	if o.Solution.Exact() {
		fmt.Printf("  Solution found: %s = %d\n", o.Solution.Render(), o.Solution.Value())
	} else {
		fmt.Printf("  Closest found: %s = %d (off by %d)\n",
			o.Solution.Render(), o.Solution.Value(), o.Solution.Score)
	}
	fmt.Printf("  Nodes explored: %d\n", o.Stats.Nodes)
	fmt.Printf("  Time taken: %v\n", o.Stats.Duration)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntSlice("numbers", nil, "source numbers (omit to generate a round)")
	compareCmd.Flags().Int("target", 0, "target value (omit to generate a round)")
	compareCmd.Flags().Int64("seed", 0, "seed for the generated round")
}
