package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new numbers round",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		large, _ := cmd.Flags().GetInt("large")
		count, _ := cmd.Flags().GetInt("count")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		uc := newService(cfg)
		p, _, err := uc.Generate(cmd.Context(), seed, large, count)
		if err != nil {
			return err
		}

		fmt.Printf("Numbers: %v\n", p.Numbers)
		fmt.Printf("Target:  %d\n", p.Target)
		fmt.Printf("Large numbers: %d | Small numbers: %d | Seed: %d\n",
			p.LargeCount, len(p.Numbers)-p.LargeCount, p.Seed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	generateCmd.Flags().Int("large", 2, "how many large numbers to draw")
	generateCmd.Flags().Int("count", 6, "total numbers in the round")
}
