package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
)

func newSumCmd(a *app) *cobra.Command {
	var (
		random   int
		seed     int64
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "sum [value ...]",
		Short: "Sum values with the selected kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]float64, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("sum: %w", err)
				}
				data = append(data, v)
			}
			if random > 0 {
				rng := rand.New(rand.NewSource(seed))
				for range random {
					data = append(data, rng.Float64()*2-1)
				}
			}

			var total float64
			if parallel {
				total = a.kernel.ParallelSum(a.runner(), data)
			} else {
				total = a.kernel.VectorSum(data)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "kernel: %s\n", a.kernel.Implementation().Name()); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "n:      %d\n", len(data)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "sum:    %g\n", total); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "mean:   %g\n", a.kernel.VectorMean(data))
			return err
		},
	}

	cmd.Flags().IntVar(&random, "random", 0, "append n uniform values in [-1, 1]")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for --random")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "sum in partitions on the worker pool")
	return cmd
}
