package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-surv/survival"
)

// Remission times in weeks for the 6-mercaptopurine arm of the Freireich et
// al. (1963) leukemia trial. Negative entries are censored.
var referenceWeeks = []float64{
	6, 6, 6, -6, 7, -9, 10, -10, -11, 13, 16,
	-17, -19, -20, 22, 23, -25, -32, -32, -34, -35,
}

type fitOptions struct {
	time      []float64
	event     []int
	reference bool
	z         float64
}

func newFitCmd(a *app) *cobra.Command {
	opts := &fitOptions{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a Kaplan-Meier curve",
		Long: `Fit a Kaplan-Meier curve to observation times and event flags.

Event flags are 1 for an observed event and 0 for a censored observation.
With --reference the 6-MP arm of the Freireich leukemia trial is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			time, event, err := opts.observations()
			if err != nil {
				return err
			}
			res, err := a.estimator().Fit(time, event)
			if err != nil {
				return err
			}
			return printFit(cmd, res, opts.z)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.time, "time", nil, "observation times")
	cmd.Flags().IntSliceVar(&opts.event, "event", nil, "event flags (1 event, 0 censored)")
	cmd.Flags().BoolVar(&opts.reference, "reference", false, "use the 6-MP leukemia reference data")
	cmd.Flags().Float64Var(&opts.z, "z", 1.96, "normal quantile for the pointwise band")
	cmd.MarkFlagsMutuallyExclusive("reference", "time")
	return cmd
}

func (o *fitOptions) observations() ([]float64, []bool, error) {
	if o.reference {
		time := make([]float64, len(referenceWeeks))
		event := make([]bool, len(referenceWeeks))
		for i, w := range referenceWeeks {
			event[i] = w > 0
			if w < 0 {
				w = -w
			}
			time[i] = w
		}
		return time, event, nil
	}

	if len(o.time) == 0 {
		return nil, nil, errors.New("fit: --time or --reference is required")
	}
	event := make([]bool, len(o.event))
	for i, e := range o.event {
		switch e {
		case 0:
		case 1:
			event[i] = true
		default:
			return nil, nil, fmt.Errorf("fit: event flag %d at position %d is not 0 or 1", e, i)
		}
	}
	return o.time, event, nil
}

func printFit(cmd *cobra.Command, res *survival.Result, z float64) error {
	lower, upper := res.Band(z)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Time\tAt risk\tEvents\tSurvival\tStd error\tLower\tUpper\t\n"); err != nil {
		return err
	}
	for i := range res.Len() {
		if _, err := fmt.Fprintf(tw, "%g\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			res.Time[i],
			res.NRisk[i],
			res.NEvent[i],
			res.Survival[i],
			res.StdError[i],
			lower[i],
			upper[i],
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if median, ok := res.Median(); ok {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nMedian survival: %g\n", median)
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "\nMedian survival: not reached")
	return err
}
