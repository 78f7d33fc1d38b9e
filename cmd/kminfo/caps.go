package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-surv/compute"
	"github.com/cwbudde/algo-surv/internal/cpu"
)

func newCapsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Show CPU capabilities and the selected kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCaps(cmd, a.kernel)
		},
	}
}

func printCaps(cmd *cobra.Command, k *compute.Kernel) error {
	detected := compute.Detect()
	topo := cpu.DetectTopology()
	selected := k.Implementation()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Architecture", detected.Architecture},
		{"Vendor", topo.Vendor},
		{"Brand", topo.Brand},
		{"Cores", fmt.Sprintf("%d physical, %d logical", topo.PhysicalCores, topo.LogicalCores)},
		{"Caches", fmt.Sprintf("L1d %s, L2 %s, L3 %s", kib(topo.L1DataBytes), kib(topo.L2Bytes), kib(topo.L3Bytes))},
		{"Tiers", tierNames(detected.Tiers())},
		{"Allowed", tierNames(k.Capabilities().Tiers())},
		{"Selected", fmt.Sprintf("%s (%s, %d lanes)", selected.Name(), selected.Tier(), selected.Lanes())},
		{"vek assembly", vekAssembly()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
		return err
	}
	tw = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tTier\tLanes\tSupported\n------\t----\t-----\t---------\n"); err != nil {
		return err
	}
	for _, impl := range compute.Implementations() {
		mark := "no"
		if impl.Tier() <= detected.Best() {
			mark = "yes"
		}
		if impl.Name() == selected.Name() {
			mark += " *"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", impl.Name(), impl.Tier(), impl.Lanes(), mark); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func tierNames(tiers []compute.Tier) string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

func kib(bytes int) string {
	if bytes <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d KiB", bytes>>10)
}
