package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Heartbeat/pkg/heartbeat"
)

var categoryDescriptions = map[heartbeat.Category]string{
	heartbeat.CategoryCPU:     "System CPU load, percent",
	heartbeat.CategoryMemory:  "Physical memory used (total - free)",
	heartbeat.CategorySwap:    "Swap used (total - free)",
	heartbeat.CategoryHeap:    "Go heap in use",
	heartbeat.CategoryStack:   "Non-heap runtime memory (stacks, GC and allocator metadata)",
	heartbeat.CategoryVirtual: "Process virtual memory size",
	heartbeat.CategoryThread:  "OS threads of this process",
	heartbeat.CategoryClass:   "Modules linked into the binary",
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List toggle keywords in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEYWORD\tSCALED\tMETRIC")
			for _, c := range heartbeat.Categories() {
				scaled := "no"
				if c.Scaled() {
					scaled = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c, scaled, categoryDescriptions[c])
			}
			return w.Flush()
		},
	}
}
