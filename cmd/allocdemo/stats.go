package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/adapt"
	"github.com/joshuapare/allockit/alloc"
	"github.com/joshuapare/allockit/container/omap"
	"github.com/joshuapare/allockit/container/vec"
)

var (
	statsEntries int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsEntries, "entries", 10000, "Workload size in elements")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Run a container workload and report allocator traffic",
		Long: `The stats command drives a vector and an ordered map through a fixed
workload over a tracked allocator and reports what the allocator saw:
call counts, outstanding blocks, and the peak byte footprint.

Example:
  allocdemo stats
  allocdemo stats --entries 100000 --mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

// AllocStats is the report printed by the stats command.
type AllocStats struct {
	Entries     int `json:"entries"`
	TotalAllocs int `json:"total_allocs"`
	TotalFrees  int `json:"total_frees"`
	Outstanding int `json:"outstanding"`
	PeakBytes   int `json:"peak_bytes"`
	BadFrees    int `json:"bad_frees"`
}

func runStats() error {
	if statsEntries < 0 {
		return fmt.Errorf("--entries must be non-negative, got %d", statsEntries)
	}
	tracked := alloc.NewTracking(newAllocator())

	printVerbose("appending %d elements\n", statsEntries)
	v := vec.New(adapt.New[int64](tracked))
	for i := range statsEntries {
		if err := v.Append(int64(i)); err != nil {
			return fmt.Errorf("vector workload: %w", err)
		}
	}

	printVerbose("inserting and deleting %d map entries\n", statsEntries)
	m := omap.New(adapt.New[omap.Entry[int, int]](tracked))
	for i := range statsEntries {
		if err := m.Set(i, i*2); err != nil {
			return fmt.Errorf("map workload: %w", err)
		}
	}
	for i := 0; i < statsEntries; i += 2 {
		m.Delete(i)
	}

	m.Clear()
	v.Release()

	stats := AllocStats{
		Entries:     statsEntries,
		TotalAllocs: tracked.TotalAllocs(),
		TotalFrees:  tracked.TotalFrees(),
		Outstanding: tracked.Outstanding(),
		PeakBytes:   tracked.PeakBytes(),
		BadFrees:    tracked.BadFrees(),
	}

	if jsonOut {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printInfo("Workload:      %d elements\n", stats.Entries)
	printInfo("Allocations:   %d\n", stats.TotalAllocs)
	printInfo("Frees:         %d\n", stats.TotalFrees)
	printInfo("Outstanding:   %d\n", stats.Outstanding)
	printInfo("Peak bytes:    %d\n", stats.PeakBytes)
	printInfo("Bad frees:     %d\n", stats.BadFrees)
	return nil
}
