package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/adapt"
	"github.com/joshuapare/allockit/alloc"
	"github.com/joshuapare/allockit/container/omap"
	"github.com/joshuapare/allockit/container/vec"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the string and ordered-map walkthrough",
		Long: `The demo command backs a character sequence and an ordered map with a
custom allocator and prints the map in ascending key order.

Example:
  allocdemo demo
  allocdemo demo --mmap --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	tracked := alloc.NewTracking(newAllocator())
	bytes := adapt.New[byte](tracked)

	abc, err := vec.FromString(bytes, "haha abc")
	if err != nil {
		return fmt.Errorf("building string: %w", err)
	}
	printVerbose("string %q occupies %d of %d allocated bytes\n",
		vec.String(abc), abc.Len(), abc.Cap())

	m := omap.New(adapt.New[omap.Entry[int, string]](tracked))
	seed := map[int]string{5: "a123", 7: "uuu", 999: "t%%%"}
	for k, v := range seed {
		if err := m.Set(k, v); err != nil {
			return fmt.Errorf("seeding map: %w", err)
		}
	}
	// Node memory is not scanned by the collector; the string copy must
	// stay reachable from here until the map is torn down.
	text := vec.String(abc)
	if err := m.Set(666, text); err != nil {
		return fmt.Errorf("inserting string value: %w", err)
	}

	if jsonOut {
		if err := printDemoJSON(m); err != nil {
			return err
		}
	} else {
		m.Ascend(func(k int, v string) bool {
			printInfo("K: %d, V: %s\n", k, v)
			return true
		})
	}

	m.Clear()
	runtime.KeepAlive(text)
	abc.Release()
	printVerbose("outstanding after teardown: %d blocks, %d bytes (peak %d)\n",
		tracked.Outstanding(), tracked.OutstandingBytes(), tracked.PeakBytes())
	if n := tracked.Outstanding(); n != 0 {
		return fmt.Errorf("allocator leak: %d blocks outstanding", n)
	}
	return nil
}

func printDemoJSON(m *omap.Map[int, string]) error {
	type entry struct {
		Key   int    `json:"key"`
		Value string `json:"value"`
	}
	out := make([]entry, 0, m.Len())
	m.Ascend(func(k int, v string) bool {
		out = append(out, entry{Key: k, Value: v})
		return true
	})
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
