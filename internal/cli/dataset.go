package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colourkit/munsell/internal/munsell"
)

// datasetCmd represents the dataset command.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Print renotation dataset statistics",
	Long: `Print statistics about the embedded Munsell renotation dataset: entry
counts per hue family and the chroma range covered.`,
	Args: cobra.NoArgs,
	RunE: runDataset,
}

// runDataset executes the dataset command.
func runDataset(cmd *cobra.Command, args []string) error {
	table, err := munsell.NewTable()
	if err != nil {
		return fmt.Errorf("failed to load renotation dataset: %w", err)
	}

	perFamily := make(map[munsell.Family]int)
	maxChroma := 0
	for _, e := range table.Entries() {
		perFamily[e.Family]++
		if e.Chroma > maxChroma {
			maxChroma = e.Chroma
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "entries: %d\n", table.Len())
	fmt.Fprintf(out, "maximum chroma: %d\n", maxChroma)
	for f := munsell.FamilyB; f <= munsell.FamilyPB; f++ {
		fmt.Fprintf(out, "%-3s %d\n", f.String(), perFamily[f])
	}
	return nil
}
