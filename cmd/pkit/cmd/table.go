package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/utils/jsonx"
	"github.com/msto63/pkit/utils/mapx"
	"github.com/msto63/pkit/utils/slicex"
)

var tableCmd = &cobra.Command{
	Use:   "table <json-array>",
	Short: "Render an array of objects as a table",
	Long: `Renders an array of objects with one column per key.

Example:
  pkit table '[{"name":"bob","age":30},{"name":"alice"}]'`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	v, err := jsonx.Parse(args[0])
	if err != nil {
		return err
	}
	items, ok := value.AsSlice(v)
	if !ok {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "table", value.TypeOf(v), "array")
	}

	out, err := renderTable(items)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// renderTable lays the items out in collated key columns. Keys an item
// lacks leave an empty cell.
func renderTable(items []any) (string, error) {
	if len(items) == 0 || !slicex.IsRecordArray(items) {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "table", items, "a non-empty array of objects")
	}

	columns := make(mapx.Object)
	for k, col := range slicex.ToTable(items) {
		columns[k] = col
	}

	rendered := make([]string, 0, len(columns))
	for _, key := range mapx.SortedKeys(columns) {
		cells := []string{headerStyle.Render(key)}
		for _, item := range items {
			rec, _ := value.AsRecord(item)
			text := ""
			if v, ok := rec[key]; ok {
				text = formatResult(v)
			}
			cells = append(cells, cellStyle.Render(text))
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}
	return boxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...)), nil
}
