package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/pkg/registry"
)

var listCmd = &cobra.Command{
	Use:   "list [table]",
	Short: "List the installed method tables",
	Long: `Without arguments lists every table with its method names.
With a table name lists that table's methods and what they do.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg := registry.Global()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		listing := reg.Listing()
		for _, name := range reg.Tables() {
			fmt.Fprintf(out, "%s %s\n",
				titleStyle.Render(fmt.Sprintf("%s (%d)", name, len(listing[name]))),
				strings.Join(listing[name], ", "))
		}
		return nil
	}

	table, ok := reg.Table(args[0])
	if !ok {
		return mdwerrors.NotFound(mdwerrors.ModuleCLI, "list", args[0])
	}
	fmt.Fprint(out, describeTable(table))
	return nil
}

// describeTable renders one method per line with its description
func describeTable(table *registry.Table) string {
	methods := table.Methods()
	width := 0
	for _, m := range methods {
		width = max(width, len(m.Name))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(table.Name()) + "\n")
	for _, m := range methods {
		b.WriteString("  " + titleStyle.Width(width+2).Render(m.Name) + docStyle.Render(m.Doc) + "\n")
	}
	return b.String()
}
