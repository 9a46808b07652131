package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(
		newNamespaceCmd(registry.TableMath, "Call a math function", true),
		newNamespaceCmd(registry.TablePath, "Call a path function", false),
	)
}

// newNamespaceCmd builds a command for a namespace table. Path arguments
// stay strings; math arguments are decoded as JSON.
func newNamespaceCmd(table, short string, decode bool) *cobra.Command {
	return &cobra.Command{
		Use:   table + " <function> [args...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fnArgs := make([]any, 0, len(args)-1)
			if decode {
				fnArgs = parseArgs(args[1:])
			} else {
				for _, a := range args[1:] {
					fnArgs = append(fnArgs, a)
				}
			}

			result, err := registry.CallNamespace(table, args[0], fnArgs...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))
			return nil
		},
	}
}
