package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/internal/value"
	"github.com/msto63/pkit/pkg/registry"
	"github.com/msto63/pkit/utils/jsonx"
)

var callKind string

var callCmd = &cobra.Command{
	Use:   "call <method> <subject> [args...]",
	Short: "Call a method on a subject",
	Long: `Calls a method from the table that matches the subject's kind.

With --kind auto the subject is decoded as JSON when possible and taken
as a string otherwise. Methods that take callbacks cannot be called here.

Examples:
  pkit call toSlug "Crème brûlée"
  pkit call --kind string reverse 123
  pkit call sortByKey '[{"n":2},{"n":1}]' n`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVarP(&callKind, "kind", "k", "auto", "subject kind: auto, string, number, array or object")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	subject, err := parseSubject(args[1], callKind)
	if err != nil {
		return err
	}

	result, err := registry.Call(subject, args[0], parseArgs(args[2:])...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))
	return nil
}

// parseSubject decodes raw as the requested kind
func parseSubject(raw, kind string) (any, error) {
	switch kind {
	case "auto":
		v, ok := jsonx.TryParse(raw)
		if !ok || value.KindOf(v) == value.KindOther {
			return raw, nil
		}
		return v, nil
	case value.KindText.String():
		return raw, nil
	case value.KindNumber.String(), value.KindSequence.String(), value.KindMapping.String():
		v, err := jsonx.Parse(raw)
		if err != nil {
			return nil, err
		}
		if got := value.KindOf(v).String(); got != kind {
			return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "subject", value.TypeOf(v), kind)
		}
		return v, nil
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "kind", kind, "auto, string, number, array or object")
	}
}

// parseArgs decodes every argument as JSON, keeping plain strings as they are
func parseArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		out[i] = jsonx.ParseOr(s, s)
	}
	return out
}

// formatResult prints strings verbatim, numbers in display form (NaN and
// Infinity included) and everything else as JSON
func formatResult(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if n, ok := value.AsNumber(v); ok {
		return value.FormatNumber(n)
	}
	if s := jsonx.Stringify(v); s != "" {
		return s
	}
	return value.ToString(v)
}
