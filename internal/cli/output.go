package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
	"github.com/AdnanKapadia/ComplexPlot/internal/style"
)

// emit writes data to the command's stdout in the selected output format.
// The text format is indented JSON; structured consumers should pass
// --output json or yaml explicitly.
func emit(cmd *cobra.Command, data interface{}) {
	switch viper.GetString("output") {
	case "yaml":
		style.PrintYAML(cmd.OutOrStdout(), data)
	default:
		style.PrintJSON(cmd.OutOrStdout(), data)
	}
}

// parseScalar evaluates flag text like "2*pi" as a constant expression and
// returns its real part, so interval bounds accept the same syntax as
// everything else.
func parseScalar(input string) (float64, error) {
	compiled, err := expr.CompileString(input, "t")
	if err != nil {
		return 0, fmt.Errorf("invalid numeric expression %q: %w", input, err)
	}
	val, err := compiled.Eval(0)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric expression %q: %w", input, err)
	}
	if imag(val) != 0 {
		return 0, fmt.Errorf("numeric expression %q is not real", input)
	}
	return real(val), nil
}
