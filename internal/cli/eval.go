package cli

import (
	"fmt"
	"math/cmplx"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AdnanKapadia/ComplexPlot/internal/cplx"
	"github.com/AdnanKapadia/ComplexPlot/internal/expr"
	"github.com/AdnanKapadia/ComplexPlot/internal/style"
)

var (
	evalAt  string
	evalVar string
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression at a single point",
	Long: `Evaluate a complex expression at one point and print the value together
with its scalar projections.

Examples:
  cplot eval "z^2 + 1" --at 1+2i
  cplot eval "exp(i*pi)" --at 0
  cplot eval "sin(t)/t" --var t --at 0.5`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		point, err := cplx.ParsePoint(evalAt)
		if err != nil {
			style.Error(cmd.OutOrStderr(), err.Error())
			os.Exit(1)
		}

		compiled, err := expr.CompileString(args[0], evalVar)
		if err != nil {
			style.Error(cmd.OutOrStderr(), err.Error())
			os.Exit(1)
		}

		val, err := compiled.Eval(point)
		if err != nil {
			style.Error(cmd.OutOrStderr(), err.Error())
			os.Exit(1)
		}

		if viper.GetString("output") == "text" {
			printEvalText(cmd, compiled, point, val)
			return
		}

		emit(cmd, map[string]any{
			"expression": compiled.String(),
			"variable":   evalVar,
			"point":      cplx.Format(point),
			"value":      cplx.Format(val),
			"modulus":    cplx.ProjModulus.Apply(val),
			"argument":   cplx.ProjArgument.Apply(val),
			"real":       cplx.ProjReal.Apply(val),
			"imaginary":  cplx.ProjImaginary.Apply(val),
		})
	},
}

func printEvalText(cmd *cobra.Command, compiled *expr.Compiled, point, val complex128) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s at %s = %s\n",
		style.ExpressionStyle.Render(compiled.String()),
		style.AccentStyle.Render(cplx.Format(point)),
		style.ValueStyle.Render(cplx.Format(val)))

	if !cplx.IsFinite(val) {
		style.Warning(out, "result is not a finite number")
		return
	}
	fmt.Fprintf(out, "  modulus:   %g\n", cmplx.Abs(val))
	fmt.Fprintf(out, "  argument:  %g\n", cmplx.Phase(val))
	fmt.Fprintf(out, "  real:      %g\n", real(val))
	fmt.Fprintf(out, "  imaginary: %g\n", imag(val))
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalAt, "at", "0", "evaluation point, e.g. 1+2i")
	evalCmd.Flags().StringVar(&evalVar, "var", "z", "name of the free variable")
}
