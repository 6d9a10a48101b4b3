package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdnanKapadia/ComplexPlot/internal/server"
	"github.com/AdnanKapadia/ComplexPlot/internal/style"
)

var (
	servePort          int
	serveHost          string
	serveMetrics       bool
	serveCORS          bool
	serveMaxResolution int
	serveMaxSteps      int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP evaluation API",
	Long: `Start an HTTP server exposing the evaluation core as a JSON API.

The server provides:
- POST /api/v1/parse for live expression validation
- POST /api/v1/contours, /api/v1/grid/domain, /api/v1/grid/surface
- POST /api/v1/contours/integral plus a WebSocket partial-sum stream
- Prometheus metrics endpoint

Examples:
  cplot serve
  cplot serve --port 9000 --host 0.0.0.0
  cplot serve --max-resolution 500 --metrics=false`,
	Run: func(cmd *cobra.Command, args []string) {
		config := server.DefaultConfig()
		config.Host = serveHost
		config.Port = servePort
		config.EnableMetrics = serveMetrics
		config.EnableCORS = serveCORS
		config.MaxResolution = serveMaxResolution
		config.MaxSteps = serveMaxSteps

		srv := server.New(config)

		if !quiet {
			style.Info(cmd.OutOrStderr(), fmt.Sprintf("listening on http://%s", srv.GetAddr()))
		}

		if err := srv.StartWithGracefulShutdown(); err != nil {
			style.Error(cmd.OutOrStderr(), fmt.Sprintf("server error: %v", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "server port")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "server host")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", true, "enable Prometheus metrics endpoint")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", true, "enable CORS headers")
	serveCmd.Flags().IntVar(&serveMaxResolution, "max-resolution", 2000, "reject grid requests above this resolution")
	serveCmd.Flags().IntVar(&serveMaxSteps, "max-steps", 1_000_000, "reject contour requests above this sample count")
}
