package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/snapclient"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/exporter"
	"github.com/vfg2006/snapchat-ads-report/internal/output"
	"github.com/vfg2006/snapchat-ads-report/internal/usecases/reporting"
	"github.com/vfg2006/snapchat-ads-report/pkg/log"

	_ "time/tzdata"
)

var (
	startDate string
	endDate   string
	quiet     bool
	v         = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "snapchat-report",
	Short: "Export daily Snapchat Ads campaign stats to a file",
	Long: `snapchat-report exchanges the stored refresh token for an access token, lists
every campaign of the ad account and writes one row per campaign and day.

The window must span less than 30 days. Credentials come from the environment
or a .env file (run snapchat-authorize once to create it).

Example usage:
  snapchat-report --start 2021-01-01 --end 2021-01-11
  snapchat-report -s 2021-01-01 -e 2021-01-11 --format xlsx --output-dir reports`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&startDate, "start", "s", "", "start date of the report (YYYY-MM-DD)")
	flags.StringVarP(&endDate, "end", "e", "", "end date of the report (YYYY-MM-DD)")
	flags.String("format", "", "output format: csv or xlsx (default csv)")
	flags.String("output-dir", "", "directory for the report file (default current directory)")
	flags.String("log-level", "", "log level (default info)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "no spinner and no summary table")

	_ = rootCmd.MarkFlagRequired("start")
	_ = rootCmd.MarkFlagRequired("end")

	_ = v.BindPFlag("EXPORT_FORMAT", flags.Lookup("format"))
	_ = v.BindPFlag("EXPORT_OUTPUT_DIR", flags.Lookup("output-dir"))
	_ = v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	window, err := domain.ParseDateWindow(startDate, endDate)
	if err != nil {
		return err
	}

	// A janela é recusada antes de qualquer configuração ou rede.
	if err := window.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logCloser, err := log.Setup(log.Options{Level: cfg.App.LogLevel, File: cfg.App.LogFile})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	exp, err := exporter.New(cfg.Export.Format)
	if err != nil {
		return config.NewConfigError(err.Error())
	}

	location, err := cfg.Snapchat.Location()
	if err != nil {
		return err
	}

	integrator := snapchat.New(location, snapclient.NewClient(cfg))
	progress := output.NewProgress(os.Stderr, quiet)
	service := reporting.NewService(integrator, reporting.WithProgress(progress.Observe))

	table, err := service.Run(context.Background(), cfg.Snapchat, window)
	if err != nil {
		return err
	}

	path, err := exp.Export(cfg.Export.OutputDir, table)
	if err != nil {
		return err
	}

	if quiet {
		fmt.Fprintln(os.Stdout, path)
		return nil
	}

	output.PrintSummary(os.Stdout, table, path)
	return nil
}

func printError(err error) {
	red := color.New(color.FgRed, color.Bold)

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		red.Fprintf(os.Stderr, "Error [%s] at %s (stage %s): ", reportErr.Code(), reportErr.Op, reportErr.Stage)
		fmt.Fprintln(os.Stderr, reportErr.Err.Error())
		return
	}

	red.Fprintf(os.Stderr, "Error [%s]: ", reporting.ErrorCode(err))
	fmt.Fprintln(os.Stderr, err.Error())
}
