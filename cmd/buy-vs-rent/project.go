package main

import (
	"fmt"
	"os"

	"github.com/mlavoie/buy-vs-rent/internal/config"
	"github.com/mlavoie/buy-vs-rent/internal/projection"
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/output"
	"github.com/mlavoie/buy-vs-rent/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	projectConfigPath   string
	projectOutputFormat string
	projectOutputFile   string
	projectLogLevel     string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a projection from a YAML configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfiguration(projectConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %v", projectConfigPath, err)
		}

		logger, err := initializeLogger(conf.Logging, projectLogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		// CLI overrides take precedence over config.
		outputFormat := conf.Output.Format
		if projectOutputFormat != "" {
			outputFormat = projectOutputFormat
		}
		if outputFormat == "" {
			outputFormat = constants.OutputFormatPretty
		}
		outputFile := conf.Output.File
		if projectOutputFile != "" {
			outputFile = projectOutputFile
		}

		for _, warning := range conf.Projection.Warnings() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		result, err := projection.Project(logger, conf.Projection)
		if err != nil {
			logger.Error("failed to compute projection",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return err
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(cmd.OutOrStdout(), result)
		case constants.OutputFormatCSV:
			output.CsvFormat(cmd.OutOrStdout(), result)
		case constants.OutputFormatPDF:
			document, err := report.Generate(result)
			if err != nil {
				return fmt.Errorf("failed to render report: %v", err)
			}
			if outputFile == "" {
				outputFile = "buy-vs-rent.pdf"
			}
			if err := os.WriteFile(outputFile, document, 0644); err != nil {
				return fmt.Errorf("failed to write report to %s: %v", outputFile, err)
			}
			logger.Info("wrote PDF report",
				zap.String("op", "main"),
				zap.String("file", outputFile),
			)
		default:
			return fmt.Errorf("invalid output format: %s", outputFormat)
		}

		return nil
	},
}

func init() {
	projectCmd.Flags().StringVar(&projectConfigPath, "config", constants.DefaultConfigFile, "path to configuration file")
	projectCmd.Flags().StringVar(&projectOutputFormat, "output-format", "", "type of output override: pretty, csv, pdf")
	projectCmd.Flags().StringVar(&projectOutputFile, "output-file", "", "destination file for pdf output")
	projectCmd.Flags().StringVar(&projectLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.AddCommand(projectCmd)
}
