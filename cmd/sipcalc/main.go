package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sipgo/investment-calculator/internal/calculation"
	"github.com/sipgo/investment-calculator/internal/config"
	"github.com/sipgo/investment-calculator/internal/output"
	"github.com/sipgo/investment-calculator/internal/server"
	"github.com/sipgo/investment-calculator/pkg/logger"
)

var (
	inputFile    string
	outputFormat string
	debugMode    string
	serverPort   int
	exampleFile  string
)

var rootCmd = &cobra.Command{
	Use:   "sipcalc",
	Short: "SIP and lumpsum investment projection calculator",
	Long: `sipcalc projects the combined future value of a monthly SIP and a
one-time lumpsum investment over a chosen horizon, produces a year-wise
growth series and exports reports in several formats.`,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run a projection from an input file and write a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(logger.Config{Level: debugMode, Pretty: true})
		logger.SetGlobalLogger(log)

		parser := config.NewInputParser()
		inputs, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to load inputs: %w", err)
		}

		engine := calculation.NewProjectionEngine()
		engine.SetLogger(&calculation.ZerologAdapter{L: log})
		result := engine.Project(*inputs)

		// Console output goes straight to stdout; everything else is written
		// to a date-stamped file.
		if output.NormalizeFormatName(outputFormat) == "console" {
			data, err := output.ConsoleFormatter{}.Format(result)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		}

		files, err := output.GenerateReport(result, outputFormat)
		if err != nil {
			return err
		}
		for _, f := range files {
			log.Info().Str("file", f).Msg("Report written")
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive calculator web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if serverPort != 0 {
			settings.Port = serverPort
		}
		output.CurrencySymbol = settings.CurrencySymbol

		log := logger.New(logger.Config{Level: settings.LogLevel, Pretty: settings.DevMode})
		logger.SetGlobalLogger(log)

		srv := server.New(server.Config{
			Port:     settings.Port,
			Log:      log,
			Settings: settings,
			DevMode:  settings.DevMode,
		})

		go func() {
			if err := srv.Start(); err != nil {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}()
		log.Info().Int("port", settings.Port).Msg("Server started successfully")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		log.Info().Msg("Server stopped")
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example input file to get started",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if err := config.SaveInputs(parser.CreateExampleInputs(), exampleFile); err != nil {
			return fmt.Errorf("failed to write example file: %w", err)
		}
		fmt.Printf("Example input file written to %s\n", exampleFile)
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available report formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range output.AvailableFormatterNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "inputs.yaml", "Path to the YAML input file")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Report format (or \"all\")")
	calculateCmd.Flags().StringVar(&debugMode, "log-level", "info", "Log level (debug, info, warn, error)")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "Listen port (overrides SIPCALC_PORT)")

	exampleCmd.Flags().StringVarP(&exampleFile, "output", "o", "inputs.yaml", "Where to write the example file")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(formatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
