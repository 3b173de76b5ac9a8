// Package main provides the CLI entry point for turnoutnorm.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukval/turnoutnorm/pkg/turnout"
	"github.com/ukval/turnoutnorm/pkg/turnout/models"
	"github.com/ukval/turnoutnorm/pkg/turnout/output"
)

var (
	outputPath string
	layoutName string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "turnoutnorm",
		Short: "Normalize election turnout spreadsheets into JSON records",
		Long: `turnoutnorm extracts (year, state, turnout) records from turnout
spreadsheets and writes them as a sorted JSON array.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	censusCmd := &cobra.Command{
		Use:   "census [input.xlsx...]",
		Short: "Extract records from multi-block census workbooks",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCensus,
	}
	censusCmd.Flags().StringVar(&layoutName, "layout", "a5a", "Workbook layout: a5a or a5b")

	projectCmd := &cobra.Command{
		Use:   "project [input.csv...]",
		Short: "Extract records from Elections Project turnout CSVs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runProject,
	}

	rootCmd.AddCommand(censusCmd, projectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCensus(cmd *cobra.Command, args []string) error {
	if err := checkInputs(args); err != nil {
		return err
	}
	layout, err := turnout.LayoutByName(layoutName)
	if err != nil {
		return err
	}
	records, err := turnout.Census(args, layout)
	if err != nil {
		return err
	}
	return emit(records)
}

func runProject(cmd *cobra.Command, args []string) error {
	if err := checkInputs(args); err != nil {
		return err
	}
	records, err := turnout.Project(args)
	if err != nil {
		return err
	}
	return emit(records)
}

func checkInputs(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}
	return nil
}

func emit(records []models.Record) error {
	slog.Info("writing records", "total", len(records))
	if outputPath != "" {
		return output.WriteFile(outputPath, records)
	}
	data, err := output.ToJSON(records)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
