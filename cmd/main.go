package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"diskplot/internal/charts"
	"diskplot/internal/config"
	"diskplot/internal/database"
	"diskplot/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

func loadEnvironment() {
	logger := logging.GetLogger()

	envFile := ".env"
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
		} else {
			logger.WithField("file", envFile).Debug("Loaded environment variables")
		}
		return
	}

	// Fall back to the application directory.
	if execPath, err := os.Executable(); err == nil {
		envFile = filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
			} else {
				logger.WithField("file", envFile).Debug("Loaded environment variables")
			}
		}
	}
}

func main() {
	logger := logging.GetLogger()

	var logLevel string
	var output string

	rootCmd := &cobra.Command{
		Use:     "diskplot",
		Short:   "Render comparative charts from disk benchmark results",
		Long:    "Normalizes heterogeneous benchmark result files and renders comparative charts of the disk implementations under test",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				if err := logging.SetLogLevel(logLevel); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "result.png", "Output image path")

	var filebenchInput string
	filebenchCmd := &cobra.Command{
		Use:   "filebench",
		Short: "Plot filebench workload throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.Filebench(charts.FilebenchOptions{Input: filebenchInput, Output: output})
		},
	}
	filebenchCmd.Flags().StringVarP(&filebenchInput, "input", "i", "results/filebench_results.json", "Input JSON file")

	var traceInput string
	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Plot trace replay bandwidth",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.Trace(charts.TraceOptions{Input: traceInput, Output: output})
		},
	}
	traceCmd.Flags().StringVarP(&traceInput, "input", "i", "results/trace_reproduce_result.json", "Input JSON file")

	ycsbOpts := charts.YCSBOptions{}
	ycsbCmd := &cobra.Command{
		Use:   "ycsb",
		Short: "Plot YCSB throughput per database engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ycsbOpts.Output = output
			return charts.YCSB(ycsbOpts)
		},
	}
	ycsbCmd.Flags().StringVar(&ycsbOpts.Bolt, "bolt", "benchmark_results/boltdb_results.json", "BoltDB results file")
	ycsbCmd.Flags().StringVar(&ycsbOpts.SQLite, "sqlite", "benchmark_results/sqlite_results.json", "SQLite results file")
	ycsbCmd.Flags().StringVar(&ycsbOpts.Postgres, "postgres", "benchmark_results/postgres_results.json", "PostgreSQL results file")
	ycsbCmd.Flags().StringVar(&ycsbOpts.Rocks, "rocks", "benchmark_results/rocksdb_results.json", "RocksDB results file")

	var fioInput string
	fioCmd := &cobra.Command{
		Use:   "fio",
		Short: "Plot fio read/write throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.Fio(charts.FioOptions{Input: fioInput, Output: output})
		},
	}
	fioCmd.Flags().StringVarP(&fioInput, "input", "i", "benchmark_results/result.json", "Input JSON file")

	var cacheSizeInput string
	cacheSizeCmd := &cobra.Command{
		Use:   "cache-size",
		Short: "Plot throughput over cache size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.CacheSize(charts.CacheSizeOptions{Input: cacheSizeInput, Output: output})
		},
	}
	cacheSizeCmd.Flags().StringVarP(&cacheSizeInput, "input", "i", "results/cache_size_result.json", "Input JSON file")

	var cleaningInput string
	cleaningCmd := &cobra.Command{
		Use:   "cleaning",
		Short: "Plot throughput per run for cleaning configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.Cleaning(charts.CleaningOptions{Input: cleaningInput, Output: output})
		},
	}
	cleaningCmd.Flags().StringVarP(&cleaningInput, "input", "i", "results", "Directory with throughput series files")

	var costBreakdownInput string
	costBreakdownCmd := &cobra.Command{
		Use:   "cost-breakdown",
		Short: "Plot cost breakdown per disk layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.CostBreakdown(charts.CostBreakdownOptions{Input: costBreakdownInput, Output: output})
		},
	}
	costBreakdownCmd.Flags().StringVarP(&costBreakdownInput, "input", "i", "results", "Directory with benchmark logs")

	var diskUtilityInput string
	diskUtilityCmd := &cobra.Command{
		Use:   "disk-utility",
		Short: "Plot WAF and throughput over disk fill percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.DiskUtility(charts.DiskUtilityOptions{Input: diskUtilityInput, Output: output})
		},
	}
	diskUtilityCmd.Flags().StringVarP(&diskUtilityInput, "input", "i", "results/reproduce_results.csv", "Input CSV file")

	var optimizationInput string
	optimizationCmd := &cobra.Command{
		Use:   "optimization",
		Short: "Plot baseline vs optimized throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return charts.Optimization(charts.OptimizationOptions{Input: optimizationInput, Output: output})
		},
	}
	optimizationCmd.Flags().StringVarP(&optimizationInput, "input", "i", "results/optimization_results.json", "Input JSON file")

	var specFile, measurement string
	var fromDB bool
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart from a YAML chart spec",
		Long:  "Render any chart described by a YAML spec, reading records from the spec's input file or from InfluxDB with --from-db",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.LoadSpec(specFile)
			if err != nil {
				return err
			}
			if spec.Chart.Output == "" {
				spec.Chart.Output = output
			}

			if fromDB {
				loadEnvironment()
				client, err := database.NewClientFromEnv(logging.GetLogger())
				if err != nil {
					return err
				}
				defer client.Close()

				records, err := client.QueryRecords(context.Background(), measurement)
				if err != nil {
					return err
				}
				return charts.RunSpec(spec, records)
			}

			records, err := charts.LoadSpecRecords(spec)
			if err != nil {
				return err
			}
			return charts.RunSpec(spec, records)
		},
	}
	renderCmd.Flags().StringVarP(&specFile, "config", "c", "", "Path to YAML chart spec")
	renderCmd.Flags().BoolVar(&fromDB, "from-db", false, "Load records from InfluxDB instead of the input file")
	renderCmd.Flags().StringVar(&measurement, "measurement", "benchmark_results", "InfluxDB measurement to query")
	renderCmd.MarkFlagRequired("config")

	var validateFile string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML chart spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.LoadSpec(validateFile)
			if err != nil {
				logger.WithField("config_file", validateFile).WithError(err).Error("Chart spec validation failed")
				return err
			}
			logger.WithField("chart", spec.Chart.Name).Info("Chart spec is valid")
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&validateFile, "config", "c", "", "Path to YAML chart spec")
	validateCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(
		filebenchCmd,
		traceCmd,
		ycsbCmd,
		fioCmd,
		cacheSizeCmd,
		cleaningCmd,
		costBreakdownCmd,
		diskUtilityCmd,
		optimizationCmd,
		renderCmd,
		validateCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Command execution failed")
	}
}
