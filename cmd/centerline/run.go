package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/centerline/config"
	"github.com/katalvlaran/centerline/engine"
	"github.com/katalvlaran/centerline/internal/adapters"
	"github.com/katalvlaran/centerline/logging"
	"github.com/katalvlaran/centerline/metrics"
	"github.com/katalvlaran/centerline/validate"
)

var (
	runPolygonsPath string
	runOutputPath   string
	runConfigPath   string
	runSnapshotPath string
	runMetricsAddr  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pipeline against a GeoJSON polygon file",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runPolygonsPath, "polygons", "", "input GeoJSON polygon FeatureCollection (required)")
	runCmd.Flags().StringVar(&runOutputPath, "output", "centerlines.geojson", "output GeoJSON centerline FeatureCollection")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML config file (defaults to config.Default())")
	runCmd.Flags().StringVar(&runSnapshotPath, "snapshot", "", "JSON-lines file to receive intermediate-stage snapshots")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (disabled if empty)")
	_ = runCmd.MarkFlagRequired("polygons")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if runSnapshotPath != "" {
		cfg.DebugExportIntermediate = true
	}

	logger := logging.Default()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	if runMetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: runMetricsAddr, Handler: mux}
		go func() {
			logger.Info("serving metrics", "addr", runMetricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server stopped", err)
			}
		}()
		defer srv.Close()
	}

	source := adapters.GeoJSONPolygonSource{Path: runPolygonsPath}
	polygons, err := source.Load(ctx)
	if err != nil {
		return err
	}

	driver := engine.NewDriver(logger)
	driver.Metrics = collector
	if runSnapshotPath != "" {
		driver.Snapshots = adapters.JSONLinesSnapshotSink{Path: runSnapshotPath}
	}

	g, err := driver.RunBatch(ctx, polygons, cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if report, ok := driver.LastDiagnostics.(*validate.Report); ok {
		collector.ObserveReport(report)
	}

	sink := adapters.GeoJSONCenterlineSink{Path: runOutputPath}
	if err := sink.Write(ctx, g.Edges()); err != nil {
		return err
	}

	fmt.Printf("wrote %d edges across %d nodes to %s\n", g.EdgeCount(), g.NodeCount(), runOutputPath)
	return nil
}
