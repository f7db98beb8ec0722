package main

import (
	"context"
	"net/http"
	"os"

	"github.com/buildbarn/bb-indexed-allocation/pkg/allocator"
	"github.com/buildbarn/bb-storage/pkg/global"
	"github.com/buildbarn/bb-storage/pkg/program"
	global_pb "github.com/buildbarn/bb-storage/pkg/proto/configuration/global"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This tool simulates indexed file allocation on a fixed number of
// blocks. Every file receives a single index block, referring to the
// data blocks holding its contents. Blocks are picked at random from
// the ones that are free.
//
// Files passed through --file are allocated in order, after which the
// resulting block grid and file catalog are printed. When
// --listen-address is provided, the block grid is also served as a web
// page, where additional files can be added interactively.
//
// Tracing, logging and the diagnostics web server are configured
// through --global-configuration, which accepts the same options as
// the "global" message of other Buildbarn programs.

// getTracerProvider returns the tracer provider that allocations
// should be traced against, or nil if tracing is disabled.
// global.ApplyConfiguration() installs the global tracer provider.
func getTracerProvider(globalConfiguration *global_pb.Configuration) trace.TracerProvider {
	if globalConfiguration.GetTracing() == nil {
		return nil
	}
	return otel.GetTracerProvider()
}

func main() {
	totalBlocks := pflag.Int("total-blocks", allocator.DefaultTotalBlocks, "Number of blocks in the store")
	maximumFiles := pflag.Int64("maximum-files", 0, "Maximum number of files to admit, or zero for no limit")
	seed := pflag.Int64("seed", 0, "Seed for block selection, for reproducible runs")
	files := pflag.StringArray("file", nil, "File to allocate, in the form name:size")
	columns := pflag.Int("columns", 10, "Number of blocks per row when displaying the block grid")
	listenAddress := pflag.String("listen-address", "", "Address on which to serve the block grid and metrics")
	globalConfigurationPath := pflag.String("global-configuration", "", "Path to a Jsonnet file containing Buildbarn global configuration options, such as tracing and diagnostics")
	pflag.Parse()

	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if pflag.NArg() != 0 {
			return status.Errorf(codes.InvalidArgument, "Unexpected positional arguments: %v", pflag.Args())
		}
		if *columns <= 0 {
			return status.Errorf(codes.InvalidArgument, "Column count must be positive, got %d", *columns)
		}

		var globalConfiguration global_pb.Configuration
		if *globalConfigurationPath != "" {
			if err := util.UnmarshalConfigurationFromFile(*globalConfigurationPath, &globalConfiguration); err != nil {
				return util.StatusWrapf(err, "Failed to read global configuration from %s", *globalConfigurationPath)
			}
		}
		lifecycleState, _, err := global.ApplyConfiguration(&globalConfiguration, dependenciesGroup)
		if err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}

		configuration := &allocator.Configuration{
			TotalBlocks:  *totalBlocks,
			MaximumFiles: *maximumFiles,
		}
		if pflag.CommandLine.Changed("seed") {
			configuration.Seed = seed
		}
		a, _, err := allocator.NewAllocatorFromConfiguration(configuration, util.DefaultErrorLogger, getTracerProvider(&globalConfiguration))
		if err != nil {
			return util.StatusWrap(err, "Failed to create allocator")
		}

		for _, file := range *files {
			specification, err := parseFileSpecification(file)
			if err != nil {
				return err
			}
			if _, err := a.Allocate(specification.name, specification.size); err != nil {
				util.DefaultErrorLogger.Log(util.StatusWrapf(err, "Failed to allocate file %#v", specification.name))
			}
		}

		if err := writeBlockGrid(os.Stdout, a.GetBlockStates(), *columns); err != nil {
			return util.StatusWrap(err, "Failed to write block grid")
		}
		if err := writeCatalog(os.Stdout, a); err != nil {
			return util.StatusWrap(err, "Failed to write file catalog")
		}

		if *listenAddress == "" {
			return nil
		}
		router := mux.NewRouter()
		newBlockStateService(a, *columns, router)
		router.Handle("/metrics", promhttp.Handler())

		server := &http.Server{
			Addr:    *listenAddress,
			Handler: router,
		}
		siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			<-ctx.Done()
			return server.Close()
		})
		siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return util.StatusWrap(err, "Failed to serve block grid")
			}
			return nil
		})

		lifecycleState.MarkReadyAndWait(siblingsGroup)
		return nil
	})
}
