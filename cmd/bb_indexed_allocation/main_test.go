package main

import (
	"testing"

	global_pb "github.com/buildbarn/bb-storage/pkg/proto/configuration/global"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel"
)

func TestGetTracerProvider(t *testing.T) {
	t.Run("TracingDisabled", func(t *testing.T) {
		require.Nil(t, getTracerProvider(&global_pb.Configuration{}))
	})

	t.Run("TracingEnabled", func(t *testing.T) {
		// Spans should be sent to the provider installed by
		// global.ApplyConfiguration().
		tracerProvider := getTracerProvider(&global_pb.Configuration{
			Tracing: &global_pb.TracingConfiguration{},
		})
		require.NotNil(t, tracerProvider)
		require.Equal(t, otel.GetTracerProvider(), tracerProvider)
	})
}
