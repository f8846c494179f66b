package observability_test

import (
	"context"
	"testing"

	"github.com/CakeVR/dialogic/internal/runtime"
	"github.com/CakeVR/dialogic/internal/testutils"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountThroughEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	tree := testutils.NewFakeTree()
	tree.AddLayer("a", false)

	engine := runtime.NewEngine(runtime.WithHooks(metrics.Hooks()))
	engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "a"},
		{Op: domain.OpHide, TargetPath: "a"},
		{Op: domain.OpShow, TargetPath: "missing"},
	}, tree)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CommandsApplied.WithLabelValues("show")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.CommandsApplied.WithLabelValues("hide")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Diagnostics.WithLabelValues("unresolved_path")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LayerToggles.WithLabelValues("show")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LayerToggles.WithLabelValues("hide")))
}
