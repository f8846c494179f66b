package runtime_test

import (
	"context"
	"testing"

	"github.com/CakeVR/dialogic/internal/runtime"
	"github.com/CakeVR/dialogic/internal/testutils"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ShowAndHide(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("scar_left", false)
	tree.AddLayer("eyepatch", true)

	engine := runtime.NewEngine()
	diags := engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "scar_left"},
		{Op: domain.OpHide, TargetPath: "eyepatch"},
	}, tree)

	assert.Empty(t, diags)
	assert.True(t, tree.Node("scar_left").Visible)
	assert.False(t, tree.Node("eyepatch").Visible)
}

func TestEngine_HideIsIdempotent(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("a", true)

	engine := runtime.NewEngine()
	commands := []domain.Command{{Op: domain.OpHide, TargetPath: "a"}}

	for i := 0; i < 2; i++ {
		diags := engine.Apply(context.Background(), commands, tree)
		assert.Empty(t, diags, "pass %d", i)
		assert.False(t, tree.Node("a").Visible, "pass %d", i)
	}
}

func TestEngine_LastCommandWins(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("a", false)

	engine := runtime.NewEngine()
	diags := engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "a"},
		{Op: domain.OpHide, TargetPath: "a"},
	}, tree)

	assert.Empty(t, diags)
	assert.False(t, tree.Node("a").Visible)
}

func TestEngine_UnresolvedPath(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("a", false)

	engine := runtime.NewEngine()
	diags := engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "missing"},
		{Op: domain.OpShow, TargetPath: "a"},
	}, tree)

	// The failure is non-fatal: the second command still ran.
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagUnresolvedPath, diags[0].Kind)
	assert.Equal(t, "missing", diags[0].Subject)
	assert.True(t, tree.Node("a").Visible)
}

func TestEngine_NotALayerNode(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddGroup("rig")

	engine := runtime.NewEngine()
	diags := engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "rig"},
	}, tree)

	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagNotALayerNode, diags[0].Kind)
	assert.Empty(t, tree.ShowCalls)
}

func TestEngine_Hooks(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("a", false)

	var applied []string
	var diagnosed []domain.DiagnosticKind
	var shown, hidden int

	hooks := domain.LifecycleHooks{
		OnCommandApply: func(_ context.Context, e *domain.CommandEvent) {
			applied = append(applied, string(e.Op)+" "+e.Path)
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			diagnosed = append(diagnosed, e.Diagnostic.Kind)
		},
		OnLayerShow: func(_ context.Context, _ *domain.LayerEvent) { shown++ },
		OnLayerHide: func(_ context.Context, _ *domain.LayerEvent) { hidden++ },
	}

	engine := runtime.NewEngine(runtime.WithHooks(hooks))
	engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpShow, TargetPath: "a"},
		{Op: domain.OpHide, TargetPath: "a"},
		{Op: domain.OpShow, TargetPath: "ghost"},
	}, tree)

	assert.Equal(t, []string{"show a", "hide a", "show ghost"}, applied)
	assert.Equal(t, []domain.DiagnosticKind{domain.DiagUnresolvedPath}, diagnosed)
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, hidden)
}
