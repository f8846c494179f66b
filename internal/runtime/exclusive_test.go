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

// buildOutfits creates three sibling outfit layers under "torso" plus a
// non-layer group sibling, with mixed starting visibility.
func buildOutfits(t *testing.T) *testutils.FakeTree {
	t.Helper()
	tree := testutils.NewFakeTree()
	tree.AddLayer("torso/casual", true)
	tree.AddLayer("torso/armor", true)
	tree.AddLayer("torso/armor_damaged", false)
	tree.AddGroup("torso/attachments")
	return tree
}

func TestEngine_SetExclusive(t *testing.T) {
	for _, includeSelf := range []bool{false, true} {
		name := "host excludes self"
		if includeSelf {
			name = "host includes self"
		}
		t.Run(name, func(t *testing.T) {
			tree := buildOutfits(t)
			tree.IncludeSelfInSiblings = includeSelf

			engine := runtime.NewEngine()
			diags := engine.Apply(context.Background(), []domain.Command{
				{Op: domain.OpSetExclusive, TargetPath: "torso/armor_damaged"},
			}, tree)
			assert.Empty(t, diags)

			// Exactly the target is shown among layer siblings.
			assert.True(t, tree.Node("torso/armor_damaged").Visible)
			assert.False(t, tree.Node("torso/casual").Visible)
			assert.False(t, tree.Node("torso/armor").Visible)

			// The target receives exactly one Show and is never hidden,
			// regardless of enumeration convention.
			assert.Equal(t, []string{"torso/armor_damaged"}, tree.ShowCalls)
			assert.NotContains(t, tree.HideCalls, "torso/armor_damaged")

			// Non-layer siblings are left alone.
			assert.NotContains(t, tree.HideCalls, "torso/attachments")
		})
	}
}

func TestEngine_SetExclusive_RegardlessOfPriorState(t *testing.T) {
	// Every starting visibility combination converges to the same result.
	for mask := 0; mask < 8; mask++ {
		tree := testutils.NewFakeTree()
		tree.AddLayer("a", mask&1 != 0)
		tree.AddLayer("b", mask&2 != 0)
		tree.AddLayer("c", mask&4 != 0)

		engine := runtime.NewEngine()
		diags := engine.Apply(context.Background(), []domain.Command{
			{Op: domain.OpSetExclusive, TargetPath: "b"},
		}, tree)
		require.Empty(t, diags, "mask %d", mask)

		assert.False(t, tree.Node("a").Visible, "mask %d", mask)
		assert.True(t, tree.Node("b").Visible, "mask %d", mask)
		assert.False(t, tree.Node("c").Visible, "mask %d", mask)
	}
}

func TestEngine_SetExclusive_OnlySpansOneParent(t *testing.T) {
	tree := testutils.NewFakeTree()
	tree.AddLayer("torso/armor", false)
	tree.AddLayer("torso/casual", true)
	tree.AddLayer("head/hat", true)

	engine := runtime.NewEngine()
	engine.Apply(context.Background(), []domain.Command{
		{Op: domain.OpSetExclusive, TargetPath: "torso/armor"},
	}, tree)

	assert.True(t, tree.Node("head/hat").Visible, "unrelated subtree must not change")
}
