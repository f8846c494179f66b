package graph_test

import (
	"strings"
	"testing"

	"github.com/CakeVR/dialogic/internal/presentation/graph"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	profile := &domain.Profile{
		Character: "princess",
		Layers: []domain.LayerDef{
			{Name: "torso", Type: domain.LayerTypeGroup, Children: []domain.LayerDef{
				{Name: "casual", Visible: true},
				{Name: "armor"},
			}},
			{Name: "eyepatch", Visible: true},
		},
	}

	out := graph.GenerateMermaid(profile)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `princess(("princess"))`)
	assert.Contains(t, out, `torso[["torso"]]`, "groups render as subroutines")
	assert.Contains(t, out, `torso_casual["👁 casual"]`, "visible sprites get the eye annotation")
	assert.Contains(t, out, `torso_armor["armor"]`)
	assert.Contains(t, out, "torso --> torso_casual")
	assert.Contains(t, out, "princess --> eyepatch")
}
