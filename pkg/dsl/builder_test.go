package dsl_test

import (
	"testing"

	"github.com/CakeVR/dialogic/internal/compiler"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/dsl"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_String(t *testing.T) {
	got := dsl.New().
		Set("torso/armor_damaged").
		Show("scar_left").
		Hide("eyepatch").
		String()

	assert.Equal(t, "set torso/armor_damaged, show scar_left, hide eyepatch", got)
}

func TestBuilder_RoundTripsThroughParser(t *testing.T) {
	b := dsl.New().Set("torso/armor").Show("scar_left").Hide("eyepatch")

	parsed, diags := compiler.Parse(b.String())
	assert.Empty(t, diags)
	assert.Equal(t, b.Commands(), parsed)
}

func TestBuilder_SanitizesPaths(t *testing.T) {
	b := dsl.New().Show(` a\b `).Hide("").Hide(`\`)
	assert.Equal(t, []domain.Command{{Op: domain.OpShow, TargetPath: "ab"}}, b.Commands())
}

func TestBuilder_Empty(t *testing.T) {
	b := dsl.New()
	assert.Empty(t, b.Commands())
	assert.Equal(t, "", b.String())
}
