package compiler_test

import (
	"testing"

	"github.com/CakeVR/dialogic/internal/compiler"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", " , , "} {
		commands, diags := compiler.Parse(input)
		assert.Empty(t, commands, "input %q", input)
		assert.Empty(t, diags, "input %q", input)
	}
}

func TestParse_SingleCommand(t *testing.T) {
	commands, diags := compiler.Parse("show a")
	assert.Empty(t, diags)
	assert.Equal(t, []domain.Command{{Op: domain.OpShow, TargetPath: "a"}}, commands)
}

func TestParse_OrderedSequence(t *testing.T) {
	commands, diags := compiler.Parse("set a, show b , hide c")
	assert.Empty(t, diags)
	assert.Equal(t, []domain.Command{
		{Op: domain.OpSetExclusive, TargetPath: "a"},
		{Op: domain.OpShow, TargetPath: "b"},
		{Op: domain.OpHide, TargetPath: "c"},
	}, commands)
}

func TestParse_MalformedSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown operator", "foo bar"},
		{"missing path", "show"},
		{"uppercase operator", "SHOW a"},
		{"operator not first token", "foo show a"},
		{"operator inside longer word", "unshow x"},
		{"glued operators", "hideshow a"},
		{"no space after operator", "showa"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			commands, diags := compiler.Parse(tc.input)
			assert.Empty(t, commands)
			if assert.Len(t, diags, 1) {
				assert.Equal(t, domain.DiagMalformedSegment, diags[0].Kind)
			}
		})
	}
}

func TestParse_MalformedSegmentDoesNotAbort(t *testing.T) {
	commands, diags := compiler.Parse("garbage, hide eyepatch")
	assert.Len(t, diags, 1)
	assert.Equal(t, []domain.Command{{Op: domain.OpHide, TargetPath: "eyepatch"}}, commands)
}

func TestParse_BackslashesStripped(t *testing.T) {
	commands, diags := compiler.Parse(`show a\b`)
	assert.Empty(t, diags)
	assert.Equal(t, []domain.Command{{Op: domain.OpShow, TargetPath: "ab"}}, commands)
}

func TestParse_SlashPaths(t *testing.T) {
	commands, _ := compiler.Parse("set torso/armor_damaged")
	assert.Equal(t, []domain.Command{{Op: domain.OpSetExclusive, TargetPath: "torso/armor_damaged"}}, commands)
}

func TestParse_TrailingContentIgnored(t *testing.T) {
	// The segment must open with the operator; content after the path is ignored.
	commands, diags := compiler.Parse("show a extra tokens")
	assert.Empty(t, diags)
	assert.Equal(t, []domain.Command{{Op: domain.OpShow, TargetPath: "a"}}, commands)
}
