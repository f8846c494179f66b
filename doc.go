/*
Package dialogic implements the layered-portrait directive engine used by
dialogue authoring tools.

A directive is a compact text command language for toggling the visibility of
named sprite layers in a character portrait. Authors attach directives to
dialogue events; the host renderer applies them to its layer tree:

	"set torso/armor_damaged, show scar_left, hide eyepatch"

Each comma-separated segment is an operator (show, hide, set) plus a
slash-delimited layer path. "set" has radio-button semantics: it shows the
target and hides every other layer under the same parent.

The engine is host-agnostic. Parsing is pure; evaluation runs against the
small ports.LayerTree capability, so it can drive a real renderer or the
in-memory tree bundled for previews and tests. Bad input never fails a call:
malformed segments, unknown paths, and non-layer targets come back as
diagnostics while the rest of the directive still applies.

# Usage

	eng := dialogic.New()

	commands, diags := eng.Parse("set torso/armor, show scar_left")
	for _, d := range diags {
		log.Println("dropped:", d)
	}

	diags = eng.Apply(ctx, commands, tree) // tree is the host's ports.LayerTree

Hosts that keep authored profiles around can let the engine do the whole
round trip instead:

	loader, _ := memory.NewFromProfiles(profile)
	eng = dialogic.New(dialogic.WithLoader(loader))
	result, err := eng.Preview(ctx, "princess", "set torso/armor_damaged")
	// result.Visibility is what the directive leaves on screen.
*/
package dialogic
