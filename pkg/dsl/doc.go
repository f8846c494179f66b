// Package dsl provides a fluent builder for layer directives.
//
// Authoring tools that generate directives programmatically (timeline
// editors, migration scripts) should not concatenate strings by hand. The
// builder produces canonical directive text that round-trips through the
// parser:
//
//	d := dsl.New().
//		Set("torso/armor_damaged").
//		Show("scar_left").
//		Hide("eyepatch").
//		String()
//	// "set torso/armor_damaged, show scar_left, hide eyepatch"
package dsl
