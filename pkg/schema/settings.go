package schema

// DefaultSettings are the plugin defaults applied underneath user settings.
func DefaultSettings() map[string]any {
	return map[string]any{
		"portraits": map[string]any{
			"default_visible": true,
			"warn_on_missing": true,
		},
		"editor": map[string]any{
			"preview_scale": 1.0,
		},
	}
}

// MergeSettings overlays user settings onto defaults and returns the result.
// Nested maps merge recursively; scalar user values win; keys absent from
// user keep their defaults. Neither input map is mutated.
func MergeSettings(defaults, user map[string]any) map[string]any {
	out := make(map[string]any, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}

	for k, uv := range user {
		dv, exists := out[k]
		if !exists {
			out[k] = uv
			continue
		}

		dm, dOK := dv.(map[string]any)
		um, uOK := uv.(map[string]any)
		if dOK && uOK {
			out[k] = MergeSettings(dm, um)
			continue
		}

		out[k] = uv
	}
	return out
}
