package schema

import (
	"fmt"
	"strings"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DecodeProfile parses YAML bytes into a validated Profile.
func DecodeProfile(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := ValidateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ValidateProfile checks the structural rules the directive engine relies on:
// the character is named, every node is named without path separators, node
// types are known, and sibling names are unique (paths would be ambiguous
// otherwise).
func ValidateProfile(p *domain.Profile) error {
	var errs []error

	if strings.TrimSpace(p.Character) == "" {
		errs = append(errs, &ValidationError{Key: "character", Reason: "required"})
	}
	errs = append(errs, validateLayers("", p.Layers)...)

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func validateLayers(parent string, layers []domain.LayerDef) []error {
	var errs []error
	seen := make(map[string]bool, len(layers))

	for _, l := range layers {
		path := l.Name
		if parent != "" {
			path = parent + "/" + l.Name
		}

		switch {
		case strings.TrimSpace(l.Name) == "":
			errs = append(errs, &ValidationError{Key: parent, Reason: "layer missing name"})
			continue
		case strings.ContainsAny(l.Name, `/\`):
			errs = append(errs, &ValidationError{Key: path, Reason: "layer name must not contain path separators", Value: l.Name})
		}

		if seen[l.Name] {
			errs = append(errs, &ValidationError{Key: path, Reason: "duplicate sibling name", Value: l.Name})
		}
		seen[l.Name] = true

		switch l.Type {
		case "", domain.LayerTypeSprite, domain.LayerTypeGroup:
		default:
			errs = append(errs, &ValidationError{Key: path, Reason: "unknown layer type", Value: l.Type})
		}

		errs = append(errs, validateLayers(path, l.Children)...)
	}
	return errs
}

// DecodeLayerMeta decodes a layer's free-form metadata into a host-defined
// struct (mapstructure tags). The engine never interprets metadata; this is
// the hatch through which renderers read their own hints (tints, offsets,
// mirror flags) without the schema knowing about them.
func DecodeLayerMeta(layer *domain.LayerDef, out any) error {
	if err := mapstructure.WeakDecode(layer.Metadata, out); err != nil {
		return fmt.Errorf("failed to decode metadata for layer %s: %w", layer.Name, err)
	}
	return nil
}
