package mapdef

import (
	"errors"
	"fmt"

	"github.com/velmara/gridforge/conngraph"
)

// knownRoles is the closed set of region roles the compiler understands.
var knownRoles = map[conngraph.Role]bool{
	conngraph.RoleMain:       true,
	conngraph.RoleNatural:    true,
	conngraph.RoleThird:      true,
	conngraph.RoleFourth:     true,
	conngraph.RoleGold:       true,
	conngraph.RoleCenter:     true,
	conngraph.RoleChoke:      true,
	conngraph.RoleWatchtower: true,
	conngraph.RolePathway:    true,
}

// Validate runs every structural check and joins the failures, so a single
// call reports all defects at once. A nil return means the definition is
// safe to compile.
//
// Structural failures are hard: generation never proceeds past them.
// Connectivity problems, by contrast, are discovered after generation and
// reported as issues, never as errors.
func Validate(d *Definition) error {
	var errs []error

	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrBadDimensions, d.Width, d.Height))
	}
	if !d.Biome.Known() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrBadBiome, d.Biome))
	}

	seen := make(map[string]bool, len(d.Regions))
	for _, r := range d.Regions {
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.ID))
		}
		seen[r.ID] = true
		if !knownRoles[r.Role] {
			errs = append(errs, fmt.Errorf("%w: region %q role %q", ErrBadRole, r.ID, r.Role))
		}
		if _, err := r.Resources.Layout(); err != nil {
			errs = append(errs, fmt.Errorf("%w: region %q template %q", ErrBadTemplate, r.ID, r.Resources))
		}
		if r.Tier < 0 || r.Tier > MaxTier {
			errs = append(errs, fmt.Errorf("%w: region %q tier %d", ErrBadRole, r.ID, r.Tier))
		}
	}

	for i, c := range d.Connections {
		if !seen[c.From] {
			errs = append(errs, fmt.Errorf("%w: connection %d from %q", ErrUnknownRegion, i, c.From))
		}
		if !seen[c.To] {
			errs = append(errs, fmt.Errorf("%w: connection %d to %q", ErrUnknownRegion, i, c.To))
		}
		if !c.Kind.Known() {
			errs = append(errs, fmt.Errorf("%w: connection %d kind %q", ErrBadConnectionKind, i, c.Kind))
		}
	}

	for i, f := range d.Features {
		if err := validateFeature(f); err != nil {
			errs = append(errs, fmt.Errorf("feature %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// validateFeature checks one terrain-feature entry.
func validateFeature(f TerrainFeature) error {
	switch f.Kind {
	case FeatureElevationGradient:
		if f.Width <= 0 {
			return fmt.Errorf("%w: gradient needs width > 0", ErrBadFeature)
		}
		if f.Ease != "" && f.Ease != "linear" && f.Ease != "smooth" {
			return fmt.Errorf("%w: easing %q", ErrBadFeature, f.Ease)
		}
		return nil
	case FeatureElevationArea, FeatureWater, FeatureForest, FeatureVoid,
		FeatureRoad, FeatureMud, FeatureUnwalkable:
		if f.Shape == nil {
			return fmt.Errorf("%w: %s needs a shape", ErrBadFeature, f.Kind)
		}
		if _, err := f.Shape.Shape(); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: kind %q", ErrBadFeature, f.Kind)
}

// AssertValid panics on a structurally broken definition. Strictness is
// opt-in: the pipeline itself returns Validate's error instead.
func AssertValid(d *Definition) {
	if err := Validate(d); err != nil {
		panic(fmt.Sprintf("mapdef: invalid definition %q: %v", d.ID, err))
	}
}
