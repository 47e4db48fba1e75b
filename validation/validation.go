package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// The browser UI constrains every styling widget to its own range, but the API
// can be called directly, so the same ranges and enums are enforced here before
// anything is written into a session.

var validate = validator.New()

// LineDashes are the accepted dash styles for the trace line.
var LineDashes = []string{"solid", "dot", "dash", "longdash", "dashdot", "longdashdot"}

// LineShapes are the accepted line shapes. "spline" draws with interpolation.
var LineShapes = []string{"linear", "spline"}

// Modes are the accepted drawing modes. An empty selection means "none".
var Modes = []string{"lines", "markers"}

// CheckOpacity validates a [0,1] opacity-style value.
func CheckOpacity(name string, v float64) error {
	if err := validate.Var(v, "gte=0,lte=1"); err != nil {
		return fmt.Errorf("%s must be between 0 and 1", name)
	}
	return nil
}

// CheckSmoothing validates line smoothing, which plotly caps at 1.3.
func CheckSmoothing(v float64) error {
	if err := validate.Var(v, "gte=0,lte=1.3"); err != nil {
		return fmt.Errorf("line_smoothing must be between 0 and 1.3")
	}
	return nil
}

// CheckPixelSize validates marker size and line width, both 0-10 px.
func CheckPixelSize(name string, v int) error {
	if err := validate.Var(v, "gte=0,lte=10"); err != nil {
		return fmt.Errorf("%s must be between 0 and 10", name)
	}
	return nil
}

// CheckColor validates a "#RRGGBB" color field.
func CheckColor(name, v string) error {
	if err := validate.Var(v, "hexcolor"); err != nil || len(v) != 7 {
		return fmt.Errorf("%s must be a #RRGGBB hex color", name)
	}
	return nil
}

// CheckEnum validates v against the allowed values.
func CheckEnum(name, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v", name, allowed)
}

// CheckMode validates a drawing-mode selection: any subset of Modes, no
// duplicates. Empty is valid and renders as "none".
func CheckMode(modes []string) error {
	seen := make(map[string]bool, len(modes))
	for _, m := range modes {
		if err := CheckEnum("mode", m, Modes); err != nil {
			return err
		}
		if seen[m] {
			return fmt.Errorf("mode contains %q twice", m)
		}
		seen[m] = true
	}
	return nil
}

// CheckMarkerSymbol validates the marker symbol against the plotly symbol set.
func CheckMarkerSymbol(v string) error {
	if !markerSymbolSet[v] {
		return fmt.Errorf("unknown marker symbol %q", v)
	}
	return nil
}
