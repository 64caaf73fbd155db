package deck

import (
	"github.com/aroth/blitzdeck/internal/config"
)

// Geometry builds the placement directive for one slide's text region.
// The box and font styling come straight from config; the anchors, wrap,
// and autofit settings are fixed regardless of the fitted size.
func Geometry(cfg config.Config) GeometryDirective {
	return GeometryDirective{
		Frame: Box{
			LeftEMU:   cfg.Box.LeftEMU(),
			TopEMU:    cfg.Box.TopEMU(),
			WidthEMU:  cfg.Box.WidthEMU(),
			HeightEMU: cfg.Box.HeightEMU(),
		},
		AnchorHorizontal: AnchorCenter,
		AnchorVertical:   AnchorCenter,
		WrapEnabled:      false,
		AutofitEnabled:   false,
		FontName:         cfg.Font.Name,
		Bold:             cfg.Font.Bold,
		ColorRGB:         cfg.Font.ColorRGB,
	}
}
