package geom_test

import (
	"fmt"

	"github.com/spotlight-tour/spotlight/pkg/geom"
)

// ExampleComputeLayout highlights a KPI widget inside a dashboard sheet and
// places the tooltip to the right of it.
func ExampleComputeLayout() {
	container := geom.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	target := geom.Rect{X: 100, Y: 100, Width: 200, Height: 50}

	layout := geom.ComputeLayout(target, container, geom.AnchorRight)

	fmt.Println("top mask:", layout.Mask.Top)
	fmt.Println("bottom mask:", layout.Mask.Bottom)
	fmt.Printf("tooltip at (%g,%g), width %g\n",
		layout.Tooltip.X, layout.Tooltip.Y, layout.Tooltip.Width)
	// Output:
	// top mask: (0,0 800x100)
	// bottom mask: (0,150 800x450)
	// tooltip at (310,100), width 300
}
