// Command analyze-falloff prints diagnostic data for spot light falloff
// ramps: tabulated values at several resolutions, the deviation from the
// analytic smoothstep curve, and the resulting sampling weights.
package main

import (
	"fmt"

	foundation "github.com/seedlight/go-render-foundation"
	"github.com/seedlight/go-render-foundation/internal/falloff"
	"github.com/seedlight/go-render-foundation/light"
)

const (
	// Cone geometry under analysis
	innerAngleDeg = 20.0 // Full intensity inside this half angle
	outerAngleDeg = 30.0 // No intensity beyond this half angle

	// Ramp resolutions to compare (rounded up to powers of two)
	minResolution = 16
	maxResolution = 1024

	// Sampling of the blend parameter when measuring ramp error
	errorSamples = 1000

	// Display limits
	maxEntriesToShow = 8 // Table entries printed per resolution
)

func main() {
	fmt.Println("=== Analyzing Spot Falloff Ramps ===")

	for res := minResolution; res <= maxResolution; res *= 4 {
		tbl := falloff.NewSmooth(res)

		fmt.Printf("\nResolution %d (len=%d, pow2=%v):\n",
			res, tbl.Len(), foundation.IsPow2(tbl.Len()))

		for i := 0; i < maxEntriesToShow; i++ {
			x := float64(i) / float64(maxEntriesToShow-1)
			fmt.Printf("  ramp(%.4f) = %.10f\n", x, tbl.Lookup(x))
		}

		// Peak deviation from the analytic curve across a dense sweep.
		var maxErr float64
		for i := 0; i < errorSamples; i++ {
			x := float64(i) / float64(errorSamples-1)
			err := foundation.Abs(tbl.Lookup(x) - foundation.Smoothstep(0, 1, x))
			if err > maxErr {
				maxErr = err
			}
		}
		fmt.Printf("  max |ramp - smoothstep| = %.3e\n", maxErr)
		fmt.Printf("  mean = %.10f\n", tbl.Mean())
	}

	fmt.Println("\n=== Spot Light Transition ===")

	l, err := light.DefaultRegistry.Create("spot_light", "diag", light.ParamSet{
		"inner_angle": innerAngleDeg,
		"outer_angle": outerAngleDeg,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for deg := 0.0; deg <= outerAngleDeg+10; deg += 2.5 {
		theta := foundation.DegToRad(deg)
		fmt.Printf("  I(%5.1f deg) = %.10f\n", deg, l.Intensity(theta))
	}

	fmt.Println("\n=== Sampling Weights ===")

	for _, model := range light.DefaultRegistry.Models() {
		lm, err := light.DefaultRegistry.Create(model, "diag", light.ParamSet{})
		if err != nil {
			fmt.Printf("  %s: error: %v\n", model, err)
			continue
		}
		fmt.Printf("  %-16s weight = %.10f\n", model, light.SamplingWeight(lm))
	}
}
