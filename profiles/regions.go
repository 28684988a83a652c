package profiles

import "github.com/marben/dynago"

// Classic regions / landmarks in the Mandelbrot parameter plane, handy as
// render targets and zoom presets.
var (
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	SeahorseValley = dynago.Bounds{
		MinX: -0.8,
		MaxX: -0.7,
		MinY: 0.05,
		MaxY: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = dynago.Bounds{
		MinX: -1.85,
		MaxX: -1.75,
		MinY: -0.10,
		MaxY: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = dynago.Bounds{
		MinX: -0.7435,
		MaxX: -0.7420,
		MinY: 0.1310,
		MaxY: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = dynago.Bounds{
		MinX: -0.7480,
		MaxX: -0.7450,
		MinY: 0.0950,
		MaxY: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = dynago.Bounds{
		MinX: -0.7400,
		MaxX: -0.7350,
		MinY: 0.1800,
		MaxY: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = dynago.Bounds{
		MinX: -1.7390,
		MaxX: -1.7375,
		MinY: -0.0235,
		MaxY: -0.0220,
	}
)

// Regions maps landmark names to their bounds, for CLI lookup.
var Regions = map[string]dynago.Bounds{
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"mini-spiral":     MinibrotInMiniSpiral,
}
