package squircle_test

import (
	"fmt"

	"honnef.co/go/squircle"
)

func ExampleGenerate() {
	p := squircle.Generate(
		squircle.Sz(20, 20),
		squircle.Uniform(10),
		squircle.Profile{Exponent: 5, PointsPerCorner: 4},
	)
	fmt.Println(p.SVG(squircle.SVGOptions{}))
	// Output:
	// M 10,0 L 15.7,0.12 L 19.88,4.3 L 20,10 L 19.88,15.7 L 15.7,19.88 L 10,20 L 4.3,19.88 L 0.12,15.7 L 0,10 L 0.12,4.3 L 4.3,0.12 Z
}

func ExampleCornerRadii_With() {
	radii := squircle.Uniform(16).
		With(squircle.TopRight, 8).
		With(squircle.BottomLeft, 0)
	p := squircle.Generate(squircle.Sz(64, 32), radii, squircle.Profile{PointsPerCorner: 4})
	fmt.Println(p.SVG(squircle.SVGOptions{}))
	// Output:
	// M 16,0 L 56,0 L 60.56,0.1 L 63.9,3.44 L 64,8 L 64,16 L 63.8,25.12 L 57.12,31.8 L 48,32 L 0,32 L 0,16 L 0.2,6.88 L 6.88,0.2 Z
}

func ExamplePath_Edges() {
	p := squircle.Generate(squircle.Sz(100, 60), squircle.Uniform(10), squircle.Profile{})
	for _, run := range p.Edges() {
		fmt.Println(run)
	}
	// Output:
	// Edge(Top, 0–1)
	// Edge(Right, 12–13)
	// Edge(Bottom, 24–25)
	// Edge(Left, 36–37)
}
