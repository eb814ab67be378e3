package spatialjoin_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/spatialjoin"
	"github.com/hupe1980/spatialjoin/geom"
	"github.com/hupe1980/spatialjoin/index"
)

func ExampleJoiner_Join() {
	left := []geom.Geometry{
		geom.NewRect(0, 0, 10, 10),
	}
	right := []geom.Geometry{
		geom.NewPoint(5, 5),
		geom.NewPoint(20, 20),
	}

	j, err := spatialjoin.New(true, index.TypeRTree, spatialjoin.BuildLeft)
	if err != nil {
		log.Fatal(err)
	}

	it := j.Join(geom.FromSlice(left), geom.FromSlice(right))
	defer it.Close()

	for pair := range it.All() {
		p := pair.Right.(*geom.Point)
		fmt.Printf("rect %v matches point (%.0f, %.0f)\n", pair.Left.Envelope(), p.X, p.Y)
	}
	// Output:
	// rect {0 0 10 10} matches point (5, 5)
}
