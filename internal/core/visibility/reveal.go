package visibility

import (
	"context"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/fogmap/internal/core/geometry"
)

// RevealRadius reveals the cells around centre that lie within the search
// radius and returns them in the order they were first reached.
//
// Rays are cast from centre to every lattice point on the boundary of the
// radius' bounding square (clipped to the grid). Each ray is walked cell by
// cell and stops as soon as it leaves the radius. Rays overlap near the
// centre, so some cells are visited more than once.
//
// Nothing blocks a ray: obstacles are not taken into account.
func (g *Grid) RevealRadius(centre geometry.Point) ([]geometry.Point, error) {
	if !g.InBounds(centre) {
		return nil, fmt.Errorf("%w: centre %s on %dx%d grid", ErrOutOfBounds, centre, g.width, g.height)
	}

	visited := bitset.New(g.size())
	var points []geometry.Point

	g.castRays(centre, func(p geometry.Point) {
		i := g.index(p)
		if visited.Test(i) {
			return
		}
		visited.Set(i)
		points = append(points, p)
	})

	g.bits.InPlaceUnion(visited)
	return points, nil
}

// RevealAll reveals the radius around every centre. Centres are processed
// concurrently, each into its own partial bitmask, and the partial masks are
// OR-ed into the grid once all of them are done. The result is the same as
// calling RevealRadius for each centre in turn.
func (g *Grid) RevealAll(ctx context.Context, centres ...geometry.Point) error {
	for _, centre := range centres {
		if !g.InBounds(centre) {
			return fmt.Errorf("%w: centre %s on %dx%d grid", ErrOutOfBounds, centre, g.width, g.height)
		}
	}

	partials := make([]*bitset.BitSet, len(centres))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.workers())

	for i, centre := range centres {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial := bitset.New(g.size())
			g.castRays(centre, func(p geometry.Point) {
				partial.Set(g.index(p))
			})
			partials[i] = partial
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for _, partial := range partials {
		g.bits.InPlaceUnion(partial)
	}
	return nil
}

// castRays calls visit for every cell walked by the rays from centre. It only
// reads the grid's dimensions.
func (g *Grid) castRays(centre geometry.Point, visit func(geometry.Point)) {
	for _, side := range g.searchBoundary(centre) {
		for _, target := range side.Rasterise() {
			ray := geometry.NewEdge(centre, target)

			for _, p := range ray.Rasterise() {
				if centre.DistanceTo(p) > g.radius {
					break
				}
				visit(p)
			}
		}
	}
}

// searchBoundary returns the four sides of the square of side 2*radius
// around centre, clipped to the grid.
func (g *Grid) searchBoundary(centre geometry.Point) [4]geometry.Edge {
	// clamp before converting so huge radii cannot overflow int
	minX := int(math.Max(0, math.Floor(float64(centre.X)-g.radius)))
	minY := int(math.Max(0, math.Floor(float64(centre.Y)-g.radius)))
	maxX := int(math.Min(float64(g.width-1), math.Ceil(float64(centre.X)+g.radius)))
	maxY := int(math.Min(float64(g.height-1), math.Ceil(float64(centre.Y)+g.radius)))

	topLeft := geometry.Pt(minX, minY)
	topRight := geometry.Pt(maxX, minY)
	bottomRight := geometry.Pt(maxX, maxY)
	bottomLeft := geometry.Pt(minX, maxY)

	return [4]geometry.Edge{
		geometry.NewEdge(topLeft, topRight),
		geometry.NewEdge(topRight, bottomRight),
		geometry.NewEdge(bottomRight, bottomLeft),
		geometry.NewEdge(bottomLeft, topLeft),
	}
}
