package corridor

import (
	"fmt"
	"math"
	"sort"

	"github.com/dshills/floorplangen/pkg/geometry"
	lvgraph "github.com/katalvlaran/lvlath/graph"
)

// touchTolerance is the core-connectivity tolerance: a core counts as
// connected once a corridor piece is within this distance of it.
const touchTolerance = 0.1

// repairConnectivity guarantees every core is within touchTolerance of
// some corridor piece and that the whole corridor set forms a single
// connected network, via a two-step bridging fix-point. The
// reachability graph (corridor pieces + cores as nodes, "touches" as
// edges) is built with lvlath/graph and queried with BFS rather than a
// hand-rolled union-find.
func repairConnectivity(pieces []geometry.Polygon, cores []geometry.Polygon, usable geometry.Polygon, w float64) []geometry.Polygon {
	pieces = bridgeUnreachedCores(pieces, cores, usable, w)
	pieces = bridgeIsolatedPieces(pieces, usable, w)
	return pieces
}

// reachabilityGraph builds an undirected graph with one vertex per
// corridor piece ("p0", "p1", ...) and one per core ("c0", "c1", ...),
// with an edge whenever the two regions are within touchTolerance.
func reachabilityGraph(pieces, cores []geometry.Polygon) *lvgraph.Graph {
	g := lvgraph.NewGraph(false, false)
	for i := range pieces {
		g.AddVertex(&lvgraph.Vertex{ID: pieceID(i)})
	}
	for i := range cores {
		g.AddVertex(&lvgraph.Vertex{ID: coreID(i)})
	}
	for i, p := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			if p.Touches(pieces[j], touchTolerance) {
				g.AddEdge(pieceID(i), pieceID(j), 1)
			}
		}
		for k, c := range cores {
			if p.Touches(c, touchTolerance) {
				g.AddEdge(pieceID(i), coreID(k), 1)
			}
		}
	}
	return g
}

func pieceID(i int) string { return fmt.Sprintf("p%d", i) }
func coreID(i int) string  { return fmt.Sprintf("c%d", i) }

// bridgeUnreachedCores handles the case where a core has no path in the
// reachability graph to any corridor piece: it adds a rectangular
// connector from the closest piece to the core, axis-aligned along the
// dominant direction between their centroids.
func bridgeUnreachedCores(pieces, cores []geometry.Polygon, usable geometry.Polygon, w float64) []geometry.Polygon {
	for k, core := range cores {
		g := reachabilityGraph(pieces, cores)
		res, err := g.BFS(coreID(k), nil)
		if err != nil {
			continue
		}
		reachesAPiece := false
		for id := range res.Visited {
			if id != coreID(k) && id[0] == 'p' {
				reachesAPiece = true
				break
			}
		}
		if reachesAPiece || len(pieces) == 0 {
			continue
		}
		closest := closestPiece(pieces, core)
		bridge := connectorBetween(pieces[closest], core, usable, w)
		if !bridge.IsEmpty() {
			pieces = append(pieces, bridge)
		}
	}
	return pieces
}

// bridgeIsolatedPieces forms the network of pieces that BFS reaches from
// piece 0 through touching pieces (cores are not vertices of this graph),
// and bridges each piece it does not reach toward the network's centroid.
func bridgeIsolatedPieces(pieces []geometry.Polygon, usable geometry.Polygon, w float64) []geometry.Polygon {
	if len(pieces) == 0 {
		return pieces
	}
	g := lvgraph.NewGraph(false, false)
	for i := range pieces {
		g.AddVertex(&lvgraph.Vertex{ID: pieceID(i)})
	}
	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			if pieces[i].Touches(pieces[j], touchTolerance) {
				g.AddEdge(pieceID(i), pieceID(j), 1)
			}
		}
	}
	res, err := g.BFS(pieceID(0), nil)
	if err != nil {
		return pieces
	}

	networkIdx := make([]int, 0, len(pieces))
	isolatedIdx := make([]int, 0)
	for i := range pieces {
		if res.Visited[pieceID(i)] {
			networkIdx = append(networkIdx, i)
		} else {
			isolatedIdx = append(isolatedIdx, i)
		}
	}
	if len(isolatedIdx) == 0 {
		return pieces
	}

	networkUnion := geometry.NewMultiPolygon()
	for _, i := range networkIdx {
		networkUnion = networkUnion.Union(pieces[i])
	}
	networkCentroid := multiCentroid(networkUnion)

	for _, i := range isolatedIdx {
		if networkUnion.Distance(pieces[i]) <= touchTolerance {
			continue
		}
		bridge := connectorBetween(pieces[i], polygonAt(networkCentroid), usable, w)
		if !bridge.IsEmpty() {
			pieces = append(pieces, bridge)
		}
	}
	return pieces
}

// connectorBetween builds a width-w rectangular bridge spanning the two
// regions' centroids, axis-aligned along whichever of dx/dy is larger,
// clipped to usable.
func connectorBetween(a geometry.Polygon, b geometry.Polygon, usable geometry.Polygon, w float64) geometry.Polygon {
	ca, okA := a.Centroid()
	cb, okB := b.Centroid()
	if !okA || !okB {
		return geometry.Empty
	}
	dx, dy := math.Abs(cb.X-ca.X), math.Abs(cb.Y-ca.Y)
	var bridge geometry.Polygon
	var err error
	if dx >= dy {
		minX, maxX := math.Min(ca.X, cb.X), math.Max(ca.X, cb.X)
		bridge, err = geometry.RectPolygon(minX, ca.Y-w/2, maxX, ca.Y+w/2)
	} else {
		minY, maxY := math.Min(ca.Y, cb.Y), math.Max(ca.Y, cb.Y)
		bridge, err = geometry.RectPolygon(ca.X-w/2, minY, ca.X+w/2, maxY)
	}
	if err != nil {
		return geometry.Empty
	}
	return geometry.Clip(bridge, usable)
}

func closestPiece(pieces []geometry.Polygon, target geometry.Polygon) int {
	best := 0
	bestDist := pieces[0].Distance(target)
	for i := 1; i < len(pieces); i++ {
		d := pieces[i].Distance(target)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func averageCentroid(polys []geometry.Polygon) geometry.Point {
	var sx, sy float64
	n := 0
	for _, p := range polys {
		if c, ok := p.Centroid(); ok {
			sx += c.X
			sy += c.Y
			n++
		}
	}
	if n == 0 {
		return geometry.Point{}
	}
	return geometry.Point{X: sx / float64(n), Y: sy / float64(n)}
}

func multiCentroid(mp geometry.MultiPolygon) geometry.Point {
	return averageCentroid(mp.Polygons())
}

// polygonAt builds a 1e-6 m square with p as its minimum corner, used only so connectorBetween
// can read a centroid via the same Polygon-to-Polygon signature; its area
// and boundary are never used for anything but that centroid lookup.
func polygonAt(p geometry.Point) geometry.Polygon {
	poly, err := geometry.RectPolygon(p.X, p.Y, p.X+1e-6, p.Y+1e-6)
	if err != nil {
		return geometry.Empty
	}
	return poly
}

// sortByCentroid orders pieces deterministically (construction order is
// not guaranteed by the boolean-op kernel's enumeration) so results stay
// reproducible wherever iteration order could otherwise affect them.
func sortByCentroid(pieces []geometry.Polygon) {
	sort.Slice(pieces, func(i, j int) bool {
		ci, _ := pieces[i].Centroid()
		cj, _ := pieces[j].Centroid()
		if ci.X != cj.X {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})
}
