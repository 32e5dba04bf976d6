package domain

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// PointInPolygon reports whether pt lies inside the polygon given by
// vertices, using standard ray casting: a horizontal ray from the point
// crossing an odd number of edges means inside. Points exactly on an
// edge get the crossing rule's verdict; the rule is consistent but not
// guaranteed to be "inside".
func PointInPolygon(pt Point, vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}

	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Lat > pt.Lat) != (vj.Lat > pt.Lat) {
			cross := (vj.Lng-vi.Lng)*(pt.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lng
			if pt.Lng < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Centroid is the arithmetic mean of the vertices, used only for cache
// keying, not for geometric tests.
func Centroid(vertices []Point) Point {
	if len(vertices) == 0 {
		return Point{}
	}
	var lat, lng float64
	for _, v := range vertices {
		lat += v.Lat
		lng += v.Lng
	}
	n := float64(len(vertices))
	return Point{Lat: lat / n, Lng: lng / n}
}

// RegionMetrics are aggregates recomputed over exactly the
// region-filtered subset.
type RegionMetrics struct {
	Count           int
	AvgPrice        float64
	AvgPricePerSqft float64
	MinPrice        float64
	MaxPrice        float64
}
