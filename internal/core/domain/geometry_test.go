package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquare() []Point {
	return []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
	}
}

func TestPointInPolygon(t *testing.T) {
	t.Run("point inside unit square", func(t *testing.T) {
		assert.True(t, PointInPolygon(Point{Lat: 0.5, Lng: 0.5}, unitSquare()))
	})

	t.Run("points outside unit square", func(t *testing.T) {
		outside := []Point{
			{Lat: 1.5, Lng: 0.5},
			{Lat: -0.5, Lng: 0.5},
			{Lat: 0.5, Lng: 1.5},
			{Lat: 0.5, Lng: -0.5},
			{Lat: 2, Lng: 2},
		}
		for _, pt := range outside {
			assert.False(t, PointInPolygon(pt, unitSquare()), "point %+v", pt)
		}
	})

	t.Run("concave polygon", func(t *testing.T) {
		// A "U" shape: the notch between the arms is outside.
		u := []Point{
			{Lat: 0, Lng: 0},
			{Lat: 3, Lng: 0},
			{Lat: 3, Lng: 1},
			{Lat: 1, Lng: 1},
			{Lat: 1, Lng: 2},
			{Lat: 3, Lng: 2},
			{Lat: 3, Lng: 3},
			{Lat: 0, Lng: 3},
		}
		assert.True(t, PointInPolygon(Point{Lat: 0.5, Lng: 1.5}, u))
		assert.False(t, PointInPolygon(Point{Lat: 2, Lng: 1.5}, u))
	})

	t.Run("degenerate polygons match nothing", func(t *testing.T) {
		assert.False(t, PointInPolygon(Point{Lat: 0.5, Lng: 0.5}, nil))
		assert.False(t, PointInPolygon(Point{Lat: 0.5, Lng: 0.5}, []Point{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}))
	})
}

func TestCentroid(t *testing.T) {
	c := Centroid(unitSquare())
	assert.InDelta(t, 0.5, c.Lat, 1e-9)
	assert.InDelta(t, 0.5, c.Lng, 1e-9)

	assert.Equal(t, Point{}, Centroid(nil))
}
