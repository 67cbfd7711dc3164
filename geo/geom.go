package geo

import (
	"math"
)

//*******************************************
// geometries
//*******************************************

// Coordinate in lon/lat order.
type Coord [2]float32

type CoordArray []Coord

func (self Coord) Lon() float32 {
	return self[0]
}
func (self Coord) Lat() float32 {
	return self[1]
}

// Haversine distance in meters.
func Distance(from, to Coord) float32 {
	r := 6371000.0
	lat1 := float64(from[1]) * math.Pi / 180
	lat2 := float64(to[1]) * math.Pi / 180
	dlat := lat2 - lat1
	dlon := float64(to[0]-from[0]) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return float32(r * c)
}

func HaversineLength(points CoordArray) float32 {
	length := float32(0)
	for i := 0; i < len(points)-1; i++ {
		length += Distance(points[i], points[i+1])
	}
	return length
}
