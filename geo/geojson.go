package geo

import (
	"encoding/json"

	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// geojson objects
//*******************************************

type Geometry interface {
	Type() string
}

type Point struct {
	Coordinates Coord
}

func NewPoint(coord Coord) Point {
	return Point{Coordinates: coord}
}
func (self *Point) Type() string {
	return "Point"
}
func (self Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":        "Point",
		"coordinates": self.Coordinates,
	})
}

type LineString struct {
	Coordinates CoordArray
}

func NewLineString(coords CoordArray) LineString {
	return LineString{Coordinates: coords}
}
func (self *LineString) Type() string {
	return "LineString"
}
func (self LineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":        "LineString",
		"coordinates": self.Coordinates,
	})
}

type Feature struct {
	Typ        string            `json:"type"`
	Geom       Geometry          `json:"geometry"`
	Properties Dict[string, any] `json:"properties"`
}

func NewFeature(geometry Geometry, properties Dict[string, any]) Feature {
	return Feature{
		Typ:        "Feature",
		Geom:       geometry,
		Properties: properties,
	}
}

type FeatureCollection struct {
	Typ      string        `json:"type"`
	Features List[Feature] `json:"features"`
}

func NewFeatureCollection(features List[Feature]) FeatureCollection {
	return FeatureCollection{
		Typ:      "FeatureCollection",
		Features: features,
	}
}
