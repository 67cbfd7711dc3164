package parser

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// walking decoder
//*******************************************

type WalkingDecoder struct{}

var walking_types = Dict[string, bool]{"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true, "service": true,
	"track": true, "unclassified": true, "road": true, "footway": true, "path": true, "pedestrian": true,
	"steps": true, "cycleway": true}

func (self *WalkingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !walking_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("foot") == "no" {
		return false
	}
	return true
}

func (self *WalkingDecoder) DecodeSpeed(tags Dict[string, string]) float32 {
	if tags.Get("highway") == "steps" {
		return 0.7
	}
	return 1.4
}

// footpaths are walkable in both directions
func (self *WalkingDecoder) IsOneway(tags Dict[string, string]) bool {
	return false
}
