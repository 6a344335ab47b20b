// Package router lowers a catalogue into a doubled stop-vertex graph and
// answers fastest-itinerary queries over it.
package router

// Settings is the router configuration captured verbatim from the input
// document during make_base.
type Settings struct {
	BusWaitTimeMin int     // minutes
	BusVelocityKMH float64 // km/h
}

// metersPerMinute converts the configured km/h speed to meters/minute, the
// unit travel-edge weights are computed in.
func (s Settings) metersPerMinute() float64 {
	return s.BusVelocityKMH * 1000 / 60
}
