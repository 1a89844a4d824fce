package model

import (
	"fmt"
	"strings"
)

type Route struct {
	FlightID    string `json:"flight_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Capacity    int    `json:"capacity"`
}

// String renders the route as the multi-line block shown by the list command.
func (r Route) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Flight ID: %v\n", r.FlightID)
	fmt.Fprintf(&b, "Date: %v\n", r.Date)
	fmt.Fprintf(&b, "Time: %v\n", r.Time)
	fmt.Fprintf(&b, "From: %v\n", r.Origin)
	fmt.Fprintf(&b, "To: %v\n", r.Destination)
	fmt.Fprintf(&b, "Capacity: %v", r.Capacity)
	return b.String()
}
