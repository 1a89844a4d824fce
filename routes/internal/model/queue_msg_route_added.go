package model

type QueueMsgRouteAdded struct {
	FlightID    string `json:"flight_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Capacity    int    `json:"capacity"`
}
