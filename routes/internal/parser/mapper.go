package parser

import (
	"strconv"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/pkg/errors"
)

const (
	fieldFlightID    = "fid"
	fieldDate        = "fd"
	fieldTime        = "ft"
	fieldOrigin      = "s"
	fieldDestination = "d"
	fieldCapacity    = "c"

	defaultFlightID = "0"
)

// mapFields applies tokens onto a route carrying the defaults. Unknown field
// codes are ignored and a repeated code overwrites the earlier value.
func mapFields(tokens []fieldToken) (model.Route, error) {
	route := model.Route{
		FlightID: defaultFlightID,
	}

	for _, t := range tokens {
		switch t.field {
		case fieldFlightID:
			route.FlightID = t.value
		case fieldDate:
			route.Date = t.value
		case fieldTime:
			route.Time = t.value
		case fieldOrigin:
			route.Origin = t.value
		case fieldDestination:
			route.Destination = t.value
		case fieldCapacity:
			capacity, err := strconv.Atoi(t.value)
			if err != nil {
				return model.Route{}, errors.Wrapf(ErrInvalidNumber, "%v/%v", t.field, t.value)
			}
			route.Capacity = capacity
		}
	}

	return route, nil
}
