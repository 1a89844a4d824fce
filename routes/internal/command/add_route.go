package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/meetupaws/flight_route_manager/routes/internal/repository"
	"github.com/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var ErrDuplicateRoute = errors.New("duplicate_route")

// ValidationError lists every rule a route broke, in field order.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid_route: " + strings.Join(e.Problems, "; ")
}

type AddRoute struct {
	Route model.Route
}

func (c AddRoute) IsExit() bool { return false }

func (c AddRoute) Execute(ctx context.Context, env Env) (model.CommandResult, error) {
	if err := c.validate(); err != nil {
		return model.CommandResult{}, err
	}

	err := env.Routes.Save(ctx, c.Route)
	if errors.Is(err, repository.ErrRouteExists) {
		return model.CommandResult{}, errors.Wrapf(ErrDuplicateRoute, "flight %v", c.Route.FlightID)
	}
	if err != nil {
		return model.CommandResult{}, errors.Wrap(err, "saving route")
	}

	c.publish(ctx, env)

	return model.CommandResult{
		Feedback: fmt.Sprintf("Route added:\n%v", c.Route),
	}, nil
}

func (c AddRoute) validate() error {
	problems := []string{}
	if strings.TrimSpace(c.Route.FlightID) == "" {
		problems = append(problems, "flight id is required")
	}
	if _, err := time.Parse(dateLayout, c.Route.Date); err != nil {
		problems = append(problems, "date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, c.Route.Time); err != nil {
		problems = append(problems, "time must be HH:MM")
	}
	if c.Route.Origin == "" {
		problems = append(problems, "origin is required")
	}
	if c.Route.Destination == "" {
		problems = append(problems, "destination is required")
	}
	if c.Route.Origin != "" && c.Route.Origin == c.Route.Destination {
		problems = append(problems, "origin and destination must differ")
	}
	if c.Route.Capacity <= 0 {
		problems = append(problems, "capacity must be positive")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// publish announces the new route. The route is already stored, so a failed
// send is logged and not returned.
func (c AddRoute) publish(ctx context.Context, env Env) {
	if env.Enqueuer == nil || env.Queue == "" {
		return
	}

	msg := model.QueueMsgRouteAdded{
		FlightID:    c.Route.FlightID,
		Date:        c.Route.Date,
		Time:        c.Route.Time,
		Origin:      c.Route.Origin,
		Destination: c.Route.Destination,
		Capacity:    c.Route.Capacity,
	}
	if err := env.Enqueuer.SendMsg(ctx, msg, env.Queue); err != nil && env.Log != nil {
		env.Log.WithError(err).WithField("flight_id", c.Route.FlightID).Warn("unable to publish route event")
	}
}
