package command

import (
	"context"
	"fmt"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/pkg/errors"
)

type ListRoutes struct{}

func (c ListRoutes) IsExit() bool { return false }

func (c ListRoutes) Execute(ctx context.Context, env Env) (model.CommandResult, error) {
	routes, err := env.Routes.List(ctx)
	if err != nil {
		return model.CommandResult{}, errors.Wrap(err, "listing routes")
	}

	if len(routes) == 0 {
		return model.CommandResult{Feedback: "There are no routes."}, nil
	}

	info := make([]string, len(routes))
	for i, r := range routes {
		info[i] = r.String()
	}

	return model.CommandResult{
		Feedback:   fmt.Sprintf("There are %v routes:", len(routes)),
		RoutesInfo: info,
	}, nil
}
