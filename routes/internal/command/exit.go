package command

import (
	"context"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
)

type Exit struct{}

func (c Exit) IsExit() bool { return true }

func (c Exit) Execute(ctx context.Context, env Env) (model.CommandResult, error) {
	return model.CommandResult{Feedback: "Leaving flight route management."}, nil
}
