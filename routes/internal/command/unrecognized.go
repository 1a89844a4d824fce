package command

import (
	"context"
	"fmt"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
)

// Unrecognized is what the parser yields when no command word matched. It is
// a normal result, not an error.
type Unrecognized struct {
	Word string
}

func (c Unrecognized) IsExit() bool { return false }

func (c Unrecognized) Execute(ctx context.Context, env Env) (model.CommandResult, error) {
	return model.CommandResult{
		Feedback: fmt.Sprintf("Unknown command: %v\nAvailable commands: %v, %v, %v", c.Word, AddRouteWord, ListRoutesWord, ExitWord),
	}, nil
}
