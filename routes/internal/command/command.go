// Package command holds the closed set of commands a console line can be
// parsed into, and the dispatcher that runs them against route storage.
package command

import (
	"context"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/sirupsen/logrus"
)

// Command words recognised by the parser.
const (
	AddRouteWord   = "add"
	ListRoutesWord = "list"
	ExitWord       = "exit"
)

type RoutesRepository interface {
	Save(ctx context.Context, route model.Route) error
	List(ctx context.Context) ([]model.Route, error)
}

type Enqueuer interface {
	SendMsg(ctx context.Context, msg interface{}, queue string) error
}

// Env is everything a command may touch while executing. Enqueuer and Queue
// are optional; route events are only published when both are set.
type Env struct {
	Routes   RoutesRepository
	Enqueuer Enqueuer
	Queue    string
	Log      *logrus.Entry
}

type Command interface {
	Execute(ctx context.Context, env Env) (model.CommandResult, error)
	IsExit() bool
}
