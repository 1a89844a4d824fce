package command

import (
	"context"
	"fmt"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/sirupsen/logrus"
)

type Dispatcher struct {
	env Env
}

func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (model.CommandResult, error) {
	log := d.env.Log.WithField("command", fmt.Sprintf("%T", cmd))

	result, err := cmd.Execute(ctx, d.env)
	if err != nil {
		log.WithError(err).Info("command failed")
		return model.CommandResult{}, err
	}

	log.Debug("command executed")
	return result, nil
}

func NewDispatcher(env Env) *Dispatcher {
	if env.Log == nil {
		env.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Dispatcher{
		env: env,
	}
}
