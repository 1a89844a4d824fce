package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/meetupaws/flight_route_manager/routes/internal/command"
	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/meetupaws/flight_route_manager/routes/internal/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	menuManageRoutes = 1
	menuSaveAndExit  = 2
)

type Parser interface {
	ParseCommand(userInput string) (command.Command, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, cmd command.Command) (model.CommandResult, error)
}

type Flusher interface {
	Flush(ctx context.Context) error
}

// App is the read-parse-execute-print loop. Routes are flushed when the user
// saves and exits, and also when input ends.
type App struct {
	ui         *UI
	parser     Parser
	dispatcher Dispatcher
	store      Flusher
	log        *logrus.Entry
}

func (a *App) Run(ctx context.Context) error {
	a.ui.DisplayWelcomeMessage()

	for {
		a.ui.DisplayMainMenu()
		choice, err := a.ui.GetUserInput("Enter your choice: ", MenuChoiceChecker{Min: menuManageRoutes, Max: menuSaveAndExit})
		if err != nil {
			return a.stop(ctx, err)
		}

		n, _ := strconv.Atoi(choice)
		switch n {
		case menuManageRoutes:
			if err := a.manageRoutes(ctx); err != nil {
				return a.stop(ctx, err)
			}
		case menuSaveAndExit:
			answer, err := a.ui.GetUserInput("Do you want to exit? Enter YES or NO", YesNoChecker{})
			if err != nil {
				return a.stop(ctx, err)
			}
			if IsYes(answer) {
				return a.save(ctx)
			}
		}
	}
}

func (a *App) manageRoutes(ctx context.Context) error {
	a.ui.DisplayRouteHelp()

	for {
		line, err := a.ui.ReadCommand()
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		cmd, err := a.parser.ParseCommand(line)
		if err != nil {
			a.log.WithError(err).WithField("input", line).Debug("unable to parse command")
			a.ui.ShowInvalidInput(err)
			continue
		}

		result, err := a.dispatcher.Dispatch(ctx, cmd)
		if err != nil {
			a.ui.ShowInvalidInput(err)
			continue
		}
		a.ui.ShowResult(result)

		if cmd.IsExit() {
			return nil
		}
	}
}

// stop ends the session. Running out of input saves like a regular exit.
func (a *App) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		return a.save(ctx)
	}
	return errors.Wrap(err, "reading input")
}

func (a *App) save(ctx context.Context) error {
	a.ui.PrintExitMessage()
	if err := a.store.Flush(ctx); err != nil {
		return errors.Wrap(err, "saving routes")
	}
	a.log.Info("routes saved")
	return nil
}

func NewApp(u *UI, p Parser, d Dispatcher, store Flusher, log *logrus.Entry) *App {
	return &App{
		ui:         u,
		parser:     p,
		dispatcher: d,
		store:      store,
		log:        log,
	}
}

// NewDefaultApp wires the standard parser and a dispatcher over env.
func NewDefaultApp(u *UI, env command.Env, store Flusher) *App {
	d := command.NewDispatcher(env)
	log := env.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return NewApp(u, parser.New(), d, store, log)
}
