package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/chzyer/readline"
	"github.com/meetupaws/flight_route_manager/internal"
	"github.com/meetupaws/flight_route_manager/routes/internal/command"
	"github.com/meetupaws/flight_route_manager/routes/internal/repository"
	"github.com/meetupaws/flight_route_manager/routes/internal/ui"
	"github.com/sirupsen/logrus"
)

type RoutesRepository interface {
	command.RoutesRepository
	ui.Flusher
}

func buildRepository(cfg internal.Config, sess *session.Session) (RoutesRepository, error) {
	switch cfg.Store {
	case internal.StoreFile:
		routes, err := repository.NewFileRepository(cfg.RoutesFile)
		if err != nil {
			return nil, err
		}
		return routes, nil
	case internal.StoreDynamoDB:
		return repository.NewDynamoDBRepository(dynamodb.New(sess), cfg.DynamoDBRoutes), nil
	default:
		return repository.NewMemoryRepository(), nil
	}
}

func buildEnv(cfg internal.Config, sess *session.Session, routes RoutesRepository, log *logrus.Entry) command.Env {
	env := command.Env{
		Routes: routes,
		Log:    log,
	}
	if cfg.RoutesQueue != "" {
		env.Enqueuer = internal.NewEnqueuer(sqs.New(sess), log)
		env.Queue = cfg.RoutesQueue
	}
	return env
}

func newLineReader(in *os.File) (ui.LineReader, func(), error) {
	if !readline.IsTerminal(int(in.Fd())) {
		return ui.NewScannerReader(in), func() {}, nil
	}

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".flight_routes_history")
	}
	r, err := ui.NewReadlineReader(history)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { r.Close() }, nil
}

func run(ctx context.Context, in *os.File, out io.Writer, getenv func(string) string) error {
	cfg, err := internal.LoadConfig(getenv)
	if err != nil {
		return err
	}

	log, err := internal.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	var sess *session.Session
	if cfg.NeedsAWS() {
		sess, err = session.NewSession()
		if err != nil {
			return err
		}
	}

	routes, err := buildRepository(cfg, sess)
	if err != nil {
		return err
	}
	log.WithField("store", cfg.Store).Debug("route storage ready")

	reader, closeReader, err := newLineReader(in)
	if err != nil {
		return err
	}
	defer closeReader()

	app := ui.NewDefaultApp(ui.New(reader, out), buildEnv(cfg, sess, routes, log), routes)
	return app.Run(ctx)
}

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
