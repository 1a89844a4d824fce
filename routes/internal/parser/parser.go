// Package parser turns one console line into a command value. It performs no
// I/O and keeps no state between calls.
package parser

import (
	"strings"

	"github.com/meetupaws/flight_route_manager/routes/internal/command"
	"github.com/pkg/errors"
)

var (
	ErrMalformedField   = errors.New("malformed_field")
	ErrInvalidNumber    = errors.New("invalid_number")
	ErrMissingArguments = errors.New("missing_arguments")
)

type Parser struct{}

// ParseCommand maps a line onto exactly one command. A line whose first word
// is not a known command yields command.Unrecognized and a nil error.
func (p Parser) ParseCommand(userInput string) (command.Command, error) {
	commandWord, argumentLine, hasArguments := splitCommand(userInput)

	switch commandWord {
	case command.AddRouteWord:
		if !hasArguments {
			return nil, errors.Wrapf(ErrMissingArguments, "%v", commandWord)
		}
		return p.prepareAddRoute(argumentLine)
	case command.ExitWord:
		return command.Exit{}, nil
	case command.ListRoutesWord:
		return command.ListRoutes{}, nil
	default:
		return command.Unrecognized{Word: commandWord}, nil
	}
}

func (p Parser) prepareAddRoute(argumentLine string) (command.Command, error) {
	tokens, err := tokenize(argumentLine)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errors.Wrapf(ErrMissingArguments, "%v", command.AddRouteWord)
	}

	route, err := mapFields(tokens)
	if err != nil {
		return nil, err
	}
	return command.AddRoute{Route: route}, nil
}

// splitCommand splits on the first space. hasArguments is false when there
// is no second part at all.
func splitCommand(userInput string) (commandWord string, argumentLine string, hasArguments bool) {
	parts := strings.SplitN(userInput, " ", 2)
	if len(parts) < 2 {
		return parts[0], "", false
	}
	return parts[0], parts[1], true
}

func New() Parser {
	return Parser{}
}
