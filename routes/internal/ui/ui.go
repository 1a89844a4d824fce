// Package ui is the console front end: it prints menus and results and
// reads lines from an injected LineReader.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
)

const (
	lineDivider = "=================================================="

	appLogo = ` ____             _
|  _ \ ___  _   _| |_ ___  ___
| |_) / _ \| | | | __/ _ \/ __|
|  _ < (_) | |_| | ||  __/\__ \
|_| \_\___/ \__,_|\__\___||___/
`

	invalidInput = "Invalid input!"
)

type UI struct {
	in  LineReader
	out io.Writer
}

func (u *UI) DisplayWelcomeMessage() {
	fmt.Fprintf(u.out, "Hello from\n%v\n", appLogo)
}

func (u *UI) DisplayMainMenu() {
	u.PrintLineDivider()
	fmt.Fprintln(u.out, " Hi Staff, please select an option 1-2: ")
	u.PrintLineDivider()
	fmt.Fprintln(u.out, "(1) Manage flight route")
	fmt.Fprintln(u.out, "(2) Save and exit application")
}

func (u *UI) DisplayRouteHelp() {
	fmt.Fprintln(u.out, "You are now updating flight route details.")
	fmt.Fprintln(u.out, "  add fid/FLIGHT_ID fd/YYYY-MM-DD ft/HH:MM s/ORIGIN d/DESTINATION c/CAPACITY")
	fmt.Fprintln(u.out, "  list")
	fmt.Fprintln(u.out, "  exit")
}

func (u *UI) PrintLineDivider() {
	fmt.Fprintln(u.out, lineDivider)
}

func (u *UI) PrintExitMessage() {
	u.PrintLineDivider()
	fmt.Fprintln(u.out, "Please hold your data is being saved!")
	fmt.Fprintln(u.out, "Bye. Hope to see you again soon!")
}

// ReadCommand returns the next trimmed line.
func (u *UI) ReadCommand() (string, error) {
	line, err := u.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetUserInput prompts with message until checker accepts the trimmed answer.
func (u *UI) GetUserInput(message string, checker InputChecker) (string, error) {
	fmt.Fprintln(u.out, message)
	for {
		line, err := u.ReadCommand()
		if err != nil {
			return "", err
		}
		if checker.IsValid(line) {
			return line, nil
		}
		fmt.Fprintln(u.out, invalidInput)
		fmt.Fprintln(u.out, message)
	}
}

func (u *UI) ShowInvalidInput(err error) {
	fmt.Fprintf(u.out, "%v %v\n", invalidInput, err)
}

func (u *UI) ShowResult(result model.CommandResult) {
	fmt.Fprintln(u.out, result.Feedback)
	for i, info := range result.RoutesInfo {
		fmt.Fprintf(u.out, "%v.\n%v\n", i+1, info)
	}
}

func New(in LineReader, out io.Writer) *UI {
	return &UI{
		in:  in,
		out: out,
	}
}
