package ui

import (
	"strconv"
	"strings"
)

// InputChecker decides whether a trimmed line is an acceptable answer.
type InputChecker interface {
	IsValid(line string) bool
}

type YesNoChecker struct{}

func (YesNoChecker) IsValid(line string) bool {
	switch strings.ToUpper(line) {
	case "YES", "Y", "NO", "N":
		return true
	}
	return false
}

// IsYes must only be called on input accepted by YesNoChecker.
func IsYes(line string) bool {
	switch strings.ToUpper(line) {
	case "YES", "Y":
		return true
	}
	return false
}

// MenuChoiceChecker accepts an integer between Min and Max inclusive.
type MenuChoiceChecker struct {
	Min int
	Max int
}

func (c MenuChoiceChecker) IsValid(line string) bool {
	n, err := strconv.Atoi(line)
	return err == nil && n >= c.Min && n <= c.Max
}
