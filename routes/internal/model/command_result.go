package model

type CommandResult struct {
	Feedback   string
	RoutesInfo []string
}
