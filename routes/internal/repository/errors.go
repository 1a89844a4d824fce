package repository

import "github.com/pkg/errors"

var (
	ErrNoRoutesFound = errors.New("no_routes_found")
	ErrRouteExists   = errors.New("route_already_exists")
)
