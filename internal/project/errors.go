package project

import "errors"

var (
	// ErrProjectExists indicates the state directory already exists.
	ErrProjectExists = errors.New("filter project already exists")

	// ErrNoProject indicates no state directory was found.
	ErrNoProject = errors.New("no filter project found")

	// ErrHasStories indicates a delete was refused because stories exist.
	ErrHasStories = errors.New("project contains stories")
)
