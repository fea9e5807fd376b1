package services

import "context"

// Status is the result of checking or starting one auxiliary service.
type Status struct {
	Key    string
	Title  string
	Detail string
	Ready  bool
}

// Manager verifies and optionally launches the auxiliary services the
// pipeline leans on: the notes vault (and Obsidian), the docker containers
// and the LM Studio server. Everything here is best effort; a not-ready
// service never blocks the caller.
type Manager interface {
	Bootstrap(ctx context.Context, autoStart bool, callback func(Status)) []Status
}
