package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNoSignKey       = errors.New("token sign key is not configured")
	ErrNoToken         = errors.New("no bearer token: set CLIENT_TOKEN or pass -t")
)
