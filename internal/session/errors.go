package session

import "errors"

// ErrUnknownCommand is returned by DecodeCommand for an unrecognized command name.
var ErrUnknownCommand = errors.New("session: unknown command")
