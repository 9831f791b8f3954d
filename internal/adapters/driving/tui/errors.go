package tui

import "errors"

// ErrMissingSession is returned when the table session is not provided.
var ErrMissingSession = errors.New("tui: table session is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
