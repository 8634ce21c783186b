package simulator

import "errors"

// ErrClosed is returned by Read and Write after Close.
var ErrClosed = errors.New("simulator: port closed")
