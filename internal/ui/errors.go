package ui

import "errors"

// ErrMissingMountPoint is returned when the page has no element to host the
// game canvas.
var ErrMissingMountPoint = errors.New("missing mount point")
