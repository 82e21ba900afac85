//go:build !js

package ui

import "github.com/atotto/clipboard"

// writeClipboard copies s. Failures that only surface later are passed to
// report; the desktop clipboard answers synchronously and never does that.
var writeClipboard = func(s string, report func(error)) error {
	return clipboard.WriteAll(s)
}
