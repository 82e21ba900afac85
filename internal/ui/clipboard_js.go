//go:build js

package ui

import (
	"errors"
	"fmt"
	"syscall/js"
)

// writeClipboard starts an asynchronous navigator.clipboard write. A rejected
// promise is passed to report.
var writeClipboard = func(s string, report func(error)) error {
	cb := js.Global().Get("navigator").Get("clipboard")
	if cb.IsUndefined() || cb.IsNull() {
		return errors.New("clipboard unavailable")
	}
	var onReject js.Func
	onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer onReject.Release()
		reason := "rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		report(fmt.Errorf("clipboard write: %s", reason))
		return nil
	})
	cb.Call("writeText", s).Call("catch", onReject)
	return nil
}
