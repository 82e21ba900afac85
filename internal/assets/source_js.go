//go:build js && wasm

package assets

import (
	"fmt"
	"net/url"
	"syscall/js"
)

// DefaultSource fetches assets relative to the page that loaded the game.
func DefaultSource(dir string) (Source, error) {
	href := js.Global().Get("location").Get("href").String()
	base, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("page url %q: %w", href, err)
	}
	return HTTPSource{Base: base, Dir: dir}, nil
}
