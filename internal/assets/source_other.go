//go:build !(js && wasm)

package assets

// DefaultSource reads assets from dir relative to the working directory.
func DefaultSource(dir string) (Source, error) {
	return DirSource(dir), nil
}
