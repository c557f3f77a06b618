//go:build !ebiten

package window

import "errors"

// ErrNotBuilt is returned when the binary was built without the 'ebiten' tag.
var ErrNotBuilt = errors.New("window: frontend requires building with -tags ebiten")

// Run reports that the window frontend is not compiled in.
func Run(Options) error {
	return ErrNotBuilt
}
