//go:build !sound

package sound

import "errors"

// ErrNotBuilt is returned when the binary was built without the 'sound' tag.
var ErrNotBuilt = errors.New("sound: audio output requires building with -tags sound")

func openDevice() (device, error) {
	return nil, ErrNotBuilt
}
