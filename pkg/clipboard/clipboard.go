// Package clipboard wraps system clipboard access for the stitched document.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard. Empty text is rejected.
func Copy(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return clipboard.WriteAll(text)
}
