// SPDX-License-Identifier: MIT

package regression

import "fmt"

// regErrorf wraps err with the failing operation name, preserving the
// underlying mat sentinel for errors.Is matching.
func regErrorf(tag string, err error) error {
	return fmt.Errorf("regression: %s: %w", tag, err)
}
