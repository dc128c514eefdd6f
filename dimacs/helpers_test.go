// SPDX-License-Identifier: MIT

package dimacs_test

import "github.com/pkg/errors"

// errorsCause unwraps pkg/errors wrappers down to the root error.
func errorsCause(err error) error {
	return errors.Cause(err)
}
