// SPDX-License-Identifier: EPL-2.0

package voice

import "errors"

var (
	ErrInvalidSize = errors.New("pool size must be positive")
	ErrNilBackend  = errors.New("backend is nil")
)
