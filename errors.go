// SPDX-License-Identifier: EPL-2.0

package typingsounds

import "errors"

var (
	ErrAlreadyLoaded = errors.New("plugin already loaded")
	ErrNilHost       = errors.New("host is nil")
	ErrNilBackend    = errors.New("backend is nil")
)
