// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrClosed            = errors.New("player is closed")
)
