// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidRate       = errors.New("playback rate must be positive")
	ErrNoExtension       = errors.New("path has no file extension")
	ErrUnsupportedFormat = errors.New("no decoder registered for format")
	ErrEmptyClip         = errors.New("clip has no samples")
	ErrInvalidFormat     = errors.New("sample rate and channels must be positive")
)
