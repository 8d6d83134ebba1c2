// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrUnsupportedLayout = errors.New("vorbis stream has no channels or sample rate")
