// SPDX-License-Identifier: EPL-2.0

package settings

import "errors"

var ErrInvalidDocument = errors.New("invalid settings document")
