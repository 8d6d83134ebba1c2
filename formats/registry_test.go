// SPDX-License-Identifier: EPL-2.0

package formats

import "testing"

func TestNewRegistry_KnowsExtensions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, ext := range append(Extensions, "wave", "oga") {
		if _, ok := reg.Get(ext); !ok {
			t.Errorf("no decoder for %q", ext)
		}
	}

	if _, ok := reg.Get("flac"); ok {
		t.Error("unexpected decoder for flac")
	}
}
