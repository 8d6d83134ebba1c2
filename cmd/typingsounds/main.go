// SPDX-License-Identifier: EPL-2.0

// Command typingsounds is a terminal scratch pad that clicks as you type.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
