// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// loadctl is an operator CLI for the loadboard API. It speaks the same
// authenticated HTTP surface the voice platform uses, which makes it a
// quick way to exercise a deployment from a shell.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
