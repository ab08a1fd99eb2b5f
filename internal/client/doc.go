// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and the background session
// watcher into a single process lifecycle.
package client
