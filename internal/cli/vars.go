// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// check
	password string
	// check, batch, serve
	wordlistFile string
	// check, batch
	hibpCheck bool
	// check
	interactive bool
	// batch
	inputFile string
	// batch
	threads int
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
