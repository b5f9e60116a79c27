// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the farm-client command line.
//
// Every run executes one subcommand against the contract host: account
// commands, encrypted readings and aggregates, twin and recommendation
// requests, the event log and the plaintext record store. The dashboard
// command hands over to the terminal UI.
package client
