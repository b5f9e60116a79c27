// Package config loads, merges and validates configuration for the farm twin
// binaries.
//
// Sources are merged in priority order, the first one that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Entry points: [GetStructuredConfig] for the contract host,
// [GetClientConfig], [GetOracleConfig] and [GetKeygenConfig] for the other
// binaries.
package config
