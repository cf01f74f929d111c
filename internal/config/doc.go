// Package config loads, merges and validates the configuration of the
// lock keeper server and its operator CLI.
//
// Configuration is assembled from several sources. Merging keeps the first
// non-zero value, so the priority order is:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
