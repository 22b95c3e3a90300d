// Package config provides configuration loading, merging, and validation
// facilities for the registrar.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults (fill remaining zero fields)
//
// The main entry point is [GetStructuredConfig].
package config
