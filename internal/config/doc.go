// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges datakeeper configuration.
//
// Values come from two sources, merged in priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables, all prefixed with DATAKEEPER_ (caarlos0/env).
//  2. An optional JSON file, path supplied via DATAKEEPER_CONFIG or the
//     --config flag.
//
// Credentials (the platform key id / key secret pair) are read exclusively
// from the environment and are deliberately absent from the JSON schema so
// they never end up in files checked into version control.
package config
