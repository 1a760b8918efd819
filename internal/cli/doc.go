// Package cli wires the cobra command tree for the forge binary.
//
// Configuration is resolved by viper from ~/.config/forge/config.yaml and
// FORGE_-prefixed environment variables; API credentials are read from
// GITHUB_TOKEN and ANTHROPIC_API_KEY. Commands set deterministic exit
// codes: 0 success, 2 usage error, 3 authentication error, 4 runtime
// error.
package cli
