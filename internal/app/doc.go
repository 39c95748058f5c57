// Package app wires application dependencies for the CLI.
//
// It loads the TOML configuration, builds the log backend, the concrete
// stores, the assistant client and the high-level services from Config,
// exposing them via the Wire struct for commands to use.
package app
