// Package commands defines the quatex CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen      Generate base and secrets for a named session
//   - exchange    Publish A·G·A⁻¹ and B·G·B⁻¹
//   - derive      Derive both shared values and compare them
//   - show        Print a session and its history
//   - list        List stored sessions
//   - delete      Remove a session and its transcript
//   - run         Run a full throwaway session in memory
//   - eavesdrop   Recover conjugators from public values (toy moduli)
//   - survey      Run many sessions and report how often they agree
//   - arith       Quaternion arithmetic, reduced or over the integers
//   - ask         Ask the assistant about a session
//   - transcript  Print the assistant conversation of a session
//
// # Implementation
//
// The root command loads the TOML configuration and builds the dependency
// graph (log backend, stores, services, assistant client) before any
// subcommand runs. Human output goes to the command's stdout through a
// colorprofile writer; diagnostics go to the logger.
package commands
