// Package app contains the core application logic. It wires the loaders,
// the configuration pass and the output writer behind two operations,
// Configure and Clean, decoupled from any specific entrypoint like a CLI.
package app
