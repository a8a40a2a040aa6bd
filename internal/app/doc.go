// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the assembly lifecycle (load inputs,
// assemble, checkpoint, save, run the engine, publish), decoupled from any
// specific entrypoint like a CLI or server.
package app
