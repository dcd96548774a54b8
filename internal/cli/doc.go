// Package cli provides the interactive career guidance command-line client.
//
// It wires configuration, the credential store, the guidance service and a
// REPL. Typical flow: register, log in, answer the questionnaire, optionally
// attach a resume, ask for recommendations, then write a report or save the
// session.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
