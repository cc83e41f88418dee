// Package cli provides the interactive Plain Theory terminal client.
//
// The client starts on the public landing page (masthead and article list).
// Typing `masthead` five times opens the credential form; signing in runs the
// session guard and enters the notes workspace. Leaving the workspace with
// `home` keeps the session, so the gesture re-enters it directly.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
