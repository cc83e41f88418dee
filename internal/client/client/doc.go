// Package client talks to the Plain Theory backend over gRPC.
//
// # Overview
//
// GRPCClient implements the three collaborators the workspace needs: the
// auth service (AuthAPI), the row store (NotesAPI, DocumentsAPI) and the
// blob store (StorageAPI). Tokens are taken from the session.Session carried
// in the request context; an interceptor attaches the access token and, when
// the server reports an expired token, refreshes the pair once and retries.
//
// # Error Handling
//
// Server failures are returned as *StatusError, whose message is the
// server's message verbatim. StatusError matches the sentinels of package
// common via errors.Is (e.g. common.ErrorNotFound). Transport outages match
// ErrUnavailable.
package client
