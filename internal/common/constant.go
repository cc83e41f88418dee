package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName carries the server-assigned request id back to clients.
const RequestIDHeaderName = "x-request-id"

// MaxUploadSize is the largest document accepted by the workspace (10 MiB).
const MaxUploadSize int64 = 10 * 1024 * 1024

// DocumentsBucket is the blob container holding uploaded documents.
const DocumentsBucket = "documents"

// DefaultContentType is used when a document's MIME type cannot be determined.
const DefaultContentType = "application/octet-stream"

// UntitledNote is the placeholder title of freshly created notes.
const UntitledNote = "Untitled Note"
