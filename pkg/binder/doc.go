// Package binder parses HTTP request bodies into typed request structs.
//
// Three binders cover the intake endpoints:
//
//   - JSON() decodes an application/json body.
//   - Multipart() binds multipart/form-data values via `form:"name"` tags.
//   - File() extracts uploaded files into FileUpload values via `file:"name"` tags.
//
// Binders are composable: apply Multipart() then File() to the same struct to
// populate both text fields and attachments from one request. Missing form
// fields leave the struct field at its zero value, so downstream validation
// sees an empty string rather than a binding error. The content-type check is
// the caller's shape gate: a non-multipart request fails with
// ErrUnsupportedMediaType before any field is read.
package binder
