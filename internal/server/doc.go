// Package server provides a local HTTP preview server for archived
// renders.
//
// The server exposes the archive over a small JSON API and serves stored
// documents with their native content type, so an HTML render opens
// directly in a browser. It is meant for local preview, not for
// production hosting.
package server
