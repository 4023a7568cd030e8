// Package archive provides SQLite-based storage for rendered report
// documents.
//
// Every archived render keeps the full document content alongside its
// metadata (title, format, size, content hash, creation time), so past
// renders can be listed, re-read, and served by the preview server
// without re-rendering. The database lives in a single file under the
// user's data directory.
package archive
