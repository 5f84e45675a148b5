// Package session manages the opaque session token that correlates every
// message sent to the chat backend into one logical conversation.
//
// # Overview
//
// A Provider hands out a stable token for the lifetime of the widget
// instance. The token is persisted through a host-provided Store so that the
// same conversation continues across restarts of the host; persistence is
// strictly best-effort. A Store that is unavailable or failing degrades the
// provider to an in-memory token rather than blocking chat functionality.
//
// # Stores
//
// Three Store implementations ship with the package:
//
//   - MemoryStore: process-local map, the default and the test double
//   - FileStore: a small JSON key-value file under the host's data directory
//   - SQLiteStore: a kv table, for hosts that already carry a SQLite database
//
// # Usage
//
//	store, _ := session.NewFileStore(path)
//	provider := session.NewProvider(store, logger)
//	token := provider.GetOrCreate() // stable across calls
//	fresh := provider.Reset()      // starts a new backend conversation
package session
