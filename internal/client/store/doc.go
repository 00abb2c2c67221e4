// Package store implements the client's persistent key/value store.
//
// Three backends satisfy Backend:
//
//   - SQLiteStore: a metadata(key, value) table in a local SQLite file,
//     created by embedded goose migrations (see Open).
//   - RedisStore: keys namespaced under a prefix in a Redis database.
//   - MemoryStore: a mutex-guarded map, for tests and throwaway sessions.
//
// Missing keys are reported as ok == false rather than an error, matching
// the "absent" semantics the session and locale state machines rely on.
package store
