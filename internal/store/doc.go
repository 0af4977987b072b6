// Package store provides the durable key-value slots that projtrack keeps its
// state in.
//
// A slot is a named string value that survives restarts. Writes overwrite the
// whole value atomically, so a reader never observes a partial payload.
//
// # Backends
//
// The [Slots] interface has three implementations:
//   - [Bolt]: the default, an embedded bbolt file with a single bucket
//   - [SQLite]: a pure Go SQLite database with a slots table
//   - [Memory]: an in-process map for tests and ephemeral runs
//
// Use [Open] to select a backend by name:
//
//	slots, err := store.Open(store.BackendBolt, dataDir)
//	if err != nil {
//	    return err
//	}
//	defer slots.Close()
package store
