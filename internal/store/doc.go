// Package store keeps the sync history ledger.
//
// The [Store] interface records one [model.SyncRun] per successful
// sync-icons invocation and lists them back newest first. The backend is
// BoltDB, an embedded key-value store kept in the application directory.
//
//	ledger, err := store.Open(path)
//	runs, err := ledger.ListRuns(10)
package store
