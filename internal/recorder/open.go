package recorder

import "log"

// Open picks a backend: PostgreSQL when dsn is set, else SQLite when dbPath is
// set, else a NoopRecorder. A backend that fails to open is logged and
// replaced by a NoopRecorder.
func Open(dsn, dbPath string) Recorder {
	switch {
	case dsn != "":
		r, err := NewPostgresRecorder(dsn)
		if err != nil {
			log.Printf("[WARN] Failed to open postgres recorder: %v, running without history", err)
			return NewNoopRecorder()
		}
		return r
	case dbPath != "":
		r, err := NewSQLiteRecorder(dbPath)
		if err != nil {
			log.Printf("[WARN] Failed to open sqlite recorder: %v, running without history", err)
			return NewNoopRecorder()
		}
		return r
	default:
		return NewNoopRecorder()
	}
}
