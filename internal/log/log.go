// Package log provides centralised audit logging for trellis host
// operations. Entries are stored in ~/.trellis/log/trellis-log.db and track
// activations, lifecycle notifications, pipeline runs, and builds across
// sites.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("host:activate", "activate").
//		Extension(name).
//		Generation(gen).
//		Write(err)
//
//	log.Event("pipeline:run", "transform").
//		Detail("stages", n).
//		Detail("resources", len(final)).
//		Write(err)
//
// The source parameter follows the format "{component}:{operation}", e.g.
// "host:activate", "phase:ready", "pipeline:run", "builder:build".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source     string // e.g. "host:activate", "phase:after_configuration"
	Action     string // verb: activate, notify, transform, build, reload
	Extension  string // extension the entry is attributed to, if any
	Phase      string // lifecycle phase, for notification entries
	Stage      int    // pipeline stage index (1-based, 0 = not a stage entry)
	Generation string // application state generation id

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation. The source
// identifies the component and operation, the action the verb performed.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Extension attributes the entry to an extension by name.
func (b *Builder) Extension(name string) *Builder {
	b.entry.Extension = name
	return b
}

// Phase records the lifecycle phase a notification entry belongs to.
func (b *Builder) Phase(phase string) *Builder {
	b.entry.Phase = phase
	return b
}

// Stage records the 1-based pipeline stage index for stage entries.
func (b *Builder) Stage(index int) *Builder {
	b.entry.Stage = index
	return b
}

// Generation records the application state generation the entry belongs to,
// distinguishing entries across reload boundaries.
func (b *Builder) Generation(gen string) *Builder {
	b.entry.Generation = gen
	return b
}

// Detail adds a key-value pair to the log entry's detail map. Can be called
// multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from
// err. This is the standard way to complete an entry after an operation:
//
//	err := app.Notify(phase)
//	log.Event("phase:"+string(phase), "notify").Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetSite sets the site identifier for subsequent log entries. The dir
// should be the absolute path of the site root.
func SetSite(dir string) {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		global.site = hash(dir)
	}
}

// Log writes an entry through the global logger. A no-op when the logger
// was never opened, so callers need no nil checks.
func Log(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		return
	}
	global.log(e)
}

// Close releases the global logger's database handle.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		return
	}
	global.db.Close()
	global = nil
}
