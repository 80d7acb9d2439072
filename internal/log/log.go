// Package log provides centralised audit logging for pathcalc invocations.
// Entries are stored in ~/.pathcalc/log/pathcalc-log.db and record every CLI
// command across projects: the operation, its input paths, the variant in
// effect, and the computed result.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("resolve:resolve", "resolve").
//		Variant(v.String()).
//		Inputs(paths...).
//		Result(r).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}", for
// example "resolve:relative" or "name:base".
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string   // e.g., "resolve:resolve", "name:ext"
	Action  string   // verb: resolve, relative, classify, rename, etc.
	Variant string   // platform variant in effect: generic or windows
	Inputs  []string // input path arguments
	Result  string   // computed output, if the operation succeeded

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

// Event creates a new log entry builder for an operation.
// The source identifies the command ("{extension}:{command}") and the action
// describes the operation performed.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Variant records the platform variant the operation ran under.
func (b *Builder) Variant(variant string) *Builder {
	b.entry.Variant = variant
	return b
}

// Inputs records the input path arguments.
func (b *Builder) Inputs(paths ...string) *Builder {
	b.entry.Inputs = paths
	return b
}

// Result records the computed output of a successful operation.
func (b *Builder) Result(result string) *Builder {
	b.entry.Result = result
	return b
}

// Detail adds an operation-specific key/value pair.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write finalises the entry and persists it. A nil err marks the entry
// successful. Writing is best-effort: failures never propagate to the
// operation being logged.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}

	mu.Lock()
	l := global
	mu.Unlock()
	if l == nil {
		return
	}
	l.log(b.entry)
}

// Open initialises the global logger. Call once at process start; commands
// logged before Open (or after a failed Open) are dropped silently.
func Open() error {
	l, err := newLogger()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	global = l
	return nil
}

// Close flushes and closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		_ = global.db.Close()
		global = nil
	}
}
