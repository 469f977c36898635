package logger

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Level classifies log entries from most to least urgent. LevelNone as
// a threshold suppresses everything.
type Level int32

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the level's display name.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Logger is the diagnostic output capability set. Implementations
// decide how and where a begin...extend*...end entry becomes visible
// output.
type Logger interface {
	// Begin starts a new entry at the given level, capturing the call
	// site and timestamp. An entry begun while another is active, or at
	// a level above the threshold, is suppressed.
	Begin(level Level, file, fn string, line int, stamp float64)

	// Extend appends formatted content to the active entry.
	Extend(format string, args ...any)

	// End finalizes the active entry.
	End()

	// Level returns the configured threshold.
	Level() Level

	// SetLevel replaces the threshold.
	SetLevel(Level)
}

// gate holds the state shared by the built-in backends: the configured
// threshold, the entry mutex, the active flag and the owner of the
// active entry.
type gate struct {
	mu     sync.Mutex
	level  atomic.Int32
	active atomic.Bool
	owner  atomic.Uint64 // goroutine id of the admitted entry

	// nested counts Begins suppressed by the owner while its own entry
	// is active, so their matching Extend/End calls are absorbed too.
	// Touched only by the owner, which holds mu.
	nested int
}

// admit decides whether an entry at lvl starts, and if so acquires the
// entry mutex. The level and active checks run before the lock is
// taken, so a caller racing an active entry can pass both checks and
// end up serializing on the mutex instead of being dropped. Suppression
// is fail-open; entries are still never interleaved because an admitted
// entry holds the mutex until End.
func (g *gate) admit(lvl Level) bool {
	if lvl == LevelNone || lvl > g.Level() || g.active.Load() {
		if g.active.Load() && g.owner.Load() == goid() {
			g.nested++
		}
		return false
	}
	g.mu.Lock()
	g.owner.Store(goid())
	g.active.Store(true)
	return true
}

// owns reports whether the calling goroutine holds the active entry.
// Extend and End calls from goroutines whose Begin was suppressed must
// be no-ops even while another entry is active.
func (g *gate) owns() bool {
	return g.active.Load() && g.owner.Load() == goid()
}

// extendable reports whether an Extend call belongs to the active
// entry; content from a nested suppressed entry is absorbed.
func (g *gate) extendable() bool {
	return g.owns() && g.nested == 0
}

// closing reports whether an End call finalizes the active entry,
// consuming one nested suppressed entry first when present.
func (g *gate) closing() bool {
	if !g.owns() {
		return false
	}
	if g.nested > 0 {
		g.nested--
		return false
	}
	return true
}

// release ends the active entry and releases serialization.
func (g *gate) release() {
	g.owner.Store(0)
	g.active.Store(false)
	g.mu.Unlock()
}

// Level returns the configured threshold.
func (g *gate) Level() Level { return Level(g.level.Load()) }

// SetLevel replaces the threshold.
func (g *gate) SetLevel(l Level) { g.level.Store(int32(l)) }

// goid returns the current goroutine id, parsed from the stack header.
// Entry attribution needs it; no runtime API exposes the id directly.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 123 [running]:"
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
