//go:build !unix

package logger

// Syslog-equivalent priority codes for platforms without <syslog.h>.
const (
	prioErr     = 3
	prioWarning = 4
	prioNotice  = 5
	prioInfo    = 6
	prioDebug   = 7
)

// severity maps a level to a syslog-equivalent priority code.
func severity(l Level) int {
	switch l {
	case LevelError:
		return prioErr
	case LevelWarning:
		return prioWarning
	case LevelInfo:
		return prioInfo
	case LevelDebug, LevelTrace:
		return prioDebug
	default:
		return prioNotice
	}
}
