//go:build unix

package logger

import "log/syslog"

// severity maps a level to the platform syslog priority code.
func severity(l Level) int {
	switch l {
	case LevelError:
		return int(syslog.LOG_ERR)
	case LevelWarning:
		return int(syslog.LOG_WARNING)
	case LevelInfo:
		return int(syslog.LOG_INFO)
	case LevelDebug, LevelTrace:
		return int(syslog.LOG_DEBUG)
	default:
		return int(syslog.LOG_NOTICE)
	}
}
