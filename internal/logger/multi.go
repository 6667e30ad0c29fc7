package logger

import (
	"time"

	"github.com/harrison/search/internal/models"
)

// SearchLogger is the set of events a search reports.
type SearchLogger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogSearchStart(req models.SearchRequest)
	LogSkip(path string, err error)
	LogRootComplete(result models.RootResult, duration time.Duration)
	LogSummary(result *models.AggregatedResult, duration time.Duration)
}

// MultiLogger fans every event out to several loggers.
type MultiLogger struct {
	loggers []SearchLogger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are dropped.
func NewMultiLogger(loggers ...SearchLogger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogSearchStart(req models.SearchRequest) {
	for _, l := range m.loggers {
		l.LogSearchStart(req)
	}
}

func (m *MultiLogger) LogSkip(path string, err error) {
	for _, l := range m.loggers {
		l.LogSkip(path, err)
	}
}

func (m *MultiLogger) LogRootComplete(result models.RootResult, duration time.Duration) {
	for _, l := range m.loggers {
		l.LogRootComplete(result, duration)
	}
}

func (m *MultiLogger) LogSummary(result *models.AggregatedResult, duration time.Duration) {
	for _, l := range m.loggers {
		l.LogSummary(result, duration)
	}
}
