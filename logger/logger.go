// Package logger provides leveled logging for the game and its front ends.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes prefixed lines at three levels plus game events
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing every level to w
func NewLogger(w io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	return &Logger{
		infoLogger:  log.New(w, "[SNAKE-INFO] ", flags),
		warnLogger:  log.New(w, "[SNAKE-WARN] ", flags),
		errorLogger: log.New(w, "[SNAKE-ERROR] ", flags),
	}
}

// Stderr is the default logger for the windowed front end
func Stderr() *Logger {
	return NewLogger(os.Stderr)
}

// Discard drops everything
func Discard() *Logger {
	return NewLogger(io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Event logs a game event tagged with the game it belongs to
func (l *Logger) Event(eventType string, gameID string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Game:%s | %s", eventType, gameID, details)
}
