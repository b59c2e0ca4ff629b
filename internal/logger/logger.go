// Package logger keeps recent log lines in memory for the console overlay and appends every
// line to a file on disk.
package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FilePath is the default log file, relative to the working directory.
const FilePath = "logs/editor.txt"

// maxLines bounds the in-memory backlog.
const maxLines = 500

// Logger stores lines of text in memory and appends them to a file. It implements io.Writer
// so it can back a slog handler; every newline-terminated chunk becomes one line.
type Logger struct {
	mu      sync.Mutex
	path    string
	lines   []string
	partial []byte
	now     func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps
// lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// Log appends one timestamped line.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appendLine("[" + l.now().Format("2006-01-02 15:04:05") + "] " + line)
}

// Write implements io.Writer. Text after the last newline is buffered until the next write.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.partial = append(l.partial, p...)
	for {
		i := bytes.IndexByte(l.partial, '\n')
		if i < 0 {
			break
		}
		l.appendLine(strings.TrimRight(string(l.partial[:i]), "\r"))
		l.partial = l.partial[i+1:]
	}
	return len(p), nil
}

func (l *Logger) appendLine(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - maxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(line + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
