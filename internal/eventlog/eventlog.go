// Package eventlog keeps the scrollable record of what happened in a match.
package eventlog

// DefaultCapacity is used when a log is created with a non-positive capacity.
const DefaultCapacity = 256

// Log is an append-only list of single-line event descriptions. When full,
// the oldest lines are dropped. TopIndex is the first line shown in the
// scrolling window.
type Log struct {
	lines    []string
	capacity int
	TopIndex int
}

// New returns an empty log holding at most capacity lines.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Push appends a line.
func (l *Log) Push(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.capacity; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
		l.TopIndex = max(l.TopIndex-over, 0)
	}
}

// Len returns the number of lines held.
func (l *Log) Len() int { return len(l.lines) }

// Lines returns a copy of every line, oldest first.
func (l *Log) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Last returns the newest line.
func (l *Log) Last() (string, bool) {
	if len(l.lines) == 0 {
		return "", false
	}
	return l.lines[len(l.lines)-1], true
}

// Window returns up to n lines starting at TopIndex.
func (l *Log) Window(n int) []string {
	start := min(max(l.TopIndex, 0), len(l.lines))
	end := min(start+max(n, 0), len(l.lines))
	return append([]string(nil), l.lines[start:end]...)
}

// ScrollUp moves the window one line towards the oldest entry.
func (l *Log) ScrollUp() bool {
	if l.TopIndex == 0 {
		return false
	}
	l.TopIndex--
	return true
}

// ScrollDown moves the window one line towards the newest entry.
func (l *Log) ScrollDown() bool {
	if l.TopIndex >= len(l.lines) {
		return false
	}
	l.TopIndex++
	return true
}

// Clear drops every line.
func (l *Log) Clear() {
	l.lines = l.lines[:0]
	l.TopIndex = 0
}
