// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesgo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesgo.  If not, see <https://www.gnu.org/licenses/>.

// Package logger gives every subsystem a single place to drop diagnostic
// entries, without wiring each one to stdout or to each other.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission gates whether a caller is allowed to add entries to the
// central log. Most call sites just pass Allow; the indirection exists so a
// future caller (e.g. a debug console) can gate logging on its own state
// without the logger package knowing anything about it.
type Permission interface {
	AllowLogging() bool
}

type allowAlways struct{}

func (allowAlways) AllowLogging() bool { return true }

// Allow is the Permission every unconditional log call should use.
var Allow Permission = allowAlways{}

// maxCentral bounds how many entries the process-wide log retains.
const maxCentral = 256

// central is the one log every package-level function in this file writes
// to and reads from. A single process only ever needs one.
var central = newLogger(maxCentral)

// Log adds an entry to the central log if perm allows it.
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central log if perm allows it.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear empties the central log.
func Clear() {
	central.clear()
}

// Write dumps every retained entry to output.
func Write(output io.Writer) {
	central.write(output)
}

// WriteRecent writes only the entries added since the last WriteRecent (or
// SetEcho with writeRecentFirst) call.
func WriteRecent(output io.Writer) {
	central.writeRecent(output)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho directs every future log entry to output as it's created, in
// addition to being retained. A nil output disables echoing.
func SetEcho(output io.Writer, writeRecentFirst bool) {
	central.setEcho(output, writeRecentFirst)
}

// BorrowLog grants f exclusive, synchronous access to the retained entries.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger.
type logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry
	recentFrom int

	echo io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if detail == e.detail && tag == e.tag {
			e.repeated++
			e.Timestamp = time.Now()
			if l.echo != nil {
				io.WriteString(l.echo, e.String())
			}
			return
		}
	}

	e := Entry{Timestamp: time.Now(), tag: tag, detail: detail}
	l.entries = append(l.entries, e)

	// maintain maximum length, adjusting the recentFrom bookmark so it still
	// points at the same logical entry
	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recentFrom -= trim
		if l.recentFrom < 0 {
			l.recentFrom = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) logf(tag, detail string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recentFrom = 0
}

func (l *logger) write(output io.Writer) bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// writeRecent writes only the entries added since the last call to
// writeRecent.
func (l *logger) writeRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries[l.recentFrom:] {
		io.WriteString(output, e.String())
	}
	l.recentFrom = len(l.entries)
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// setEcho directs every future log entry to output as it is created. if
// writeRecentFirst is true, entries added since the last writeRecent call are
// flushed to output immediately.
func (l *logger) setEcho(output io.Writer, writeRecentFirst bool) {
	if writeRecentFirst && output != nil {
		l.writeRecent(output)
	}

	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// borrowLog grants f exclusive access to the list of log entries for the
// duration of the call.
func (l *logger) borrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
