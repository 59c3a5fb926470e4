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

package logger_test

import (
	"strings"
	"testing"

	"github.com/nesgo/nesgo/logger"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	logger.Log(logger.Allow, "test", "this is a test")
	w.Reset()
	logger.Write(w)
	if w.String() != "test: this is a test\n" {
		t.Fatalf("unexpected log contents: %q", w.String())
	}

	logger.Log(logger.Allow, "test2", "this is another test")
	w.Reset()
	logger.Write(w)
	want := "test: this is a test\ntest2: this is another test\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	if w.String() != "test2: this is another test\n" {
		t.Fatalf("got %q", w.String())
	}

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	if w.String() != "" {
		t.Fatalf("got %q", w.String())
	}
}

func TestRepeatedEntriesAreCollapsed(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Write(w)

	if w.String() != "tag: detail (repeat x3)\n" {
		t.Fatalf("got %q", w.String())
	}
}

func TestLogf(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf(logger.Allow, "tag", "wrapped: %d", 42)
	logger.Write(w)

	if w.String() != "tag: wrapped: 42\n" {
		t.Fatalf("got %q", w.String())
	}
}

// permission that allows logging only when allow is greater than 50
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	w := &strings.Builder{}

	for _, v := range []int{0, 25, 50, 75, 100} {
		p := prohibitLogging{allow: v}
		logger.Clear()
		w.Reset()
		logger.Log(p, "tag", "detail")
		logger.Write(w)
		if p.AllowLogging() {
			if w.String() != "tag: detail\n" {
				t.Fatalf("allow=%d: got %q", v, w.String())
			}
		} else if w.String() != "" {
			t.Fatalf("allow=%d: expected no entry, got %q", v, w.String())
		}
	}
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "a", "first")
	logger.WriteRecent(w)
	if w.String() != "a: first\n" {
		t.Fatalf("got %q", w.String())
	}

	// nothing new since the last WriteRecent call
	w.Reset()
	logger.WriteRecent(w)
	if w.String() != "" {
		t.Fatalf("expected no recent entries, got %q", w.String())
	}

	logger.Log(logger.Allow, "b", "second")
	w.Reset()
	logger.WriteRecent(w)
	if w.String() != "b: second\n" {
		t.Fatalf("got %q", w.String())
	}
}

func TestBorrowLog(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "tag", "detail")

	var count int
	logger.BorrowLog(func(entries []logger.Entry) {
		count = len(entries)
	})

	if count != 1 {
		t.Fatalf("expected 1 entry, got %d", count)
	}
}
