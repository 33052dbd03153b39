// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Log entries are
// tagged with the name of the part of the program making the entry. Repeated
// entries are folded into one with a repetition count.
//
// Entries accumulate in the central log and are retrieved with Write() or
// Tail(). Alternatively, entries can be echoed to an io.Writer as they
// arrive with SetEcho().
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	tag      string
	detail   string
	repeated int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries in the central logger.
const maxCentral = 256

// only allowing one central log for the entire application. there's no need
// for more than one.
type logger struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central logger

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.crit.Lock()
	defer central.crit.Unlock()

	// newline characters confuse the one-entry-per-line promise
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(central.entries) > 0 {
		last := &central.entries[len(central.entries)-1]
		if last.tag == tag && last.detail == detail {
			last.repeated++
			return
		}
	}

	e := Entry{tag: tag, detail: detail}
	central.entries = append(central.entries, e)
	if len(central.entries) > maxCentral {
		central.entries = central.entries[1:]
	}

	if central.echo != nil {
		io.WriteString(central.echo, e.String())
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from central logger.
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()

	central.entries = central.entries[:0]
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()

	for _, e := range central.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	n := len(central.entries) - number
	if n < 0 {
		n = 0
	}

	for _, e := range central.entries[n:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints log entries to io.Writer as they arrive. A nil writer
// stops the echoing.
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()

	central.echo = output
}
