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

package logger_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	logger.Logf("test", "this is a %s", "formatted test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\ntest: this is a formatted test\n"))
}

func TestLoggerRepeats(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same entry (repeat x3)\n"))
}

func TestLoggerTail(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")
	logger.Tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: two\ntest: three\n"))
}
