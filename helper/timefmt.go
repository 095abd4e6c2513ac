/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package helper

import (
	"time"

	liberr "github.com/nabbar/yuneta/errors"
)

// TimestampLayout is the wire/log format for every yuneta timestamp:
// RFC-3339 with nanosecond precision, chosen over nabbar-golib/mail's
// RFC1123Z since this runtime's timestamps are machine-parsed (trace
// records, persisted attribute snapshots) rather than mail headers.
const TimestampLayout = time.RFC3339Nano

// FormatTimestamp renders t in TimestampLayout, always in UTC so trace
// records compare correctly across processes in different zones.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reverses FormatTimestamp.
func ParseTimestamp(s string) (time.Time, liberr.Error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, ErrorJSONDecode.Error(err)
	}
	return t, nil
}
