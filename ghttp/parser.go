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

package ghttp

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gbuf"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/gsub"
)

// Parser is the incremental HTTP message parser adapter. A
// Parser is bound to one owner gobj and one mode for its whole lifetime;
// Reset starts a fresh message without discarding that binding.
type Parser struct {
	owner    *gobj.GObj
	mode     Mode
	event    string
	delivery Delivery

	acc *gbuf.Buffer

	state parseState

	headersComplete bool
	messageComplete bool

	url           string
	method        string
	statusCode    int
	headers       map[string]string
	lastHeaderKey string

	bodyBuf  *gbuf.Buffer
	bodySize int
}

// Create builds a Parser bound to owner, parsing mode messages, and
// delivering each completed message as event via send_event (DeliverBySend)
// or publish_event (DeliverByPublish).
func Create(owner *gobj.GObj, mode Mode, event string, delivery Delivery) *Parser {
	p := &Parser{
		owner:    owner,
		mode:     mode,
		event:    event,
		delivery: delivery,
		acc:      gbuf.Create(512, 0),
	}
	p.Reset()
	return p
}

// Reset clears URL, body, headers, current/last header key and
// reinitializes the state machine in the same mode.
func (p *Parser) Reset() {
	p.state = stateStartLine
	p.headersComplete = false
	p.messageComplete = false
	p.url = ""
	p.method = ""
	p.statusCode = 0
	p.headers = make(map[string]string)
	p.lastHeaderKey = ""
	p.bodyBuf = gbuf.Create(256, 0)
	p.bodySize = 0
}

// Received feeds b into the parser. It returns the number of
// bytes consumed (always len(b)) on success, or -1 on a parse error — per
// contract the caller then closes the transport; the parser never retries.
func (p *Parser) Received(b []byte) (int, liberr.Error) {
	if err := p.acc.Append(b); err != nil {
		return -1, err
	}

	for {
		switch p.state {
		case stateStartLine:
			line, ok := p.nextLine()
			if !ok {
				return len(b), nil
			}
			if err := p.parseStartLine(line); err != nil {
				p.logParseError("malformed start line", err)
				return -1, err
			}
			p.state = stateHeaders

		case stateHeaders:
			line, ok := p.nextLine()
			if !ok {
				return len(b), nil
			}
			if line == "" {
				p.headersComplete = true
				p.bodySize = p.contentLength()
				p.state = stateBody
				continue
			}
			if err := p.parseHeaderLine(line); err != nil {
				p.logParseError("malformed header line", err)
				return -1, err
			}

		case stateBody:
			if p.bodySize == 0 {
				p.finish()
				continue
			}
			need := p.bodySize - p.bodyBuf.TotalBytes()
			if need <= 0 {
				p.finish()
				continue
			}
			avail := p.acc.LeftBytes()
			if avail == 0 {
				return len(b), nil
			}
			take := need
			if avail < take {
				take = avail
			}
			chunk, _ := p.acc.Get(take)
			_ = p.bodyBuf.Append(chunk)
			if p.bodyBuf.TotalBytes() >= p.bodySize {
				p.finish()
			}

		case stateDone:
			return len(b), nil
		}
	}
}

// nextLine consumes one CRLF- or LF-terminated line from the accumulation
// buffer without disturbing it when no full line is available yet.
func (p *Parser) nextLine() (string, bool) {
	chunk := p.acc.Chunk()
	idx := bytes.IndexByte(chunk, '\n')
	if idx < 0 {
		return "", false
	}
	raw, _ := p.acc.Get(idx + 1)
	return strings.TrimRight(string(raw), "\r\n"), true
}

func (p *Parser) parseStartLine(line string) liberr.Error {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return ErrorMalformedStartLine.Error(nil)
	}

	if p.mode == ModeResponse {
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			return ErrorMalformedStartLine.Error(nil)
		}
		p.statusCode = code
		return nil
	}

	p.method = fields[0]
	p.url = fields[1]
	return nil
}

// parseHeaderLine handles both obs-fold continuation (a leading space or
// tab extends the previous header's value) and a repeated header name,
// which is appended to the value already recorded.
func (p *Parser) parseHeaderLine(line string) liberr.Error {
	if (line[0] == ' ' || line[0] == '\t') && p.lastHeaderKey != "" {
		p.headers[p.lastHeaderKey] += " " + strings.TrimSpace(line)
		return nil
	}

	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return ErrorMalformedHeader.Error(nil)
	}

	name := strings.ToUpper(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])

	if existing, ok := p.headers[name]; ok {
		p.headers[name] = existing + ", " + value
	} else {
		p.headers[name] = value
	}
	p.lastHeaderKey = name
	return nil
}

func (p *Parser) contentLength() int {
	v, ok := p.headers["CONTENT-LENGTH"]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// finish synthesizes the completed-message kw dictionary,
// delivers it through send_event or publish_event, then resets for the
// next message on the same connection.
func (p *Parser) finish() {
	msg := map[string]interface{}{
		"http_parser_type":     p.mode.String(),
		"url":                  p.url,
		"response_status_code": p.statusCode,
		"request_method":       p.method,
		"headers":              p.headersCopy(),
		"body":                 p.decodedBody(),
	}

	p.messageComplete = true
	p.state = stateDone

	switch p.delivery {
	case DeliverBySend:
		_, _ = gobj.SendEvent(p.owner, p.event, msg, nil)
	case DeliverByPublish:
		_, _ = gsub.Publish(p.owner, p.event, msg)
	}

	p.Reset()
}

func (p *Parser) headersCopy() map[string]string {
	out := make(map[string]string, len(p.headers))
	for k, v := range p.headers {
		out[k] = v
	}
	return out
}

func (p *Parser) decodedBody() interface{} {
	raw := append([]byte(nil), p.bodyBuf.Chunk()...)

	if strings.Contains(strings.ToLower(p.headers["CONTENT-TYPE"]), "application/json") {
		var v interface{}
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
	}
	return string(raw)
}

// HeadersComplete / MessageComplete expose the parser-state flags,
// readable between Received calls for diagnostics.
func (p *Parser) HeadersComplete() bool { return p.headersComplete }
func (p *Parser) MessageComplete() bool { return p.messageComplete }
