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

package gframe

import (
	"encoding/binary"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gbuf"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/gsub"
	"github.com/nabbar/yuneta/logger"
)

const headerSize = 4

// Decoder is a push-based TCP4H frame splitter bound to one owner gobj for
// its whole lifetime, mirroring ghttp.Parser's shape. maxPkt is the
// configured ceiling; 0 means no
// ceiling beyond gbuf's own.
type Decoder struct {
	owner    *gobj.GObj
	event    string
	delivery int
	maxPkt   int

	acc     *gbuf.Buffer
	want    int
	haveLen bool
}

const (
	DeliverBySend = iota
	DeliverByPublish
)

// CreateDecoder builds a Decoder delivering each fully-framed payload as
// event on owner, via send_event or publish_event per delivery.
func CreateDecoder(owner *gobj.GObj, event string, delivery int, maxPkt int) *Decoder {
	return &Decoder{
		owner:    owner,
		event:    event,
		delivery: delivery,
		maxPkt:   maxPkt,
		acc:      gbuf.Create(256, 0),
	}
}

// Received feeds n more bytes, splitting and delivering every complete
// frame found. It returns the number of bytes consumed (always len(b)) on
// success, or -1 if a frame declares a length over maxPkt — the caller must
// then drop the connection.
func (d *Decoder) Received(b []byte) (int, liberr.Error) {
	if err := d.acc.Append(b); err != nil {
		return -1, err
	}

	for {
		if !d.haveLen {
			if d.acc.LeftBytes() < headerSize {
				return len(b), nil
			}
			hdr, _ := d.acc.Get(headerSize)
			total := int(binary.BigEndian.Uint32(hdr))
			if total < headerSize {
				err := ErrorFrameTooShort.Error(nil)
				d.logDrop("frame length below header size", err, total)
				return -1, err
			}
			if d.maxPkt > 0 && total > d.maxPkt {
				err := ErrorFrameTooLarge.Error(nil)
				d.logDrop("frame length exceeds maximum, dropping connection", err, total)
				return -1, err
			}
			d.want = total - headerSize
			d.haveLen = true
		}

		if d.acc.LeftBytes() < d.want {
			return len(b), nil
		}

		payload, _ := d.acc.Get(d.want)
		d.deliver(payload)
		d.haveLen = false
		d.want = 0
	}
}

func (d *Decoder) logDrop(message string, err error, total int) {
	if pkgLog == nil {
		return
	}
	f := logger.NewFields().Add("frame_len", total).Add("max_pkt", d.maxPkt)
	if d.owner != nil {
		f = f.Add("gobj", d.owner.FullName())
	}
	pkgLog.ErrorCaught(logger.ErrorLevel, message, err, f)
}

func (d *Decoder) deliver(payload []byte) {
	msg := map[string]interface{}{
		"frame": append([]byte(nil), payload...),
	}

	switch d.delivery {
	case DeliverBySend:
		_, _ = gobj.SendEvent(d.owner, d.event, msg, nil)
	case DeliverByPublish:
		_, _ = gsub.Publish(d.owner, d.event, msg)
	}
}

// Encode wraps payload in its TCP4H header, returning header and payload as
// two separate slices so a caller can issue the two writes the framing
// requires ("header then payload as two separate writes").
func Encode(payload []byte) (header [4]byte, body []byte) {
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)+headerSize))
	return header, payload
}
