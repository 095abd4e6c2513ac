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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	hdr, body := Encode([]byte("hello"))
	assert.Equal(t, 9, int(hdr[0])<<24|int(hdr[1])<<16|int(hdr[2])<<8|int(hdr[3]))

	d := CreateDecoder(nil, "EV_FRAME", DeliverBySend, 0)
	wire := append(append([]byte(nil), hdr[:]...), body...)

	n, err := d.Received(wire)
	assert.NoError(t, err)
	assert.Equal(t, len(wire), n)
}

func TestDecoder_ZeroPayloadFrame(t *testing.T) {
	d := CreateDecoder(nil, "EV_FRAME", DeliverBySend, 0)
	hdr, _ := Encode(nil)

	n, err := d.Received(hdr[:])
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestDecoder_TrickleFeed(t *testing.T) {
	d := CreateDecoder(nil, "EV_FRAME", DeliverBySend, 0)
	hdr, body := Encode([]byte("PING"))
	wire := append(append([]byte(nil), hdr[:]...), body...)

	for i := range wire {
		n, err := d.Received(wire[i : i+1])
		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	}
}

func TestDecoder_OverMaxPktDrops(t *testing.T) {
	d := CreateDecoder(nil, "EV_FRAME", DeliverBySend, 8)
	hdr, body := Encode(make([]byte, 100))
	wire := append(append([]byte(nil), hdr[:]...), body...)

	_, err := d.Received(wire)
	assert.Error(t, err)
}

func TestDecoder_MultipleFramesInOneRead(t *testing.T) {
	d := CreateDecoder(nil, "EV_FRAME", DeliverBySend, 0)
	h1, b1 := Encode([]byte("one"))
	h2, b2 := Encode([]byte("two"))

	wire := append(append([]byte(nil), h1[:]...), b1...)
	wire = append(wire, h2[:]...)
	wire = append(wire, b2...)

	n, err := d.Received(wire)
	assert.NoError(t, err)
	assert.Equal(t, len(wire), n)
}
