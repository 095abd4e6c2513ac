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

package gattr

// Type tags the kind of value an attribute holds.
type Type uint8

const (
	TypeString Type = iota
	TypeBoolean
	TypeInteger
	TypeReal
	TypeList
	TypeDict
	TypeJSON
	TypePointer
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeReal:
		return "real"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	case TypeJSON:
		return "json"
	case TypePointer:
		return "pointer"
	}
	return "unknown"
}

// Flag is a bitset of attribute properties.
type Flag uint32

const (
	FlagReadable Flag = 1 << iota
	FlagWritable
	FlagRequired
	FlagPersistent
	FlagVolatile
	FlagStats
	FlagRStats
	FlagPStats
	FlagFKey
	FlagPKey
	FlagWildCmd
	FlagAuthz
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// Descriptor is the static, gclass-level definition of one attribute.
type Descriptor struct {
	Name        string
	Type        Type
	Flags       Flag
	Default     string
	Description string
}
