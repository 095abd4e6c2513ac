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

// Package logger is the structured logging backend of the runtime. The
// gobj runtime itself never imports this package
// directly for its trace decisions — gtrace owns the bitmask filtering — but
// every log record that survives a trace check is written through a Logger.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"

	liberr "github.com/nabbar/yuneta/errors"
)

// Logger is the minimal structured-logging surface the runtime needs: level
// filtering, field attachment, and an io.Writer escape hatch so other
// packages (gloop, gbuf) can redirect their own diagnostic output into it.
type Logger interface {
	io.Writer

	SetLevel(lvl Level)
	GetLevel() Level

	SetFields(f Fields)
	GetFields() Fields

	Debug(message string, f Fields)
	Info(message string, f Fields)
	Warning(message string, f Fields)
	Error(message string, f Fields)
	Critical(message string, f Fields)

	// ErrorCaught logs err (an errors.Error when available, wrapping the
	// taxonomy Kind from errors.KindOf) at the given level.
	ErrorCaught(lvl Level, message string, err error, f Fields)

	Clone() Logger
}

type lgr struct {
	out logrus.FieldLogger
	lvl Level
	flt Fields
}

// New builds a Logger writing to w using logrus' text formatter, matching
// the backend nabbar-golib's own logger wraps.
func New(w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &lgr{
		out: l,
		lvl: InfoLevel,
		flt: NewFields(),
	}
}

func (o *lgr) Write(p []byte) (int, error) {
	o.Info(string(p), nil)
	return len(p), nil
}

func (o *lgr) SetLevel(lvl Level) { o.lvl = lvl }
func (o *lgr) GetLevel() Level    { return o.lvl }

func (o *lgr) SetFields(f Fields) { o.flt = f }
func (o *lgr) GetFields() Fields  { return o.flt }

func (o *lgr) entry(f Fields) *logrus.Entry {
	merged := o.flt.Merge(f)
	m := make(logrus.Fields, len(merged))
	for k, v := range merged {
		m[k] = v
	}
	return o.out.WithFields(m)
}

func (o *lgr) log(lvl Level, message string, f Fields) {
	if lvl > o.lvl {
		return
	}
	e := o.entry(f)
	switch lvl {
	case PanicLevel:
		e.Panic(message)
	case FatalLevel:
		e.Error(message)
	case ErrorLevel:
		e.Error(message)
	case WarnLevel:
		e.Warn(message)
	case InfoLevel:
		e.Info(message)
	default:
		e.Debug(message)
	}
}

func (o *lgr) Debug(message string, f Fields)    { o.log(DebugLevel, message, f) }
func (o *lgr) Info(message string, f Fields)     { o.log(InfoLevel, message, f) }
func (o *lgr) Warning(message string, f Fields)  { o.log(WarnLevel, message, f) }
func (o *lgr) Error(message string, f Fields)    { o.log(ErrorLevel, message, f) }
func (o *lgr) Critical(message string, f Fields) { o.log(FatalLevel, message, f) }

func (o *lgr) ErrorCaught(lvl Level, message string, err error, f Fields) {
	if err == nil {
		o.log(lvl, message, f)
		return
	}

	if f == nil {
		f = NewFields()
	}
	f = f.Add("msgset", string(liberr.KindOf(err))).Add("error", err.Error())
	o.log(lvl, message, f)
}

func (o *lgr) Clone() Logger {
	c := *o
	return &c
}
