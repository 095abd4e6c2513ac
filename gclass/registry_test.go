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

package gclass_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gclass"
)

func uniqueName(t *testing.T) string {
	return fmt.Sprintf("test_class_%s", t.Name())
}

func TestCreate_RejectsReservedChars(t *testing.T) {
	_, err := gclass.Create("bad`name", nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.Error(t, err)

	_, err = gclass.Create("bad^name", nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.Error(t, err)

	_, err = gclass.Create("bad.name", nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.Error(t, err)
}

func TestCreate_RejectsDuplicate(t *testing.T) {
	name := uniqueName(t)
	_, err := gclass.Create(name, nil, []string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	_, err = gclass.Create(name, nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.Error(t, err)
}

func TestAddEvAction_AndLookup(t *testing.T) {
	name := uniqueName(t)
	gc, err := gclass.Create(name, []gclass.EventType{{Name: "EV_TICK", Flags: gclass.EventSystem}},
		[]string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	called := false
	require.NoError(t, gclass.AddEvAction(gc, "ST_IDLE", "EV_TICK", func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
		called = true
		return 0, nil
	}))

	fn, ok := gclass.Action(gc, "ST_IDLE", "EV_TICK")
	require.True(t, ok)
	_, _ = fn(nil, "EV_TICK", nil)
	require.True(t, called)

	_, ok = gclass.Action(gc, "ST_IDLE", "EV_MISSING")
	require.False(t, ok)

	et, ok := gclass.EventTypeByName(gc, "EV_TICK")
	require.True(t, ok)
	require.Equal(t, gclass.EventSystem, et.Flags)
}

func TestUnregister_RefusesWithLiveInstances(t *testing.T) {
	name := uniqueName(t)
	gc, err := gclass.Create(name, nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	gclass.IncInstance(gc)
	require.Error(t, gclass.Unregister(gc))

	gclass.DecInstance(gc)
	require.NoError(t, gclass.Unregister(gc))

	_, ok := gclass.Lookup(name)
	require.False(t, ok)
}
