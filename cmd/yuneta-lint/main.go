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

// Command yuneta-lint validates a gclass registry description offline: it
// loads a JSON file describing classes, their states, events and transition
// tables, and reports every inconsistency a gclass_create call would reject
// at runtime — plus the ones it would only reject later, at dispatch time.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nabbar/yuneta/helper"
)

// registryFile is the on-disk shape yuneta-lint consumes. Actions are named
// only — an offline lint cannot resolve function pointers, so it checks the
// table shape, not the implementations.
type registryFile struct {
	Classes []classDesc `json:"classes"`
}

type classDesc struct {
	Name        string              `json:"name"`
	States      []string            `json:"states"`
	Events      []eventDesc         `json:"events"`
	Transitions []transitionDesc    `json:"transitions"`
	TraceLevels []string            `json:"trace_levels"`
	Schemas     []string            `json:"schemas"`
}

type eventDesc struct {
	Name  string   `json:"name"`
	Flags []string `json:"flags"`
}

type transitionDesc struct {
	State     string `json:"state"`
	Event     string `json:"event"`
	Action    string `json:"action"`
	NextState string `json:"next_state"`
}

var eventFlagNames = map[string]bool{
	"output": true, "system": true, "public": true, "no_warn_subs": true,
}

func lint(reg *registryFile) []string {
	var problems []string

	report := func(class, format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf("%s: %s", class, fmt.Sprintf(format, args...)))
	}

	seenClass := make(map[string]bool)
	seenSchema := make(map[string]string)

	for _, c := range reg.Classes {
		if c.Name == "" {
			report("(unnamed)", "class name must not be empty")
			continue
		}
		if strings.ContainsAny(c.Name, "`^.") {
			report(c.Name, "class name contains a reserved character (backtick, caret or dot)")
		}
		if seenClass[c.Name] {
			report(c.Name, "class declared more than once")
		}
		seenClass[c.Name] = true

		if len(c.States) == 0 {
			report(c.Name, "class declares no state")
		}
		states := make(map[string]bool, len(c.States))
		for _, s := range c.States {
			if states[s] {
				report(c.Name, "state %q declared more than once", s)
			}
			states[s] = true
		}

		events := make(map[string]bool, len(c.Events))
		for _, e := range c.Events {
			if e.Name == "" {
				report(c.Name, "event with empty name")
				continue
			}
			if events[e.Name] {
				report(c.Name, "event %q declared more than once", e.Name)
			}
			events[e.Name] = true
			for _, f := range e.Flags {
				if !eventFlagNames[f] {
					report(c.Name, "event %q carries unknown flag %q", e.Name, f)
				}
			}
		}

		if len(c.TraceLevels) > 16 {
			report(c.Name, "more than 16 user trace levels (%d declared)", len(c.TraceLevels))
		}

		reachable := make(map[string]bool)
		for _, tr := range c.Transitions {
			if !states[tr.State] {
				report(c.Name, "transition in unknown state %q", tr.State)
			}
			if !events[tr.Event] {
				report(c.Name, "transition on undeclared event %q", tr.Event)
			}
			if tr.NextState != "" {
				if !states[tr.NextState] {
					report(c.Name, "transition (%s, %s) targets unknown state %q", tr.State, tr.Event, tr.NextState)
				}
				reachable[tr.NextState] = true
			}
			if tr.Action == "" && tr.NextState == "" {
				report(c.Name, "transition (%s, %s) has neither action nor next state", tr.State, tr.Event)
			}
		}

		// the first declared state is the initial one; every other state
		// should be the target of some transition
		for i, s := range c.States {
			if i == 0 {
				continue
			}
			if !reachable[s] {
				report(c.Name, "state %q is unreachable from any transition", s)
			}
		}

		for _, schema := range c.Schemas {
			if prev, dup := seenSchema[schema]; dup {
				report(c.Name, "schema %q already bound to class %q", schema, prev)
			}
			seenSchema[schema] = c.Name
		}
	}

	return problems
}

func run(path string) error {
	var reg registryFile
	if err := helper.ReadJSONFile(path, &reg); err != nil {
		return fmt.Errorf("cannot load %s: %s", path, err.Error())
	}

	problems := lint(&reg)
	if len(problems) == 0 {
		fmt.Printf("%s: %d class(es), no problem found\n", path, len(reg.Classes))
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(os.Stderr, p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}

func main() {
	cmd := &cobra.Command{
		Use:   "yuneta-lint <registry.json>",
		Short: "validates a gclass registry description offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
