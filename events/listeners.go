// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all context
// captured. Each registration carries an id so that it can be removed
// independently of the others.
type Listeners map[Types][]listener

type listener struct {
	id  int
	fun func(ev Event)
}

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]listener)
}

// Add adds a function for the given type under the given id.
func (ls *Listeners) Add(typ Types, id int, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], listener{id: id, fun: fun})
}

// Delete removes the function registered under the given type and id,
// returning whether it was present.
func (ls *Listeners) Delete(typ Types, id int) bool {
	ets := (*ls)[typ]
	for i, l := range ets {
		if l.id != id {
			continue
		}
		(*ls)[typ] = append(ets[:i:i], ets[i+1:]...)
		return true
	}
	return false
}

// Call calls all functions for the given event. It goes in reverse
// order so the last functions added are the first called, and it stops
// when the event is marked as Handled, giving a natural override
// behavior without priority mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
