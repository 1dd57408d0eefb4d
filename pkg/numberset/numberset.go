// Copyright 2022 the Exposure Notifications Verification Server authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package numberset deduplicates phone numbers written in different formats.
//
// Only numbers that resolve to a country are members; two inputs are the same
// member when their E.164 forms are equal.
package numberset

import (
	"fmt"

	"github.com/google/exposure-notifications-phonenumbers/pkg/phonenumber"
)

// Set is an insertion-ordered set of resolved phone numbers. It is not safe for
// concurrent use.
type Set struct {
	engine *phonenumber.Engine
	hint   string

	numbers map[string]*phonenumber.PhoneNumber
	order   []string
}

// New creates an empty set that parses its string arguments with engine and
// hint. If engine is nil, phonenumber.Default is used.
func New(engine *phonenumber.Engine, hint string) *Set {
	if engine == nil {
		engine = phonenumber.Default()
	}
	return &Set{
		engine:  engine,
		hint:    hint,
		numbers: make(map[string]*phonenumber.PhoneNumber),
	}
}

// From creates a set containing every input that resolves. Inputs that do not
// are skipped.
func From(engine *phonenumber.Engine, hint string, raws ...string) *Set {
	s := New(engine, hint)
	for _, raw := range raws {
		_, _ = s.Add(raw)
	}
	return s
}

func (s *Set) parse(raw string) (*phonenumber.PhoneNumber, error) {
	n, err := s.engine.Parse(raw, s.hint)
	if err != nil {
		return nil, err
	}
	if !n.Valid() {
		return nil, fmt.Errorf("%q: %w", raw, phonenumber.ErrUnresolved)
	}
	return n, nil
}

// Add parses raw and adds it. It returns true if the number was not already a
// member, and an error if raw does not resolve to a country.
func (s *Set) Add(raw string) (bool, error) {
	n, err := s.parse(raw)
	if err != nil {
		return false, err
	}
	return s.AddNumber(n), nil
}

// AddNumber adds n. It returns false if n is nil, unresolved, or already a
// member.
func (s *Set) AddNumber(n *phonenumber.PhoneNumber) bool {
	if n == nil || !n.Valid() {
		return false
	}
	key := n.Key()
	if _, ok := s.numbers[key]; ok {
		return false
	}
	s.numbers[key] = n
	s.order = append(s.order, key)
	return true
}

// Contains reports whether raw is a member.
func (s *Set) Contains(raw string) bool {
	_, ok := s.Find(raw)
	return ok
}

// Find returns the member equal to raw, which may have been added in a
// different format.
func (s *Set) Find(raw string) (*phonenumber.PhoneNumber, bool) {
	n, err := s.parse(raw)
	if err != nil {
		return nil, false
	}
	m, ok := s.numbers[n.Key()]
	return m, ok
}

// Remove removes the member equal to raw. It returns false if there was none.
func (s *Set) Remove(raw string) bool {
	n, err := s.parse(raw)
	if err != nil {
		return false
	}

	key := n.Key()
	if _, ok := s.numbers[key]; !ok {
		return false
	}
	delete(s.numbers, key)

	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.order)
}

// Numbers returns the members in insertion order.
func (s *Set) Numbers() []*phonenumber.PhoneNumber {
	out := make([]*phonenumber.PhoneNumber, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.numbers[k])
	}
	return out
}

// Keys returns the E.164 form of each member in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.numbers[k].E164())
	}
	return out
}

// Equal reports whether a and b resolve to the same number.
func Equal(engine *phonenumber.Engine, hint, a, b string) bool {
	s := New(engine, hint)
	x, err := s.parse(a)
	if err != nil {
		return false
	}
	y, err := s.parse(b)
	if err != nil {
		return false
	}
	return x.Equal(y)
}

// Group partitions raws into groups of equal numbers. Groups are ordered by
// the first appearance of their first member, and members keep their input
// order. Inputs that do not resolve each form their own group.
func Group(engine *phonenumber.Engine, hint string, raws []string) [][]string {
	s := New(engine, hint)

	var groups [][]string
	index := make(map[string]int)

	for _, raw := range raws {
		n, err := s.parse(raw)
		if err != nil {
			groups = append(groups, []string{raw})
			continue
		}

		key := n.Key()
		if i, ok := index[key]; ok {
			groups[i] = append(groups[i], raw)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, []string{raw})
	}
	return groups
}
