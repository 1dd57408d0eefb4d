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

// Package phonenumber parses, resolves, and classifies phone numbers against a
// countries.Table.
//
// The engine performs no I/O and holds no mutable state; a single Engine may be
// shared by any number of goroutines.
package phonenumber

import (
	"fmt"
	"sync"

	"github.com/google/exposure-notifications-phonenumbers/pkg/countries"
)

// Engine parses phone numbers against a country table.
type Engine struct {
	table *countries.Table
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns an engine backed by countries.Default.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New(countries.Default())
	})
	return defaultEngine
}

// New creates an engine backed by the given table. If table is nil, the
// compiled-in table is used.
func New(table *countries.Table) *Engine {
	if table == nil {
		table = countries.Default()
	}
	return &Engine{table: table}
}

// Table returns the engine's country table.
func (e *Engine) Table() *countries.Table {
	return e.table
}

// Parse parses raw using the default engine. See Engine.Parse.
func Parse(raw, hint string) (*PhoneNumber, error) {
	return Default().Parse(raw, hint)
}

// IsValid reports whether raw parses and resolves to a country using the
// default engine.
func IsValid(raw, hint string) bool {
	return Default().IsValid(raw, hint)
}

// Parse normalizes raw, resolves its country, and classifies it. The hint is
// an optional country code used for numbers without an international prefix
// and to break ties between countries that share a calling code.
//
// An error is returned only if raw cannot be normalized or the hint is not a
// known country. A number that does not match any country is returned with
// Status Unresolved; callers that need a country should check Valid.
func (e *Engine) Parse(raw, hint string) (*PhoneNumber, error) {
	var h *countries.Country
	if hint != "" {
		c, ok := e.table.Lookup(hint)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, hint)
		}
		h = c
	}

	norm, err := normalize(raw, h)
	if err != nil {
		return nil, err
	}
	if len(norm.Digits) < e.table.MinLength() {
		return nil, newError(ErrTooShort, raw, -1)
	}

	res := e.resolve(norm.Digits, norm.International, h)
	return newPhoneNumber(raw, hint, norm, res), nil
}

// IsValid reports whether raw parses and resolves to a country.
func (e *Engine) IsValid(raw, hint string) bool {
	n, err := e.Parse(raw, hint)
	return err == nil && n.Valid()
}

// Country returns the country of raw. It returns ErrUnresolved if no country
// matches. Ambiguous numbers return the calling code's default country and no
// error.
func (e *Engine) Country(raw, hint string) (*countries.Country, error) {
	n, err := e.Parse(raw, hint)
	if err != nil {
		return nil, err
	}
	if !n.Valid() {
		return nil, fmt.Errorf("%q: %w", raw, ErrUnresolved)
	}
	return n.Country(), nil
}

// Type returns the subscriber type of raw. It returns ErrUnresolved if no
// country matches.
func (e *Engine) Type(raw, hint string) (countries.SubscriberType, error) {
	n, err := e.Parse(raw, hint)
	if err != nil {
		return countries.Unknown, err
	}
	if !n.Valid() {
		return countries.Unknown, fmt.Errorf("%q: %w", raw, ErrUnresolved)
	}
	return n.Type(), nil
}
