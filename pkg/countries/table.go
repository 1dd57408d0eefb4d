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

package countries

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// MaxCallingCodeDigits is the longest calling code in the numbering plan.
const MaxCallingCodeDigits = 3

// Table is an immutable, indexed set of country records.
type Table struct {
	records       []*Country
	byCode        map[string]*Country
	byCallingCode map[string][]*Country
	primary       map[string]*Country
	minLength     int
	minE164Length int
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the compiled-in table. It is built once and shared.
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = MustNewTable(records)
	})
	return defaultTable
}

// MustNewTable is like NewTable, but panics on error.
func MustNewTable(in []Country) *Table {
	t, err := NewTable(in)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates and indexes the given records. The input slice is copied;
// later modifications to it do not affect the table.
func NewTable(in []Country) (*Table, error) {
	var merr *multierror.Error

	t := &Table{
		records:       make([]*Country, 0, len(in)),
		byCode:        make(map[string]*Country, len(in)),
		byCallingCode: make(map[string][]*Country),
		primary:       make(map[string]*Country),
	}

	for i := range in {
		c := in[i]
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		c.Lengths = append([]int(nil), c.Lengths...)
		c.Patterns = append([]Pattern(nil), c.Patterns...)

		if c.Code == "" {
			merr = multierror.Append(merr, fmt.Errorf("record %d: missing code", i))
			continue
		}
		if _, ok := t.byCode[c.Code]; ok {
			merr = multierror.Append(merr, fmt.Errorf("%s: duplicate code", c.Code))
			continue
		}
		if c.CallingCode < 1 || c.CallingCode > 999 {
			merr = multierror.Append(merr, fmt.Errorf("%s: calling code %d out of range", c.Code, c.CallingCode))
			continue
		}
		if len(c.Lengths) == 0 {
			merr = multierror.Append(merr, fmt.Errorf("%s: no valid lengths", c.Code))
			continue
		}
		for _, l := range c.Lengths {
			if l < 1 {
				merr = multierror.Append(merr, fmt.Errorf("%s: invalid length %d", c.Code, l))
			}
		}
		for _, r := range c.TrunkPrefix {
			if r < '0' || r > '9' {
				merr = multierror.Append(merr, fmt.Errorf("%s: trunk prefix %q is not numeric", c.Code, c.TrunkPrefix))
				break
			}
		}
		sort.Ints(c.Lengths)

		c.callingCode = strconv.Itoa(int(c.CallingCode))
		rec := &c
		t.records = append(t.records, rec)
		t.byCode[c.Code] = rec

		cc := c.callingCode
		t.byCallingCode[cc] = append(t.byCallingCode[cc], rec)
		if c.Default {
			if existing, ok := t.primary[cc]; ok {
				merr = multierror.Append(merr, fmt.Errorf("%s: calling code +%s already has default %s", c.Code, cc, existing.Code))
				continue
			}
			t.primary[cc] = rec
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid country table: %w", err)
	}

	for cc, group := range t.byCallingCode {
		if _, ok := t.primary[cc]; !ok {
			t.primary[cc] = group[0]
		}
	}

	for i, c := range t.records {
		min := c.MinLength()
		if i == 0 || min < t.minLength {
			t.minLength = min
		}
		if e := min + len(c.callingCode); i == 0 || e < t.minE164Length {
			t.minE164Length = e
		}
	}

	return t, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// All returns the records in declaration order. The returned slice is a copy;
// the records it points to are shared and must not be modified.
func (t *Table) All() []*Country {
	return append([]*Country(nil), t.records...)
}

// Lookup returns the record for the ISO code (case-insensitive).
func (t *Table) Lookup(code string) (*Country, bool) {
	c, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ByCallingCode returns every record sharing the given calling code, in
// declaration order.
func (t *Table) ByCallingCode(cc string) []*Country {
	return t.byCallingCode[cc]
}

// Primary returns the designated default record for a calling code.
func (t *Table) Primary(cc string) (*Country, bool) {
	c, ok := t.primary[cc]
	return c, ok
}

// MinLength is the shortest national significant number length of any record.
func (t *Table) MinLength() int {
	return t.minLength
}

// MinE164Length is the shortest calling code plus national number length of
// any record.
func (t *Table) MinE164Length() int {
	return t.minE164Length
}

// CallingCodes returns the distinct calling codes, sorted numerically.
func (t *Table) CallingCodes() []string {
	out := make([]string, 0, len(t.byCallingCode))
	for cc := range t.byCallingCode {
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
