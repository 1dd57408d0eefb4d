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

package textutil

import (
	"testing"
)

func TestFoldWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
		fold bool
	}{
		{name: "ascii", in: "+1 (202) 555-0173", want: "+1 (202) 555-0173", fold: false},
		{name: "fullwidth_digits", in: "０３－１２３４－５６７８", want: "03-1234-5678", fold: true},
		{name: "fullwidth_plus_parens", in: "＋８１（３）１２３４", want: "+81(3)1234", fold: true},
		{name: "ideographic_space", in: "電話　０３", want: "電話 03", fold: true},
		{name: "empty", in: "", want: "", fold: false},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := FoldWidth(tc.in); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if got := NeedsFolding(tc.in); got != tc.fold {
				t.Errorf("expected NeedsFolding %t, got %t", tc.fold, got)
			}
		})
	}
}
