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

// Package textutil prepares text for scanning.
package textutil

import (
	"golang.org/x/text/width"
)

// FoldWidth maps fullwidth and halfwidth compatibility runes to their canonical
// width, so fullwidth digits, plus signs, parentheses and the ideographic space
// become their ASCII equivalents. Byte offsets into the result do not
// correspond to offsets into s.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// NeedsFolding reports whether FoldWidth would change s.
func NeedsFolding(s string) bool {
	return FoldWidth(s) != s
}
