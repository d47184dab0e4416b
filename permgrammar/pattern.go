// Copyright (C) 2025 aegiscache
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package permgrammar

import (
	"regexp"
	"strings"

	"github.com/aegiscache/aegiscache/pkg/errors"
)

// FilterToContext implements Grammar. It is the host-side counterpart of
// the substrate's own string.match: used wherever a caller needs to
// narrow a token list without round-tripping through a script.
func (g *SemicolonGrammar) FilterToContext(filter string, tokens []string) ([]string, error) {
	re, err := CompileLuaPattern(filter)
	if err != nil {
		return nil, errors.ErrPatternError.WithMessage(err.Error()).WithDetail("filter", filter)
	}

	matched := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if re.MatchString(token) {
			matched = append(matched, token)
		}
	}
	return matched, nil
}

// luaClassToRegexp translates the Lua pattern character classes this
// grammar is expected to emit or receive into their regexp equivalents.
// It is not a complete Lua pattern engine: balanced-match (%b) and
// frontier (%f) items are not supported, since the grammar never
// produces them.
var luaClassToRegexp = map[byte]string{
	'a': `[A-Za-z]`,
	'A': `[^A-Za-z]`,
	'd': `[0-9]`,
	'D': `[^0-9]`,
	'l': `[a-z]`,
	'L': `[^a-z]`,
	'u': `[A-Z]`,
	'U': `[^A-Z]`,
	's': `[ \t\n\r\f\v]`,
	'S': `[^ \t\n\r\f\v]`,
	'w': `[A-Za-z0-9]`,
	'W': `[^A-Za-z0-9]`,
	'p': `[[:punct:]]`,
	'P': `[^[:punct:]]`,
	'x': `[0-9A-Fa-f]`,
	'X': `[^0-9A-Fa-f]`,
	'c': `[[:cntrl:]]`,
	'C': `[^[:cntrl:]]`,
}

// CompileLuaPattern translates a Lua string-match pattern into an
// equivalent Go regexp and compiles it. Lua's "-" (shortest match) has
// no single-character regexp equivalent, so it is translated to the
// reluctant quantifier "*?" on whatever precedes it, which is the
// closest available semantics for the token-matching patterns this
// grammar emits. Exported so substrate.MemorySubstrate can match the
// same patterns Redis's Lua string.match would, without re-implementing
// the translation.
func CompileLuaPattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '%':
			if i+1 >= len(pattern) {
				return nil, errors.ErrPatternError.WithMessage("trailing %% in pattern")
			}
			next := pattern[i+1]
			if cls, ok := luaClassToRegexp[next]; ok {
				b.WriteString(cls)
			} else {
				// %<punct> escapes a literal magic character.
				b.WriteString(regexp.QuoteMeta(string(next)))
			}
			i++
		case '-':
			b.WriteString(`*?`)
		case '.', '*', '+', '?', '^', '$', '(', ')', '[', ']':
			b.WriteByte(c)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return regexp.Compile(b.String())
}
