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
	"strings"

	"github.com/aegiscache/aegiscache/pkg/errors"
)

// everyTypePattern matches any permission token, regardless of type.
const everyTypePattern = ".*"

// SemicolonGrammar derives a token's type from the even-indexed segments
// of a ';'-delimited token: "domain;X;course;7;user;42" has type
// "domain;course;user". Tokens must therefore carry an even number of
// segments (type, value) pairs.
type SemicolonGrammar struct {
	delimiter string
}

// NewSemicolonGrammar returns a SemicolonGrammar using delimiter to split
// tokens into segments. An empty delimiter defaults to ";".
func NewSemicolonGrammar(delimiter string) *SemicolonGrammar {
	if delimiter == "" {
		delimiter = ";"
	}
	return &SemicolonGrammar{delimiter: delimiter}
}

// TypeOf implements Grammar.
func (g *SemicolonGrammar) TypeOf(token string) (string, error) {
	if token == "" {
		return "", errors.ErrInvalidInput.WithMessage("permission token is empty")
	}

	segments := strings.Split(token, g.delimiter)
	if len(segments)%2 != 0 {
		return "", errors.ErrPatternError.
			WithMessage("permission token has an odd segment count").
			WithDetail("token", token)
	}

	types := make([]string, 0, len(segments)/2)
	for i := 0; i < len(segments); i += 2 {
		types = append(types, segments[i])
	}
	return strings.Join(types, g.delimiter), nil
}

// ContextFilterFor implements Grammar. It builds a pattern matching any
// token whose leading segments equal kind followed by args, in order,
// with a trailing wildcard for whatever segments follow.
func (g *SemicolonGrammar) ContextFilterFor(kind string, args ...string) (string, error) {
	if kind == "" {
		return "", errors.ErrInvalidInput.WithMessage("context filter kind is empty")
	}

	segments := append([]string{kind}, args...)

	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = escapeLuaLiteral(seg)
	}

	return strings.Join(escaped, g.delimiter) + g.delimiter + everyTypePattern, nil
}

// EveryTypePattern implements Grammar.
func (g *SemicolonGrammar) EveryTypePattern() string {
	return everyTypePattern
}

// escapeLuaLiteral escapes Lua pattern magic characters so a literal
// segment value is matched verbatim rather than interpreted as a
// pattern class or quantifier.
func escapeLuaLiteral(s string) string {
	const magic = "^$()%.[]*+-?"
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(magic, r) {
			b.WriteByte('%')
		}
		b.WriteRune(r)
	}
	return b.String()
}
