/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package compat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Arg is one key=value plugin argument from the hook runner config.
type Arg struct {
	Key   string `parser:"@Ident"`
	Value string `parser:"'=' @(QuotedValue | BareValue | Ident)"`
}

var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "QuotedValue", Pattern: `'(?:[^']*)'|"(?:[^"]*)"`},
	{Name: "BareValue", Pattern: `[^=\s]+`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var argParser = participle.MustBuild[Arg](
	participle.Lexer(argLexer),
	participle.Elide("Whitespace"),
)

func ParseArg(raw string) (*Arg, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return nil, fmt.Errorf("empty plugin argument")
	}

	arg, err := argParser.ParseString("", token)
	if err != nil {
		return nil, fmt.Errorf("parse plugin argument %q: %w", raw, err)
	}

	if arg.Key == "" {
		return nil, fmt.Errorf("plugin argument %q missing key", raw)
	}
	arg.Value = stripQuotes(arg.Value)

	return arg, nil
}

// ParseBool interprets the value of an enable= plugin argument. Truthy
// values are any nonzero integer literal and the words y, yes, t, true;
// falsy values are any zero integer literal and n, no, f, false. Words are
// case insensitive; anything else is an error and must leave the current
// setting untouched at the caller.
func ParseBool(value string) (bool, error) {
	if value != "" && value[0] >= '0' && value[0] <= '9' {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return false, fmt.Errorf("invalid enable value: %s", value)
		}
		return v != 0, nil
	}

	switch strings.ToLower(value) {
	case "y", "yes", "t", "true":
		return true, nil
	case "n", "no", "f", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid enable value: %s", value)
}

func stripQuotes(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
		return raw[1 : len(raw)-1]
	}
	return raw
}
