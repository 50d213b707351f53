package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// tables holds parsed content: table name -> key -> scalar value.
// Top-level keys live under the "" table.
type tables map[string]map[string]any

// parse reads the input line by line. Each non-blank line is either a
// [table] header or a key = value pair; values are scalars only.
func parse(data []byte) (tables, error) {
	out := tables{"": {}}
	table := ""

	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, err := parseHeader(line, n+1)
			if err != nil {
				return nil, err
			}
			table = name
			if _, ok := out[table]; !ok {
				out[table] = map[string]any{}
			}
			continue
		}

		key, val, err := parsePair(line, n+1)
		if err != nil {
			return nil, err
		}
		if _, dup := out[table][key]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", n+1, key)
		}
		out[table][key] = val
	}
	return out, nil
}

// stripComment removes a trailing # comment, honoring quoted strings
func stripComment(line string) string {
	inString := false
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == '#' && !inString:
			return line[:i]
		}
	}
	return line
}

func parseHeader(line string, n int) (string, error) {
	if strings.HasPrefix(line, "[[") {
		return "", fmt.Errorf("line %d: arrays of tables are not supported", n)
	}
	if !strings.HasSuffix(line, "]") {
		return "", fmt.Errorf("line %d: unterminated table header", n)
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" || !validKey(name) {
		return "", fmt.Errorf("line %d: invalid table name %q", n, name)
	}
	return name, nil
}

func parsePair(line string, n int) (string, any, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", nil, fmt.Errorf("line %d: expected key = value", n)
	}
	key := strings.TrimSpace(line[:eq])
	if key == "" || !validKey(key) {
		return "", nil, fmt.Errorf("line %d: invalid key %q", n, key)
	}
	val, err := parseScalar(strings.TrimSpace(line[eq+1:]), n)
	if err != nil {
		return "", nil, err
	}
	return key, val, nil
}

// validKey accepts bare keys only: A-Za-z0-9_-
func validKey(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

func parseScalar(s string, n int) (any, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("line %d: missing value", n)
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case s[0] == '"':
		return parseString(s, n)
	case s[0] == '[' || s[0] == '{':
		return nil, fmt.Errorf("line %d: only scalar values are supported", n)
	}

	if strings.ContainsAny(s, ".eE") && !strings.HasPrefix(s, "0x") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %q", n, s)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid value %q", n, s)
	}
	return i, nil
}

func parseString(s string, n int) (string, error) {
	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("line %d: unterminated string", n)
	}
	body := s[1 : len(s)-1]
	if !strings.Contains(body, "\\") {
		if strings.Contains(body, `"`) {
			return "", fmt.Errorf("line %d: invalid string %q", n, s)
		}
		return body, nil
	}

	var b strings.Builder
	escaped := false
	for _, r := range body {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			if r == '"' {
				return "", fmt.Errorf("line %d: invalid string %q", n, s)
			}
			b.WriteRune(r)
			continue
		}
		escaped = false
		switch r {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case '"', '\\':
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("line %d: unsupported escape \\%c", n, r)
		}
	}
	if escaped {
		return "", fmt.Errorf("line %d: dangling escape in %q", n, s)
	}
	return b.String(), nil
}
