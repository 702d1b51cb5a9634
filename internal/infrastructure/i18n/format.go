package i18n

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("i18n: invalid message template")

// FormatError reports a placeholder substitution failure: an unknown
// placeholder name or malformed template syntax.
type FormatError struct {
	Template    string
	Placeholder string
	Reason      string
}

func (e *FormatError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("i18n: format %q: %s {%s}", e.Template, e.Reason, e.Placeholder)
	}
	return fmt.Sprintf("i18n: format %q: %s", e.Template, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Format replaces every {name} placeholder of template with the string form
// of args[name]. "{{" and "}}" render as literal braces.
//
// Without args the template is returned verbatim, braces included.
func Format(template string, args map[string]any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Template: template, Reason: "unclosed '{'"}
			}
			name := template[i+1 : i+1+end]
			if !isPlaceholderName(name) {
				return "", &FormatError{Template: template, Placeholder: name, Reason: "malformed placeholder"}
			}
			v, ok := args[name]
			if !ok {
				return "", &FormatError{Template: template, Placeholder: name, Reason: "no argument for"}
			}
			b.WriteString(fmt.Sprint(v))
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &FormatError{Template: template, Reason: "single '}'"}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func isPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
