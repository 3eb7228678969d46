package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anirudhraja/protoserial/schema"
)

// directivePrefix marks a comment line that sets a generation option
// instead of documenting the message, e.g. "//: type = struct".
const directivePrefix = ":"

// parseDirectives reads message options out of leading comment lines. Lines
// may still carry their "//" or "/* */" markers. The returned comment text
// has the directive lines removed.
func parseDirectives(lines []string) (schema.MessageOptions, string, error) {
	opts := schema.DefaultMessageOptions()
	var doc []string

	for _, line := range lines {
		text := strings.TrimSpace(line)
		text = strings.TrimPrefix(text, "//")
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		text = strings.TrimSpace(text)
		text = strings.TrimPrefix(text, "*")
		text = strings.TrimSpace(text)

		if !strings.HasPrefix(text, directivePrefix) {
			if text != "" {
				doc = append(doc, text)
			}
			continue
		}

		key, value, hasValue := strings.Cut(strings.TrimPrefix(text, directivePrefix), "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "type":
			switch kind := schema.OutputKind(strings.ToLower(value)); kind {
			case schema.KindClass, schema.KindStruct, schema.KindInterface:
				opts.Type = kind
			default:
				return opts, "", fmt.Errorf("invalid type directive %q: want class, struct or interface", value)
			}
		case "access":
			switch access := schema.Access(strings.ToLower(value)); access {
			case schema.AccessPublic, schema.AccessInternal, schema.AccessProtected, schema.AccessPrivate:
				opts.Access = access
			default:
				return opts, "", fmt.Errorf("invalid access directive %q", value)
			}
		case "external", "triggers", "preserveunknown":
			enabled := true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return opts, "", fmt.Errorf("invalid %s directive %q: %w", key, value, err)
				}
				enabled = b
			}
			switch key {
			case "external":
				opts.External = enabled
			case "triggers":
				opts.Triggers = enabled
			default:
				opts.PreserveUnknown = enabled
			}
		default:
			return opts, "", fmt.Errorf("unknown directive %q", key)
		}
	}

	return opts, strings.Join(doc, "\n"), nil
}

// commentLines splits a comment block into lines.
func commentLines(raw string) []string {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
