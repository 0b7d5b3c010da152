package skill

import "strings"

const defaultIconPrefix = "fas"

// IconRef is a parsed icon class string: a style prefix and a glyph name.
type IconRef struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
}

// ParseIconClass maps a whitespace-delimited icon class string to an IconRef.
// Accepted shapes: "fa-brands fa-react", "fab fa-react", "fa-solid fa-code",
// "fas fa-code". The prefix defaults to "fas" when absent. When no glyph part
// is found the Name is empty and callers are expected to render nothing.
func ParseIconClass(class string) IconRef {
	ref := IconRef{Prefix: defaultIconPrefix}
	for _, part := range strings.Fields(class) {
		switch part {
		case "fa-brands", "fab":
			ref.Prefix = "fab"
		case "fa-solid", "fas":
			ref.Prefix = "fas"
		default:
			if name, ok := strings.CutPrefix(part, "fa-"); ok {
				ref.Name = name
			}
		}
	}
	return ref
}
