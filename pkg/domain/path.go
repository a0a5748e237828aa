package domain

import "strings"

// PathSeparator delimits the components of a state path.
const PathSeparator = "/"

const (
	currentToken = "."
	parentToken  = ".."
)

// Path is a position in the hierarchical namespace of conversation states.
// The zero value is the root path.
type Path struct {
	components []string
}

// RootPath returns the empty path ("/").
func RootPath() Path {
	return Path{}
}

// ParsePath splits raw on the separator and drops empty components,
// so "//a//b/" and "/a/b" denote the same path.
func ParsePath(raw string) Path {
	parts := strings.Split(raw, PathSeparator)
	components := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			components = append(components, p)
		}
	}
	return Path{components: components}
}

// Components returns a copy of the path components.
func (p Path) Components() []string {
	out := make([]string, len(p.components))
	copy(out, p.components)
	return out
}

// Len returns the depth of the path.
func (p Path) Len() int {
	return len(p.components)
}

// IsRoot reports whether the path has no components.
func (p Path) IsRoot() bool {
	return len(p.components) == 0
}

// Name returns the last component, or "" for the root.
func (p Path) Name() string {
	if p.IsRoot() {
		return ""
	}
	return p.components[len(p.components)-1]
}

// String renders the absolute form of the path ("/" for the root).
func (p Path) String() string {
	return PathSeparator + strings.Join(p.components, PathSeparator)
}

// Parent returns the path one level up. The parent of the root is the root.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return p
	}
	return Path{components: p.components[:len(p.components)-1]}
}

// Child returns a new path with name appended.
func (p Path) Child(name string) Path {
	next := make([]string, len(p.components), len(p.components)+1)
	copy(next, p.components)
	return Path{components: append(next, name)}
}

// Resolve applies a relative spec to p, token by token from left to right:
// "." stays, ".." ascends (never above the root) and any other token descends.
// A spec starting with the separator is absolute and resolves from the root.
func (p Path) Resolve(spec string) Path {
	if spec == currentToken {
		return p
	}

	base := p
	if strings.HasPrefix(spec, PathSeparator) {
		base = RootPath()
	}

	out := make([]string, len(base.components), len(base.components)+4)
	copy(out, base.components)
	for _, token := range strings.Split(spec, PathSeparator) {
		switch token {
		case "", currentToken:
		case parentToken:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, token)
		}
	}
	return Path{components: out}
}

// CommonPrefixLen counts the leading components shared by p and other,
// stopping at the first mismatch or at the end of the shorter path.
func (p Path) CommonPrefixLen(other Path) int {
	i := 0
	for i < len(p.components) && i < len(other.components) {
		if p.components[i] != other.components[i] {
			break
		}
		i++
	}
	return i
}

// HasPrefix reports whether prefix is an ancestor of (or equal to) p.
func (p Path) HasPrefix(prefix Path) bool {
	return prefix.Len() <= p.Len() && p.CommonPrefixLen(prefix) == prefix.Len()
}

// Equal reports whether both paths have the same components in the same order.
func (p Path) Equal(other Path) bool {
	return p.Len() == other.Len() && p.CommonPrefixLen(other) == p.Len()
}
