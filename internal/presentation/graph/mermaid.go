package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// GraphOverlay contains the state of one turn to visualize on the tree.
type GraphOverlay struct {
	Candidates []string // Targets of the ranked activations
	Current    string   // Dialog position
	Winner     string   // Target of the selected activation
}

type treeNode struct {
	path     domain.Path
	children map[string]*treeNode
}

// GenerateMermaid produces a Mermaid flowchart of the state tree implied by a set of target paths.
// Every ancestor of a target becomes a node, edges go from parent to child.
// Shapes:
// - Root: ((Circle))
// - Target declared by a rule: [Rectangle]
// - Intermediate state: ([Stadium])
// Overlay styles (candidate/current/winner) are applied if provided.
func GenerateMermaid(targets []string, overlay *GraphOverlay) string {
	declared := make(map[string]bool)
	root := &treeNode{path: domain.RootPath(), children: map[string]*treeNode{}}

	insert := func(raw string) {
		p := domain.ParsePath(raw)
		node := root
		for _, c := range p.Components() {
			child, ok := node.children[c]
			if !ok {
				child = &treeNode{path: node.path.Child(c), children: map[string]*treeNode{}}
				node.children[c] = child
			}
			node = child
		}
	}

	for _, t := range targets {
		p := domain.ParsePath(t)
		declared[p.String()] = true
		insert(t)
	}
	if overlay != nil && overlay.Current != "" {
		insert(overlay.Current)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	writeNode(&sb, root, declared)

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef candidate fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef winner fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, c := range overlay.Candidates {
			id := nodeID(domain.ParsePath(c))
			if !seen[id] {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s candidate;\n", id))
			}
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(domain.ParsePath(overlay.Current))))
		}
		if overlay.Winner != "" {
			sb.WriteString(fmt.Sprintf("    class %s winner;\n", nodeID(domain.ParsePath(overlay.Winner))))
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, n *treeNode, declared map[string]bool) {
	id := nodeID(n.path)
	label := n.path.Name()

	opener, closer := "([", "])"
	switch {
	case n.path.IsRoot():
		opener, closer, label = "((", "))", domain.PathSeparator
	case declared[n.path.String()]:
		opener, closer = "[", "]"
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeLabel(label), closer))

	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := n.children[name]
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, nodeID(child.path)))
		writeNode(sb, child, declared)
	}
}

func nodeID(p domain.Path) string {
	if p.IsRoot() {
		return "root"
	}
	return "s_" + sanitizeMermaidID(strings.Join(p.Components(), "/"))
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
