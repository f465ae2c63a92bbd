package inventory

import "strings"

const (
	branchMarker = "+-"
	lastMarker   = `\-`

	branchIndent = "| "
	lastIndent   = "  "
)

// Renderer is implemented by every node below the network root. Render
// appends the node's own line and the lines of its descendants to sb.
// Each line is written with a leading newline, never a trailing one.
type Renderer interface {
	Render(sb *strings.Builder, prefix string, last bool)
}

// writeLine appends "\n<prefix><marker><text>".
func writeLine(sb *strings.Builder, prefix string, last bool, text string) {
	sb.WriteByte('\n')
	sb.WriteString(prefix)
	if last {
		sb.WriteString(lastMarker)
	} else {
		sb.WriteString(branchMarker)
	}
	sb.WriteString(text)
}

// childPrefix returns the prefix for the children of a node rendered with
// prefix. Children of a last node are indented with blanks instead of a pipe.
func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + lastIndent
	}
	return prefix + branchIndent
}

// renderChildren renders children in order, marking only the final one as last.
func renderChildren(sb *strings.Builder, prefix string, children []Renderer) {
	for i, child := range children {
		child.Render(sb, prefix, i == len(children)-1)
	}
}
