package formatter

import (
	"strings"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one node of a status tree. Badge is rendered right-aligned
// after the label.
type TreeItem struct {
	Label    string
	Status   domain.Status
	Badge    string
	Children []TreeItem
}

// RenderTree renders nested items with box-drawing connectors.
func RenderTree(items []TreeItem) string {
	labelWidth := widestLabel(items, 0)

	var b strings.Builder
	for i, item := range items {
		renderNode(&b, item, "", i == len(items)-1, 0, labelWidth)
	}
	return b.String()
}

func renderNode(b *strings.Builder, item TreeItem, prefix string, last bool, depth, labelWidth int) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}

	label := StatusDot(item.Status) + " " + item.Label
	line := StyleDim.Render(prefix+connector) + label
	if item.Badge != "" {
		used := depth*3 + lipgloss.Width(item.Label)
		pad := max(labelWidth-used, 0) + colGap
		line += strings.Repeat(" ", pad) + item.Badge
	}
	b.WriteString(line)
	b.WriteString("\n")

	for i, child := range item.Children {
		renderNode(b, child, childPrefix, i == len(item.Children)-1, depth+1, labelWidth)
	}
}

func widestLabel(items []TreeItem, depth int) int {
	w := 0
	for _, item := range items {
		w = max(w, depth*3+lipgloss.Width(item.Label))
		w = max(w, widestLabel(item.Children, depth+1))
	}
	return w
}
