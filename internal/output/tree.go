package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file statuses are aligned.
	descriptionColumn = 56
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name     string
	Status   string
	IsDir    bool
	Children []*TreeNode
}

// RenderFileTree renders the given files under root. Files maps relative
// paths to their status (see StatusCreated).
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	tree := &TreeNode{Name: root, IsDir: true}

	for path, status := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := tree

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}

			if isLast {
				child.Status = status
			}
			current = child
		}
	}

	sortTree(tree)

	var sb strings.Builder
	renderNode(&sb, tree, "", true, true)
	return sb.String()
}

// sortTree sorts directories before files, then alphabetically.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		// Width is measured before styling so ANSI codes don't skew alignment.
		width := len([]rune(prefix + connector + name))
		line := prefix + connector
		if node.IsDir {
			line += name
		} else {
			line += StyleNoun.Render(name)
		}

		if node.Status != "" {
			padding := descriptionColumn - width
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StatusStyle(node.Status).Render(node.Status)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}
