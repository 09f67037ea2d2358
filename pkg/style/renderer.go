package style

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/treeforge/treeforge/pkg/types"
)

// RenderResult renders the outcome of a create run: a tree of everything
// that was written plus skip counts.
func RenderResult(res *types.CreateResult) string {
	var b strings.Builder

	if res.DryRun {
		b.WriteString(Title.Render("Dry run, nothing was created") + "\n\n")
		b.WriteString(RenderPlan(res.Plan, res.Root))
		return strings.TrimRight(b.String(), "\n")
	}

	if len(res.DirsCreated) == 0 && len(res.FilesCreated) == 0 {
		b.WriteString(Muted.Render("Nothing to create, target tree is already complete"))
		return b.String()
	}

	b.WriteString(Title.Render(fmt.Sprintf("Created under %s", res.Root)) + "\n\n")
	b.WriteString(renderPathTree(res.Root, res.DirsCreated, res.FilesCreated))

	summary := fmt.Sprintf("%d directories and %d files created",
		len(res.DirsCreated), len(res.FilesCreated))
	if skips := res.DirsSkipped + res.FilesSkipped; skips > 0 {
		summary += Muted.Render(fmt.Sprintf(" (%d skipped)", skips))
	}
	b.WriteString("\n" + Success.Render(summary))
	return b.String()
}

// RenderPlan renders a resolved directory map as a tree rooted at root,
// directories first with their file entries as leaves.
func RenderPlan(dm *types.DirMap, root string) string {
	node := &treeNode{name: root}
	for _, key := range dm.Keys() {
		dir := node.ensure(splitPath(key))
		files, _ := dm.Get(key)
		for _, f := range files {
			dir.children = append(dir.children, &treeNode{name: f, isFile: true})
		}
	}
	return renderTree(node)
}

// renderPathTree builds a tree from already-created absolute paths,
// trimming the root prefix.
func renderPathTree(root string, dirs, files []string) string {
	node := &treeNode{name: root}
	for _, d := range dirs {
		node.ensure(splitPath(relativeTo(root, d)))
	}
	for _, f := range files {
		segs := splitPath(relativeTo(root, f))
		if len(segs) == 0 {
			continue
		}
		dir := node.ensure(segs[:len(segs)-1])
		dir.children = append(dir.children, &treeNode{name: segs[len(segs)-1], isFile: true})
	}
	return renderTree(node)
}

type treeNode struct {
	name     string
	isFile   bool
	children []*treeNode
}

// ensure walks (creating as needed) the directory chain named by segs and
// returns the final node.
func (n *treeNode) ensure(segs []string) *treeNode {
	cur := n
	for _, seg := range segs {
		var next *treeNode
		for _, c := range cur.children {
			if !c.isFile && c.name == seg {
				next = c
				break
			}
		}
		if next == nil {
			next = &treeNode{name: seg}
			cur.children = append(cur.children, next)
		}
		cur = next
	}
	return cur
}

func (n *treeNode) toPterm() pterm.TreeNode {
	out := pterm.TreeNode{Text: n.name}
	if !n.isFile {
		out.Text = Title.Render(n.name)
	}
	// Directories before files, both in insertion order.
	sort.SliceStable(n.children, func(i, j int) bool {
		return !n.children[i].isFile && n.children[j].isFile
	})
	for _, c := range n.children {
		out.Children = append(out.Children, c.toPterm())
	}
	return out
}

func renderTree(root *treeNode) string {
	rendered, err := pterm.DefaultTree.WithRoot(root.toPterm()).Srender()
	if err != nil {
		// Fall back to a flat listing if the terminal renderer balks.
		var b strings.Builder
		for _, c := range root.children {
			fmt.Fprintf(&b, "  %s\n", c.name)
		}
		return b.String()
	}
	return rendered
}

func splitPath(p string) []string {
	p = strings.Trim(p, string(os.PathSeparator))
	if p == "" {
		return nil
	}
	return strings.Split(p, string(os.PathSeparator))
}

func relativeTo(root, path string) string {
	return strings.TrimPrefix(strings.TrimPrefix(path, root), string(os.PathSeparator))
}
