package usecase

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vitrine/frontend/internal/domain"
)

// RootID is the ID of a synthesized root node
const RootID = "root"

const (
	umbrellaName = "todas as categorias"
	emptyName    = "sem categorias"
	failedName   = "erro ao carregar"
)

// TreeSource provides the raw category hierarchy
type TreeSource interface {
	Tree(ctx context.Context) ([]domain.APITreeNode, error)
}

// NodeID returns the display ID of an API category
func NodeID(apiID domain.CatalogID) string {
	return "cat-" + apiID.String()
}

// NormalizeTree turns the top-level API nodes into a single rooted tree.
// Several top-level nodes hang under a synthesized root whose product count
// is the sum of their counts; a single node becomes the root itself.
func NormalizeTree(nodes []domain.APITreeNode) *domain.CategoryTreeNode {
	switch len(nodes) {
	case 0:
		return sentinelRoot(emptyName, "SC")
	case 1:
		return convertNode(nodes[0], 0)
	}

	root := &domain.CategoryTreeNode{
		ID:       RootID,
		Name:     umbrellaName,
		Initials: "TC",
		Depth:    0,
		Children: make([]*domain.CategoryTreeNode, 0, len(nodes)),
	}
	for _, n := range nodes {
		child := convertNode(n, 1)
		root.ProductCount += child.ProductCount
		root.Children = append(root.Children, child)
	}
	return root
}

// FailedTree is the placeholder root shown when the tree cannot be fetched
func FailedTree() *domain.CategoryTreeNode {
	return sentinelRoot(failedName, "ER")
}

func sentinelRoot(name, initials string) *domain.CategoryTreeNode {
	return &domain.CategoryTreeNode{
		ID:       RootID,
		Name:     name,
		Initials: initials,
		Children: []*domain.CategoryTreeNode{},
	}
}

func convertNode(n domain.APITreeNode, depth int) *domain.CategoryTreeNode {
	apiChildren := n.ChildNodes()
	node := &domain.CategoryTreeNode{
		ID:           NodeID(n.ID),
		Name:         n.Name,
		Initials:     Initials(n.Name),
		ProductCount: n.ProductCount(),
		Depth:        depth,
		Children:     make([]*domain.CategoryTreeNode, 0, len(apiChildren)),
	}
	for _, c := range apiChildren {
		node.Children = append(node.Children, convertNode(c, depth+1))
	}
	return node
}

// FindNode returns the node with the given ID in the subtree of root, or nil
func FindNode(root *domain.CategoryTreeNode, id string) *domain.CategoryTreeNode {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, c := range root.Children {
		if found := FindNode(c, id); found != nil {
			return found
		}
	}
	return nil
}

// TreeVisualizer renders the category tree with its current expansion state
type TreeVisualizer struct {
	source   TreeSource
	root     *domain.CategoryTreeNode
	expanded ExpansionState
	layout   LayoutConfig
	hooks    []LayoutHook
}

// NewTreeVisualizer creates a visualizer starting from the given expansion state
func NewTreeVisualizer(source TreeSource, expanded ExpansionState, layout LayoutConfig) *TreeVisualizer {
	return &TreeVisualizer{
		source:   source,
		expanded: NewExpansionState(expanded.IDs()...),
		layout:   layout.withDefaults(),
		hooks:    []LayoutHook{DrawConnectors},
	}
}

// OnLayoutComplete registers a hook that runs after every layout pass
func (v *TreeVisualizer) OnLayoutComplete(hook LayoutHook) {
	v.hooks = append(v.hooks, hook)
}

// Load fetches and normalizes the tree. It never fails: an empty or
// unreachable catalog yields a sentinel root.
func (v *TreeVisualizer) Load(ctx context.Context) *domain.CategoryTreeNode {
	nodes, err := v.source.Tree(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load category tree")
		v.root = FailedTree()
		return v.root
	}
	if len(nodes) == 0 {
		log.Warn("Catalog returned an empty category tree")
	}
	v.root = NormalizeTree(nodes)
	return v.root
}

// Root returns the loaded root, nil before Load
func (v *TreeVisualizer) Root() *domain.CategoryTreeNode {
	return v.root
}

// Expanded returns a copy of the current expansion state
func (v *TreeVisualizer) Expanded() ExpansionState {
	return NewExpansionState(v.expanded.IDs()...)
}

// Toggle flips the expansion of nodeID and re-renders.
// Card links carry the already toggled state, so only ?toggle= requests come through here.
func (v *TreeVisualizer) Toggle(nodeID string) *TreeView {
	v.expanded.Toggle(nodeID)
	return v.Render()
}

// Render rebuilds the whole view from the root and the expansion state
func (v *TreeVisualizer) Render() *TreeView {
	if v.root == nil {
		return &TreeView{}
	}

	view := &TreeView{}
	v.layoutTree(view)
	for _, hook := range v.hooks {
		hook(view)
	}
	return view
}

// isExpanded reports whether node shows its children as a subtree
func (v *TreeVisualizer) isExpanded(node *domain.CategoryTreeNode) bool {
	return node.HasChildren() && v.expanded.Has(node.ID)
}
