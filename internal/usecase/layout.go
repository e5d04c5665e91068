package usecase

import (
	"fmt"

	"github.com/vitrine/frontend/internal/domain"
)

// Palette holds the card colors, picked by depth modulo its length
var Palette = []string{"#9F4444", "#8B6B61", "#C89B9B", "#7B9ACF"}

// MaxStackedCards is the number of children previewed behind a collapsed card
const MaxStackedCards = 3

// LayoutConfig sets card dimensions and spacing in pixels
type LayoutConfig struct {
	CardWidth     float64
	CardHeight    float64
	HorizontalGap float64
	VerticalGap   float64
	Padding       float64
}

// DefaultLayoutConfig returns the standard card geometry
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		CardWidth:     180,
		CardHeight:    110,
		HorizontalGap: 24,
		VerticalGap:   60,
		Padding:       24,
	}
}

// withDefaults fills unset (non-positive) fields from DefaultLayoutConfig
func (c LayoutConfig) withDefaults() LayoutConfig {
	d := DefaultLayoutConfig()
	if c.CardWidth <= 0 {
		c.CardWidth = d.CardWidth
	}
	if c.CardHeight <= 0 {
		c.CardHeight = d.CardHeight
	}
	if c.HorizontalGap <= 0 {
		c.HorizontalGap = d.HorizontalGap
	}
	if c.VerticalGap <= 0 {
		c.VerticalGap = d.VerticalGap
	}
	if c.Padding <= 0 {
		c.Padding = d.Padding
	}
	return c
}

// Box is a laid-out rectangle; X and Y are the top-left corner
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BottomCenter is where connectors to children start
func (b Box) BottomCenter() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height
}

// TopCenter is where the connector from the parent ends
func (b Box) TopCenter() (float64, float64) {
	return b.X + b.Width/2, b.Y
}

// Card is one rendered category card
type Card struct {
	NodeID       string
	Label        string
	Name         string
	Initials     string
	ProductCount int
	Color        string
	Leaf         bool
	StackIndex   int
	Transform    string
	ZIndex       int
}

// NodeView is a visible node with its main card and stacked previews
type NodeView struct {
	Node        *domain.CategoryTreeNode
	ParentID    string
	Box         Box
	Main        Card
	Stacked     []Card
	Expanded    bool
	Toggleable  bool
	ToggleQuery string
}

// Connector is a straight line from a parent card to a child card
type Connector struct {
	ParentID string
	ChildID  string
	X1       float64
	Y1       float64
	X2       float64
	Y2       float64
}

// TreeView is the laid-out tree, nodes in pre-order
type TreeView struct {
	Nodes      []NodeView
	Connectors []Connector
	Width      float64
	Height     float64
}

// Node returns the view of the node with the given ID
func (t *TreeView) Node(id string) (NodeView, bool) {
	for _, n := range t.Nodes {
		if n.Node.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}

// LayoutHook runs once the layout pass is complete and every box is final
type LayoutHook func(view *TreeView)

// DrawConnectors links every visible child to its parent, bottom-center to top-center
func DrawConnectors(view *TreeView) {
	boxes := make(map[string]Box, len(view.Nodes))
	for _, n := range view.Nodes {
		boxes[n.Node.ID] = n.Box
	}

	view.Connectors = view.Connectors[:0]
	for _, n := range view.Nodes {
		if n.ParentID == "" {
			continue
		}
		parent, ok := boxes[n.ParentID]
		if !ok {
			continue
		}
		x1, y1 := parent.BottomCenter()
		x2, y2 := n.Box.TopCenter()
		view.Connectors = append(view.Connectors, Connector{
			ParentID: n.ParentID,
			ChildID:  n.Node.ID,
			X1:       x1,
			Y1:       y1,
			X2:       x2,
			Y2:       y2,
		})
	}
}

// DepthColor returns the palette color for a depth
func DepthColor(depth int) string {
	if depth < 0 {
		depth = -depth
	}
	return Palette[depth%len(Palette)]
}

// StackTransform returns the CSS transform for stack position s
func StackTransform(s int) string {
	offset := 4 * s
	return fmt.Sprintf("translateY(-%dpx) translateX(%dpx) rotate(%ddeg)", offset, offset, 2*s-4)
}

// newCard builds the card of node at stack position s, 0 being the main card
func newCard(node *domain.CategoryTreeNode, s int) Card {
	return Card{
		NodeID:       node.ID,
		Label:        fmt.Sprintf("altura %d", node.Depth),
		Name:         node.Name,
		Initials:     node.Initials,
		ProductCount: node.ProductCount,
		Color:        DepthColor(node.Depth),
		Leaf:         !node.HasChildren(),
		StackIndex:   s,
		Transform:    StackTransform(s),
		ZIndex:       10 - s,
	}
}

// stackedCards previews up to MaxStackedCards children behind a collapsed card
func stackedCards(node *domain.CategoryTreeNode) []Card {
	n := len(node.Children)
	if n > MaxStackedCards {
		n = MaxStackedCards
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, newCard(node.Children[i], i+1))
	}
	return cards
}

// layoutTree places every visible node. Subtree widths are computed first,
// then each parent is centered over the span of its children.
func (v *TreeVisualizer) layoutTree(view *TreeView) {
	widths := make(map[*domain.CategoryTreeNode]float64)
	v.subtreeWidth(v.root, widths)

	rows := 0
	v.place(view, v.root, "", v.layout.Padding, 0, widths, &rows)

	cfg := v.layout
	view.Width = widths[v.root] + 2*cfg.Padding
	view.Height = 2*cfg.Padding + float64(rows)*cfg.CardHeight + float64(rows-1)*cfg.VerticalGap
}

func (v *TreeVisualizer) subtreeWidth(node *domain.CategoryTreeNode, widths map[*domain.CategoryTreeNode]float64) float64 {
	width := v.layout.CardWidth
	if v.isExpanded(node) {
		children := v.childrenWidth(node, widths)
		if children > width {
			width = children
		}
	}
	widths[node] = width
	return width
}

func (v *TreeVisualizer) childrenWidth(node *domain.CategoryTreeNode, widths map[*domain.CategoryTreeNode]float64) float64 {
	total := 0.0
	for i, c := range node.Children {
		if i > 0 {
			total += v.layout.HorizontalGap
		}
		total += v.subtreeWidth(c, widths)
	}
	return total
}

func (v *TreeVisualizer) place(
	view *TreeView,
	node *domain.CategoryTreeNode,
	parentID string,
	left float64,
	row int,
	widths map[*domain.CategoryTreeNode]float64,
	rows *int,
) {
	cfg := v.layout
	width := widths[node]
	if row+1 > *rows {
		*rows = row + 1
	}

	expanded := v.isExpanded(node)
	nv := NodeView{
		Node:     node,
		ParentID: parentID,
		Box: Box{
			X:      left + (width-cfg.CardWidth)/2,
			Y:      cfg.Padding + float64(row)*(cfg.CardHeight+cfg.VerticalGap),
			Width:  cfg.CardWidth,
			Height: cfg.CardHeight,
		},
		Main:       newCard(node, 0),
		Expanded:   expanded,
		Toggleable: node.HasChildren(),
	}
	if nv.Toggleable {
		nv.ToggleQuery = v.expanded.Toggled(node.ID).Encode()
	}
	if !expanded {
		nv.Stacked = stackedCards(node)
	}
	view.Nodes = append(view.Nodes, nv)

	if !expanded {
		return
	}

	total := 0.0
	for i, c := range node.Children {
		if i > 0 {
			total += cfg.HorizontalGap
		}
		total += widths[c]
	}
	childLeft := left + (width-total)/2
	for _, c := range node.Children {
		v.place(view, c, node.ID, childLeft, row+1, widths, rows)
		childLeft += widths[c] + cfg.HorizontalGap
	}
}
