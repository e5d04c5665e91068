package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitrine/frontend/internal/domain"
	"github.com/vitrine/frontend/internal/usecase"
)

func newTreeCommand() *cobra.Command {
	var (
		maxDepth int
		fresh    bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the category tree as an outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if fresh {
				a.catalog.Invalidate(cmd.Context())
			}
			visualizer := usecase.NewTreeVisualizer(a.catalog, usecase.ExpansionState{}, usecase.LayoutConfig{})
			root := visualizer.Load(cmd.Context())
			return printOutline(cmd.OutOrStdout(), root, maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "depth", 0, "deepest level to print, 0 prints every level")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "drop cached catalog data before loading")
	return cmd
}

// printOutline writes one line per node, indented by depth
func printOutline(w io.Writer, node *domain.CategoryTreeNode, maxDepth int) error {
	indent := strings.Repeat("  ", node.Depth)
	if _, err := fmt.Fprintf(w, "%s%s [%s] %d produtos (altura %d)\n", indent, node.Name, node.Initials, node.ProductCount, node.Depth); err != nil {
		return err
	}
	if maxDepth > 0 && node.Depth >= maxDepth {
		return nil
	}
	for _, child := range node.Children {
		if err := printOutline(w, child, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
