package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for the commands",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return makeDocs(RootCmd, dir)
	},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(root *cobra.Command, dir string) error {
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme.
// A page's position comes from its command's place in the command tree, ex:
// gibfrag_completion_bash.md is a grandchild of gibfrag under completion.
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	parts := strings.Split(base, "_")
	if parts[0] != RootCmd.Name() {
		return ""
	}

	c, rest, err := RootCmd.Find(parts[1:])
	if err != nil || len(rest) > 0 || c.CommandPath() != strings.Join(parts, " ") {
		return ""
	}

	switch len(parts) {
	case 1:
		return fmt.Sprintf(rootPage, c.Name(), 0)
	case 2:
		if c.HasAvailableSubCommands() {
			return fmt.Sprintf(childParentPage, c.Name(), parts[0], navOrder(c))
		}
		return fmt.Sprintf(childPage, c.Name(), parts[0], navOrder(c))
	case 3:
		return fmt.Sprintf(grandchildPage, c.Name(), parts[1], parts[0], navOrder(c))
	}

	return ""
}

// navOrder is the command's position among its parent's documented commands
func navOrder(c *cobra.Command) int {
	if !c.HasParent() {
		return 0
	}

	order := 0
	for _, sibling := range c.Parent().Commands() {
		if sibling == c {
			return order
		}
		if sibling.IsAvailableCommand() && !sibling.IsAdditionalHelpTopicCommand() {
			order++
		}
	}
	return order
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == RootCmd.Name() {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
