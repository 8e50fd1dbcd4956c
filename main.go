package main

import (
	"flag"
	"fmt"
	"os"

	"flowcanvas/editor"
	"flowcanvas/flowtree"
	"flowcanvas/graph"
	"flowcanvas/registry"
	"flowcanvas/terminal"

	"go.uber.org/zap"
)

func main() {
	var (
		interactive  = flag.Bool("i", false, "Interactive terminal mode")
		showTree     = flag.Bool("tree", false, "Print the flow as an ASCII tree")
		showSummary  = flag.Bool("summary", false, "Print the flow execution summary")
		rootID       = flag.String("root", "", "Root node id for tree/summary (default: first start node)")
		registryFile = flag.String("registry", "", "YAML file with additional node type specs")
		verbose      = flag.Bool("v", false, "Verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	reg := registry.Default()
	if *registryFile != "" {
		loaded, err := registry.LoadFile(*registryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading registry: %v\n", err)
			os.Exit(1)
		}
		reg = loaded
	}

	filename := flag.Arg(0)
	g := &graph.Graph{}
	if filename != "" {
		loaded, err := graph.Load(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading graph: %v\n", err)
			os.Exit(1)
		}
		g = loaded
		logger.Debug("loaded document",
			zap.String("file", filename),
			zap.Int("nodes", len(g.Nodes)),
			zap.Int("edges", len(g.Edges)))
	}

	if *interactive {
		session := editor.NewSession(g, reg, editor.WithLogger(logger))
		if err := terminal.Run(session, filename, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *showTree || *showSummary {
		root := *rootID
		if root == "" {
			root = findRoot(g)
		}
		if root == "" {
			fmt.Fprintln(os.Stderr, "Error: no root node found (use -root)")
			os.Exit(1)
		}
		tree := flowtree.Build(g, root)
		if tree == nil {
			fmt.Fprintf(os.Stderr, "Error: root node %q not in graph\n", root)
			os.Exit(1)
		}
		if *showTree {
			for _, line := range flowtree.RenderASCIITree(tree) {
				fmt.Println(line)
			}
		}
		if *showSummary {
			if *showTree {
				fmt.Println()
			}
			for _, line := range flowtree.SummarizeFlow(tree) {
				fmt.Println(line)
			}
		}
		return
	}

	printUsage()
}

// findRoot picks the analysis root: the first startNode, falling back to
// the first node with no incoming edges.
func findRoot(g *graph.Graph) string {
	for _, node := range g.Nodes {
		if node.Type == "startNode" {
			return node.ID
		}
	}
	for _, node := range g.Nodes {
		if len(g.IncomingEdges(node.ID)) == 0 {
			return node.ID
		}
	}
	return ""
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

func printUsage() {
	fmt.Println(`flowcanvas - node-based flow graph editor and analyzer

Usage:
  flowcanvas [flags] [file.json]

Flags:
  -i             Interactive terminal mode
  -tree          Print the flow as an ASCII tree
  -summary       Print the flow execution summary
  -root ID       Root node id for -tree/-summary
  -registry F    YAML file with additional node type specs
  -v             Verbose logging

Interactive keys:
  click  select node      shift-click  add to selection
  d  duplicate   x  delete    m  mute      y  copy    p  paste
  g  group       G  explode   c  cut tool  u  undo    r  redo
  s  save        ESC cancel   q  quit`)
}
