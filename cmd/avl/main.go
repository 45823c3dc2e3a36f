// Command avl builds an AVL tree from its arguments and reports on it.
//
//	avl -n 1 2 3 4 5
//	avl --print --remove 20 10 20 30 40 50 25
package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type options struct {
	remove, search []string
	numeric, desc  bool
	print, dot     bool
	levels, color  bool
	verbose        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opt options
	cmd := &cobra.Command{
		Use:   "avl [flags] key...",
		Short: "Insert keys into an AVL tree and report on it",
		Long: `avl inserts the keys in the order given, then removes the keys of --remove.
It prints the keys in order and verifies the tree, exiting non-zero if the
tree is malformed.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = !opt.color
			gtrace.CoreTracer = gologadapter.New()
			if opt.verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			}
			if opt.numeric {
				return runNumeric(cmd.OutOrStdout(), args, opt)
			}
			return run(cmd.OutOrStdout(), args, opt.remove, opt.search, order(cmp.Compare[string], opt.desc), opt)
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&opt.remove, "remove", "r", nil, "keys to remove after insertion")
	fs.StringSliceVarP(&opt.search, "search", "s", nil, "keys to look up")
	fs.BoolVarP(&opt.numeric, "numeric", "n", false, "parse keys as integers")
	fs.BoolVar(&opt.desc, "desc", false, "order keys descending")
	fs.BoolVar(&opt.print, "print", false, "draw the tree")
	fs.BoolVar(&opt.dot, "dot", false, "output the tree in Graphviz DOT format")
	fs.BoolVar(&opt.levels, "levels", false, "print the tree level by level")
	fs.BoolVar(&opt.color, "color", false, "color search results")
	fs.BoolVarP(&opt.verbose, "verbose", "v", false, "trace at debug level")
	return cmd
}

func order[T any](c func(T, T) int, desc bool) func(T, T) int {
	if desc {
		return func(a, b T) int { return c(b, a) }
	}
	return c
}

func runNumeric(w io.Writer, args []string, opt options) error {
	var keys, rms, srs []int
	var err error
	if keys, err = parseInts(args); err != nil {
		return err
	}
	if rms, err = parseInts(opt.remove); err != nil {
		return err
	}
	if srs, err = parseInts(opt.search); err != nil {
		return err
	}
	return run(w, keys, rms, srs, order(cmp.Compare[int], opt.desc), opt)
}

func parseInts(ss []string) ([]int, error) {
	is := make([]int, len(ss))
	for i, s := range ss {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("avl: key %q is not an integer", s)
		}
		is[i] = v
	}
	return is, nil
}

func run[T any](w io.Writer, keys, rms, srs []T, c func(T, T) int, opt options) error {
	tree := Trees.NewFunc[T, uint](uint(len(keys)), c)
	for _, k := range keys {
		if _, err := tree.Insert(k); err != nil {
			return err
		}
	}
	for _, k := range rms {
		tree.Remove(k)
	}
	for _, k := range srs {
		if tree.Has(k) {
			fmt.Fprintf(w, "%v: %s\n", k, color.GreenString("true"))
		} else {
			fmt.Fprintf(w, "%v: %s\n", k, color.RedString("false"))
		}
	}
	fmt.Fprintln(w, join(tree.Keys()))
	if opt.levels {
		for _, lv := range tree.Levels() {
			fmt.Fprintln(w, join(lv))
		}
	}
	if opt.print {
		tree.Print(w)
	}
	if opt.dot {
		tree.Dot(w)
	}
	gtrace.CoreTracer.Debugf("avl: %d keys, height %d", tree.Size(), tree.Height())
	return tree.Check()
}

func join[T any](ks []T) string {
	return strings.Join(lo.Map(ks, func(k T, _ int) string { return fmt.Sprint(k) }), " ")
}
