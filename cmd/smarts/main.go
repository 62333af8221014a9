package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/smarts"
	"github.com/xiam/smarts/ast"
)

var (
	flagJSON bool
	flagTree bool
)

var rootCmd = &cobra.Command{
	Use:   "smarts [pattern ...]",
	Short: "Parse SMARTS patterns and print their structure",
	Long: `Parses each SMARTS pattern given as an argument, or read line by
line from stdin, and prints the canonical form, an indented parse tree
(--tree) or the raw AST as JSON (--json).`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the AST as JSON")
	rootCmd.Flags().BoolVar(&flagTree, "tree", false, "print an indented parse tree")
}

func run(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				patterns = append(patterns, line)
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	var failed bool
	for _, src := range patterns {
		pattern, err := smarts.Parse(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", src, err)
			failed = true
			continue
		}

		switch {
		case flagJSON:
			out, err := json.MarshalIndent(pattern, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		case flagTree:
			ast.Print(os.Stdout, pattern)
		default:
			fmt.Println(ast.Encode(pattern))
		}
	}

	if failed {
		return errors.New("one or more patterns failed to parse")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
