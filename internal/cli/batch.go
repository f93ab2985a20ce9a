package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/elmotec/makemock/internal/generator"
	"github.com/elmotec/makemock/internal/parser"
	"github.com/elmotec/makemock/internal/storage"
)

var (
	batchPattern  string
	batchClass    string
	batchOutDir   string
	batchDelegate bool
	batchHistory  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch DIRECTORY",
	Short: "Generate mocks for every header under a directory",
	Long: `Walk DIRECTORY, generate mocks for every header whose path matches
the glob pattern, and write each result next to its header as
<name>_mock.<ext> (or under --out-dir, preserving the relative layout).

Headers that yield no mockable methods produce no output file.

Example:
  makemock batch include/
  makemock batch src/ --pattern '**.hpp' --out-dir mocks/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchPattern, "pattern", "p", "**.h", "glob matched against paths relative to DIRECTORY")
	batchCmd.Flags().StringVarP(&batchClass, "target-class", "c", "", "restrict extraction to one class")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write mocks under this directory instead of next to each header")
	batchCmd.Flags().BoolVarP(&batchDelegate, "delegate", "d", false, "append ON_CALL default delegation statements")
	batchCmd.Flags().BoolVar(&batchHistory, "history", false, "record each generation in .makemock/history.db")
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf(`Invalid value for "DIRECTORY": %v`, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(`Invalid value for "DIRECTORY": %s is not a directory`, root)
	}

	matcher, err := glob.Compile(batchPattern, '/')
	if err != nil {
		return fmt.Errorf(`Invalid value for "--pattern": %v`, err)
	}

	scanned, generated := 0, 0
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == storage.HistoryDir {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		// Glob separators are always '/', regardless of platform.
		if !matcher.Match(filepath.ToSlash(rel)) {
			return nil
		}
		scanned++

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		scoped := parser.SelectScope(string(data), batchClass)
		sigs := parser.ExtractSignatures(scoped)
		if len(sigs) == 0 {
			return nil
		}

		outPath := mockPath(root, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, []byte(generator.Render(sigs, batchDelegate)), 0644); err != nil {
			return err
		}
		generated++

		if batchHistory {
			recordRun(path, batchClass, len(sigs))
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d headers, generated %d mock files\n", scanned, generated)
	return nil
}

// mockPath derives the output path for a header: foo/bar.h becomes
// foo/bar_mock.h, rooted under --out-dir when one is given.
func mockPath(root, rel string) string {
	ext := filepath.Ext(rel)
	stem := strings.TrimSuffix(rel, ext)
	name := stem + "_mock" + ext

	if batchOutDir != "" {
		return filepath.Join(batchOutDir, name)
	}
	return filepath.Join(root, name)
}
