package main

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"mangrove/internal/diagnostics"
	"mangrove/internal/parser"
)

var (
	ErrCheckFailed = errors.Base("check failed")
	ErrNoMatches   = errors.Base("no files match")
)

type checkHandler struct {
	fs afero.Fs
}

func newCheckCommand(fs afero.Fs) *cobra.Command {
	me := &checkHandler{fs: fs}

	cmd := &cobra.Command{
		Use:   "check <glob>...",
		Short: "parse files and report diagnostics",
		Long:  "Parse every file matching the given patterns (doublestar syntax, e.g. src/**/*.mgv) and report their diagnostics.",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.OutOrStdout(), args)
	}

	return cmd
}

// Run checks every file matched by patterns. Failures from all files are
// combined; the summary is printed either way.
func (me *checkHandler) Run(out io.Writer, patterns []string) error {
	var (
		errs  error
		all   []diagnostics.Diagnostic
		files []string
	)

	for _, pattern := range patterns {
		matches, err := me.glob(pattern)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		files = append(files, matches...)
	}

	for _, file := range files {
		diags, err := me.checkFile(out, file)
		all = append(all, diags...)
		errs = multierr.Append(errs, err)
	}

	fmt.Fprintf(out, "checked %d files: %s\n", len(files), diagnostics.Summary(all))
	return errs
}

func (me *checkHandler) checkFile(out io.Writer, file string) ([]diagnostics.Diagnostic, error) {
	doc, err := readDocument(me.fs, file)
	if err != nil {
		return nil, err
	}

	result := parser.Parse(doc)
	reporter := diagnostics.NewReporter(file, doc.Text())
	for _, d := range result.Diagnostics {
		fmt.Fprint(out, reporter.Format(d))
	}

	if result.HasErrors() {
		return result.Diagnostics, errors.Errorf("%w: %s", ErrCheckFailed, file)
	}
	return result.Diagnostics, nil
}

// glob expands a doublestar pattern over the handler's filesystem. Absolute
// patterns are matched from the filesystem root.
func (me *checkHandler) glob(pattern string) ([]string, error) {
	fs := me.fs
	root := ""
	pattern = filepath.ToSlash(pattern)
	if strings.HasPrefix(pattern, "/") {
		fs = afero.NewBasePathFs(fs, "/")
		root = "/"
		pattern = strings.TrimPrefix(pattern, "/")
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fs), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("invalid pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("%w: %s", ErrNoMatches, root+pattern)
	}

	for i, match := range matches {
		matches[i] = filepath.FromSlash(path.Join(root, match))
	}
	return matches, nil
}
