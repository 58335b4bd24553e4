// Package scaffold writes a new prompt.md for a style from one of the built-in templates.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/slug"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/templates"
)

var (
	// ErrEmptySlug means the style name has no letters or digits
	ErrEmptySlug = slug.ErrEmpty
	// ErrExists means a prompt is already there and overwrite was not requested
	ErrExists = errors.New("prompt already exists")
	// ErrOutsideRepo means an explicit output path escapes the repo root
	ErrOutsideRepo = errors.New("output path must be inside the repository")
)

// ExistsError names the prompt file that blocked the write.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("prompt already exists: %s (pass --overwrite to replace it)", e.Path)
}

// Is lets errors.Is match ErrExists.
func (e *ExistsError) Is(target error) bool {
	return target == ErrExists
}

// Options controls a single scaffold
type Options struct {
	Format             artifact.Format
	StyleName          string
	RepoRoot           string
	IncludeAssumptions bool
	Overwrite          bool

	// Output overrides prompts/<slug>/prompt.md. Relative paths are
	// resolved against RepoRoot, not the working directory, and the
	// result (symlinks followed) must stay inside RepoRoot.
	Output string
}

// Result describes what was written
type Result struct {
	Slug           string
	Format         artifact.Format
	PromptPath     string
	ScreenshotPath string // expected, not created
	Overwritten    bool
}

// Run renders the template for opts.Format and writes it to disk.
func Run(opts Options) (*Result, error) {
	s, err := slug.Valid(opts.StyleName)
	if err != nil {
		return nil, err
	}

	root := opts.RepoRoot
	if root == "" {
		root = "."
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repo root: %w", err)
	}

	promptPath, err := resolvePromptPath(root, s, opts.Output)
	if err != nil {
		return nil, err
	}
	promptDir := filepath.Dir(promptPath)
	screenshotPath := artifact.ScreenshotPath(promptDir)

	log.Debug().
		Str("slug", s).
		Str("prompt", promptPath).
		Str("screenshot", screenshotPath).
		Msg("resolved scaffold paths")

	body, err := templates.Render(opts.Format, templates.Data{
		StyleName:          opts.StyleName,
		IncludeAssumptions: opts.IncludeAssumptions,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(promptDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", promptDir, err)
	}

	existed := false
	if _, err := os.Stat(promptPath); err == nil {
		if !opts.Overwrite {
			return nil, &ExistsError{Path: promptPath}
		}
		existed = true
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check %s: %w", promptPath, err)
	}

	if err := os.WriteFile(promptPath, []byte(body), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", promptPath, err)
	}
	log.Debug().Bool("overwritten", existed).Int("bytes", len(body)).Msg("wrote prompt")

	return &Result{
		Slug:           s,
		Format:         opts.Format,
		PromptPath:     promptPath,
		ScreenshotPath: screenshotPath,
		Overwritten:    existed,
	}, nil
}

func resolvePromptPath(root, s, output string) (string, error) {
	if output == "" {
		return artifact.PromptPath(artifact.StyleDir(root, s)), nil
	}

	p := output
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	p = filepath.Clean(p)

	// Compare real locations so a symlinked folder inside the repo
	// cannot point the write somewhere else.
	realRoot, err := resolveExisting(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repo root: %w", err)
	}
	realPath, err := resolveExisting(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}

	rel, err := filepath.Rel(realRoot, realPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRepo, p)
	}
	return p, nil
}

// resolveExisting evaluates symlinks on the longest existing prefix of p
// and re-attaches the part that does not exist yet.
func resolveExisting(p string) (string, error) {
	var missing []string
	cur := p
	for {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return p, nil
		}
		missing = append(missing, filepath.Base(cur))
		cur = parent
	}
}
