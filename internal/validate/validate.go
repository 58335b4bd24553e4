// Package validate checks that style folders under prompts/ are complete and
// that each screenshot is at least as new as its prompt.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/slug"
)

// Failure reasons, as printed after "[FAIL] ".
const (
	MsgMissingStyleDir   = "Missing style directory"
	MsgMissingPrompt     = "Missing prompt file"
	MsgMissingScreenshot = "Missing screenshot file"
	MsgStaleScreenshot   = "Screenshot is older than prompt (regenerate screenshot)"
	MsgUnreadable        = "Cannot inspect path"
)

var (
	// ErrNoStyles means there was nothing to validate at all
	ErrNoStyles = errors.New("no prompt style folders found. Expected prompts/<design-style-name>/")
	// ErrEmptySlug means the requested style name has no letters or digits
	ErrEmptySlug = slug.ErrEmpty
)

// Run validates one style when styleName is set, or every folder under
// <repoRoot>/prompts otherwise. Findings come back in check order.
func Run(repoRoot, styleName string) ([]artifact.Finding, error) {
	if repoRoot == "" {
		repoRoot = "."
	}
	root, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repo root: %w", err)
	}

	dirs, err := StyleDirs(root, styleName)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, ErrNoStyles
	}

	findings := make([]artifact.Finding, 0, len(dirs))
	for _, dir := range dirs {
		f := Check(dir)
		log.Debug().Str("dir", dir).Str("severity", string(f.Severity)).Msg("checked style")
		findings = append(findings, f)
	}
	return findings, nil
}

// StyleDirs resolves which folders to check. A named style always yields
// exactly one folder, whether or not it exists.
func StyleDirs(root, styleName string) ([]string, error) {
	if styleName != "" {
		s, err := slug.Valid(styleName)
		if err != nil {
			return nil, err
		}
		return []string{artifact.StyleDir(root, s)}, nil
	}

	promptsDir := artifact.PromptsDir(root)
	entries, err := os.ReadDir(promptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("dir", promptsDir).Msg("prompts directory does not exist")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", promptsDir, err)
	}

	var dirs []string
	for _, e := range entries {
		if isDir(filepath.Join(promptsDir, e.Name()), e) {
			dirs = append(dirs, filepath.Join(promptsDir, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// isDir follows symlinks so a linked style folder still counts.
func isDir(path string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Check runs the per-folder checks, stopping at the first failure. A path
// that cannot be inspected fails this folder only.
func Check(dir string) artifact.Finding {
	promptPath := artifact.PromptPath(dir)
	screenshotPath := artifact.ScreenshotPath(dir)

	dirInfo, err := stat(dir)
	if err != nil {
		return unreadable(dir, err)
	}
	if dirInfo == nil || !dirInfo.IsDir() {
		return fail(MsgMissingStyleDir, dir)
	}

	promptInfo, err := stat(promptPath)
	if err != nil {
		return unreadable(promptPath, err)
	}
	if promptInfo == nil {
		return fail(MsgMissingPrompt, promptPath)
	}

	shotInfo, err := stat(screenshotPath)
	if err != nil {
		return unreadable(screenshotPath, err)
	}
	if shotInfo == nil {
		return fail(MsgMissingScreenshot, screenshotPath)
	}

	if shotInfo.ModTime().Before(promptInfo.ModTime()) {
		log.Debug().
			Time("prompt_mtime", promptInfo.ModTime()).
			Time("screenshot_mtime", shotInfo.ModTime()).
			Msg("screenshot is stale")
		return fail(MsgStaleScreenshot, screenshotPath)
	}

	return artifact.Finding{Severity: artifact.SeverityOK, Path: dir}
}

// Failed reports whether any finding is a failure.
func Failed(findings []artifact.Finding) bool {
	for _, f := range findings {
		if !f.OK() {
			return true
		}
	}
	return false
}

func fail(msg, path string) artifact.Finding {
	return artifact.Finding{Severity: artifact.SeverityFail, Path: path, Message: msg}
}

func unreadable(path string, err error) artifact.Finding {
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	log.Debug().Err(err).Str("path", path).Msg("stat failed")
	return fail(fmt.Sprintf("%s (%v)", MsgUnreadable, err), path)
}

var statFn = os.Stat

// stat returns nil info, nil error when path does not exist.
func stat(path string) (os.FileInfo, error) {
	info, err := statFn(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}
