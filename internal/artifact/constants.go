package artifact

import "path/filepath"

// File and directory names that make up the prompt layout:
//
//	<repo-root>/prompts/<style-slug>/prompt.md
//	<repo-root>/prompts/<style-slug>/screenshot.jpg
const (
	// PromptsDirName is the directory under the repo root holding one folder per style
	PromptsDirName = "prompts"

	// PromptFilename is the markdown prompt inside a style folder
	PromptFilename = "prompt.md"

	// ScreenshotFilename is the rendered preview inside a style folder
	ScreenshotFilename = "screenshot.jpg"
)

// PromptsDir returns <root>/prompts.
func PromptsDir(root string) string {
	return filepath.Join(root, PromptsDirName)
}

// StyleDir returns <root>/prompts/<slug>.
func StyleDir(root, slug string) string {
	return filepath.Join(PromptsDir(root), slug)
}

// PromptPath returns the prompt file inside a style folder.
func PromptPath(styleDir string) string {
	return filepath.Join(styleDir, PromptFilename)
}

// ScreenshotPath returns the screenshot file inside a style folder.
func ScreenshotPath(styleDir string) string {
	return filepath.Join(styleDir, ScreenshotFilename)
}
