package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/scaffold"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/slug"
	"github.com/jordyvandomselaar/design-prompts-creator/internal/ui"
)

func TestScaffoldErrorMessage(t *testing.T) {
	prev := ui.IsTTY
	ui.IsTTY = false
	t.Cleanup(func() { ui.IsTTY = prev })

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "existing prompt",
			err:  &scaffold.ExistsError{Path: "/repo/prompts/zen/prompt.md"},
			want: "prompt already exists: /repo/prompts/zen/prompt.md (pass --overwrite to replace it)",
		},
		{
			name: "empty slug",
			err:  fmt.Errorf("%w: %q", slug.ErrEmpty, "!!"),
			want: `style name "!!" must contain at least one letter or digit`,
		},
		{
			name: "other",
			err:  fmt.Errorf("failed to write x: %w", scaffold.ErrOutsideRepo),
			want: "failed to write x: " + scaffold.ErrOutsideRepo.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaffoldErrorMessage(tt.err, "!!"); got != tt.want {
				t.Errorf("scaffoldErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScaffoldErrorMessage_StylesOverwriteHint(t *testing.T) {
	prev := ui.IsTTY
	ui.IsTTY = true
	t.Cleanup(func() { ui.IsTTY = prev })

	got := scaffoldErrorMessage(&scaffold.ExistsError{Path: "p"}, "x")
	if !strings.Contains(got, ui.RenderCode("--overwrite")) {
		t.Errorf("scaffoldErrorMessage() = %q, want styled --overwrite hint", got)
	}
}
