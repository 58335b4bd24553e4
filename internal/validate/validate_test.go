package validate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
)

// writeStyle creates prompts/<slug>/ with the requested files and returns the dir.
func writeStyle(t *testing.T, root, slug string, prompt, screenshot bool) string {
	t.Helper()
	dir := filepath.Join(root, "prompts", slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if prompt {
		if err := os.WriteFile(filepath.Join(dir, "prompt.md"), []byte("# Summary\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if screenshot {
		if err := os.WriteFile(filepath.Join(dir, "screenshot.jpg"), []byte{0xff, 0xd8}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func setMtime(t *testing.T, path string, mt time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mt, mt); err != nil {
		t.Fatal(err)
	}
}

func TestRun_MissingScreenshot(t *testing.T) {
	root := t.TempDir()
	dir := writeStyle(t, root, "retro-wave", true, false)

	findings, err := Run(root, "Retro Wave")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	f := findings[0]
	if f.Severity != artifact.SeverityFail || f.Message != MsgMissingScreenshot {
		t.Errorf("finding = %+v, want missing screenshot failure", f)
	}
	if f.Path != filepath.Join(dir, "screenshot.jpg") {
		t.Errorf("Path = %v, want screenshot path", f.Path)
	}
	if !Failed(findings) {
		t.Error("Failed() = false, want true")
	}
}

func TestRun_StaleThenFresh(t *testing.T) {
	root := t.TempDir()
	dir := writeStyle(t, root, "retro-wave", true, true)
	prompt := filepath.Join(dir, "prompt.md")
	shot := filepath.Join(dir, "screenshot.jpg")

	now := time.Now()
	setMtime(t, prompt, now)
	setMtime(t, shot, now.Add(-time.Hour))

	findings, err := Run(root, "retro-wave")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(findings) != 1 || findings[0].Message != MsgStaleScreenshot {
		t.Fatalf("findings = %+v, want one stale failure", findings)
	}
	if got := findings[0].String(); got != "[FAIL] "+MsgStaleScreenshot+": "+shot {
		t.Errorf("String() = %q", got)
	}

	setMtime(t, shot, now.Add(time.Hour))
	findings, err = Run(root, "retro-wave")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(findings) != 1 || !findings[0].OK() {
		t.Fatalf("findings = %+v, want OK", findings)
	}
	if got := findings[0].String(); got != "[OK] "+dir {
		t.Errorf("String() = %q, want [OK] %s", got, dir)
	}
	if Failed(findings) {
		t.Error("Failed() = true, want false")
	}
}

func TestRun_EqualMtimeIsFresh(t *testing.T) {
	root := t.TempDir()
	dir := writeStyle(t, root, "flat", true, true)
	mt := time.Now().Truncate(time.Second)
	setMtime(t, filepath.Join(dir, "prompt.md"), mt)
	setMtime(t, filepath.Join(dir, "screenshot.jpg"), mt)

	findings, err := Run(root, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if Failed(findings) {
		t.Errorf("findings = %+v, want OK", findings)
	}
}

func TestRun_NoPromptsDir(t *testing.T) {
	root := t.TempDir()

	findings, err := Run(root, "")
	if !errors.Is(err, ErrNoStyles) {
		t.Fatalf("Run() error = %v, want ErrNoStyles", err)
	}
	if findings != nil {
		t.Errorf("findings = %v, want none", findings)
	}
}

func TestRun_EmptyPromptsDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "prompts"), 0755); err != nil {
		t.Fatal(err)
	}
	// stray files are not style folders
	if err := os.WriteFile(filepath.Join(root, "prompts", "README.md"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(root, ""); !errors.Is(err, ErrNoStyles) {
		t.Fatalf("Run() error = %v, want ErrNoStyles", err)
	}
}

func TestRun_NamedStyleMissing(t *testing.T) {
	root := t.TempDir()

	findings, err := Run(root, "Ghost Style")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := filepath.Join(root, "prompts", "ghost-style")
	if len(findings) != 1 || findings[0].Message != MsgMissingStyleDir || findings[0].Path != want {
		t.Errorf("findings = %+v, want missing style directory for %s", findings, want)
	}
}

func TestRun_NamedStyleEmptySlug(t *testing.T) {
	if _, err := Run(t.TempDir(), "!!!"); !errors.Is(err, ErrEmptySlug) {
		t.Errorf("Run() error = %v, want ErrEmptySlug", err)
	}
}

func TestRun_AllStylesSortedAndNonAborting(t *testing.T) {
	root := t.TempDir()
	writeStyle(t, root, "zen", true, true)
	writeStyle(t, root, "alpha", false, false)
	mid := writeStyle(t, root, "midcentury", true, false)

	findings, err := Run(root, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(findings) != 3 {
		t.Fatalf("findings = %d, want 3", len(findings))
	}

	want := []struct {
		msg  string
		path string
	}{
		{MsgMissingPrompt, filepath.Join(root, "prompts", "alpha", "prompt.md")},
		{MsgMissingScreenshot, filepath.Join(mid, "screenshot.jpg")},
		{"", filepath.Join(root, "prompts", "zen")},
	}
	for i, w := range want {
		if findings[i].Message != w.msg || findings[i].Path != w.path {
			t.Errorf("findings[%d] = %+v, want %q at %s", i, findings[i], w.msg, w.path)
		}
	}
	if !Failed(findings) {
		t.Error("Failed() = false, want true")
	}
}

func TestCheck_FileInPlaceOfDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "not-a-dir")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	f := Check(path)
	if f.Message != MsgMissingStyleDir {
		t.Errorf("Message = %q, want %q", f.Message, MsgMissingStyleDir)
	}
}

func TestRun_UnreadableStyleDoesNotStopOthers(t *testing.T) {
	root := t.TempDir()
	locked := writeStyle(t, root, "locked", true, true)
	ok := writeStyle(t, root, "open", true, true)
	shot := filepath.Join(ok, "screenshot.jpg")
	setMtime(t, shot, time.Now().Add(time.Hour))

	lockedPrompt := filepath.Join(locked, "prompt.md")
	prev := statFn
	statFn = func(name string) (os.FileInfo, error) {
		if name == lockedPrompt {
			return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
		}
		return os.Stat(name)
	}
	t.Cleanup(func() { statFn = prev })

	findings, err := Run(root, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("findings = %d, want 2", len(findings))
	}

	f := findings[0]
	if f.OK() || f.Path != lockedPrompt {
		t.Errorf("findings[0] = %+v, want failure at %s", f, lockedPrompt)
	}
	if want := MsgUnreadable + " (" + fs.ErrPermission.Error() + ")"; f.Message != want {
		t.Errorf("Message = %q, want %q", f.Message, want)
	}
	if !findings[1].OK() {
		t.Errorf("findings[1] = %+v, want OK", findings[1])
	}
}
