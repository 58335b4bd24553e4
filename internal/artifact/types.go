package artifact

import (
	"fmt"
	"strings"
)

// Format selects which prompt template gets scaffolded
type Format string

const (
	FormatDesignSystem Format = "design-system"
	FormatSummarySpec  Format = "summary-spec"
)

// Formats lists every supported format in display order
var Formats = []Format{FormatDesignSystem, FormatSummarySpec}

// ParseFormat converts user input into a Format
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("invalid format %q (valid: %s)", s, strings.Join(names, ", "))
}

// Severity of a validation finding
type Severity string

const (
	SeverityOK   Severity = "OK"
	SeverityFail Severity = "FAIL"
)

// Finding is the outcome of checking one style folder
type Finding struct {
	Severity Severity
	Path     string // style dir for OK, offending file or dir for FAIL
	Message  string // failure reason, empty for OK
}

// OK reports whether the finding passed
func (f Finding) OK() bool {
	return f.Severity == SeverityOK
}

// String renders "[OK] <dir>" or "[FAIL] <reason>: <path>"
func (f Finding) String() string {
	if f.OK() {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Path)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Message, f.Path)
}
