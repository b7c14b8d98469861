package ansifmt

import (
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultColumns is the width used when the terminal width is unknown.
const DefaultColumns = 80

var digits = regexp.MustCompile(`^\d+$`)

// ResolveColumns returns n when positive, otherwise the detected terminal
// width, otherwise [DefaultColumns].
func ResolveColumns(n int) int {
	return resolveColumns(n, DetectWidth)
}

func resolveColumns(n int, detect func() int) int {
	if n > 0 {
		return n
	}
	if w := detect(); w > 0 {
		return w
	}
	return DefaultColumns
}

// DetectWidth reports the terminal width from $COLUMNS, the size of stdout,
// or "tput cols", in that order. It returns 0 when none of them works.
func DetectWidth() int {
	return detectWidth(os.Getenv, stdoutWidth, tputWidth)
}

func detectWidth(getenv func(string) string, probes ...func() (int, error)) int {
	if v := strings.TrimSpace(getenv("COLUMNS")); digits.MatchString(v) {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	for _, probe := range probes {
		if n, err := probe(); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func stdoutWidth() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	return w, err
}

func tputWidth() (int, error) {
	out, err := exec.Command("tput", "cols").Output()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(out)))
}
