package metadata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultTool is the executable name looked up by [Lookup] if no other name
// is given.
const DefaultTool = "MFEKmetadata"

// ReportKind is the report argument passed to the tool.
const ReportKind = "glyphs"

// ErrNotUTF8 is returned if the tool writes a report which is not valid UTF-8.
var ErrNotUTF8 = errors.New("metadata report is not valid UTF-8")

// Command is a Source running the metadata tool as a sub-process.
type Command struct {
	Path string // path of the executable
}

// Lookup locates the metadata tool in the directories named by PATH.
// An empty name selects [DefaultTool].
func Lookup(name string) (*Command, error) {
	if name == "" {
		name = DefaultTool
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s unavailable: %w", name, err)
	}
	tracer().Debugf("using metadata tool %s", path)
	return &Command{Path: path}, nil
}

// ToolError is returned if the metadata tool fails.
type ToolError struct {
	Tool   string
	Args   []string
	Stderr string // trimmed output of the tool on stderr
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the error reported by os/exec.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// GlyphsTSV runs the tool on ufodir and returns its complete output.
// The call blocks until the tool has exited.
func (c *Command) GlyphsTSV(ctx context.Context, ufodir string) (string, error) {
	out, err := c.run(ctx, ufodir, ReportKind)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%s %s: %w", c.Path, ufodir, ErrNotUTF8)
	}
	return string(out), nil
}

// Version asks the tool for its version, i.e. the last word it prints when
// called with "--version".
func (c *Command) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", fmt.Errorf("%s --version printed nothing", c.Path)
	}
	return fields[len(fields)-1], nil
}

// RequireVersion fails if the tool is older than version least.
func (c *Command) RequireVersion(ctx context.Context, least string) error {
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	cmp, err := CompareVersions(v, least)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}
	if cmp < 0 {
		return fmt.Errorf("%s has version %s, need at least %s", c.Path, v, least)
	}
	return nil
}

func (c *Command) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	tracer().Debugf("running %s %v", c.Path, args)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &ToolError{
			Tool:   c.Path,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// CompareVersions compares dotted numeric versions like "0.0.4" or "v1.2".
// Missing trailing components count as 0.
func CompareVersions(a, b string) (int, error) {
	pa, err := versionParts(a)
	if err != nil {
		return 0, err
	}
	pb, err := versionParts(b)
	if err != nil {
		return 0, err
	}
	for i := range max(len(pa), len(pb)) {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		if x != y {
			if x < y {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

func versionParts(v string) ([]int, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 { // drop pre-release and build suffix
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed version %q", v)
		}
		nums[i] = n
	}
	return nums, nil
}
