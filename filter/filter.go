package filter

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/multierr"

	"github.com/Philipp01105/colog/core"
)

// DefaultEnv is the environment variable read by FromEnv callers that
// have no preference of their own.
const DefaultEnv = "GO_LOG"

// ErrInvalidDirective is wrapped by every error Parse reports.
var ErrInvalidDirective = errors.New("invalid filter directive")

const globMeta = "*?[{"

type directive struct {
	target string
	level  core.LevelFilter
	glob   glob.Glob
}

func (d directive) matches(target string) bool {
	if d.glob != nil {
		return d.glob.Match(target)
	}
	if d.target == "" || target == d.target {
		return true
	}
	return strings.HasPrefix(target, d.target) && target[len(d.target)] == '.'
}

// Filter is an immutable set of directives. The zero value rejects every record.
type Filter struct {
	base       core.LevelFilter
	directives []directive // longest target first
	max        core.LevelFilter
}

// New returns a filter letting records at base level or more severe through.
func New(base core.LevelFilter) *Filter {
	return &Filter{base: base, max: base}
}

// Parse builds a filter from spec on top of base. Invalid directives are
// skipped; each one is reported in the returned error, and the filter
// built from the remaining directives is returned alongside it.
func Parse(spec string, base core.LevelFilter) (*Filter, error) {
	return New(base).With(spec)
}

// FromEnv parses the environment variable name on top of base. An unset
// or empty variable yields New(base).
func FromEnv(name string, base core.LevelFilter) (*Filter, error) {
	spec, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(spec) == "" {
		return New(base), nil
	}
	f, err := Parse(spec, base)
	if err != nil {
		return f, fmt.Errorf("parse %s: %w", name, err)
	}
	return f, nil
}

// With returns a new filter with the directives of spec added. Directives
// in spec replace earlier ones for the same target; a bare level replaces
// the base level.
func (f *Filter) With(spec string) (*Filter, error) {
	next := &Filter{base: f.base}
	byTarget := make(map[string]directive, len(f.directives))
	for _, d := range f.directives {
		byTarget[d.target] = d
	}

	var errs error
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, isBase, err := parseDirective(part)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if isBase {
			next.base = d.level
			continue
		}
		byTarget[d.target] = d
	}

	next.directives = make([]directive, 0, len(byTarget))
	for _, d := range byTarget {
		next.directives = append(next.directives, d)
	}
	sort.Slice(next.directives, func(i, j int) bool {
		a, b := next.directives[i].target, next.directives[j].target
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	next.max = next.base
	for _, d := range next.directives {
		if d.level > next.max {
			next.max = d.level
		}
	}
	return next, errs
}

// WithBase returns a copy of the filter with the base level replaced.
func (f *Filter) WithBase(base core.LevelFilter) *Filter {
	next := &Filter{base: base, directives: f.directives, max: base}
	for _, d := range f.directives {
		if d.level > next.max {
			next.max = d.level
		}
	}
	return next
}

// parseDirective parses one directive. isBase reports a bare level.
func parseDirective(part string) (d directive, isBase bool, err error) {
	target, levelName, hasLevel := strings.Cut(part, "=")
	target = strings.TrimSpace(target)

	if !hasLevel {
		if lf, perr := core.ParseLevelFilter(target); perr == nil {
			return directive{level: lf}, true, nil
		}
		d.level = core.TraceFilter
	} else {
		lf, perr := core.ParseLevelFilter(levelName)
		if perr != nil {
			return d, false, fmt.Errorf("%w %q: %w", ErrInvalidDirective, part, perr)
		}
		d.level = lf
	}

	if target == "" {
		return d, false, fmt.Errorf("%w %q: empty target", ErrInvalidDirective, part)
	}
	d.target = target
	if strings.ContainsAny(target, globMeta) {
		g, gerr := glob.Compile(target, '.')
		if gerr != nil {
			return d, false, fmt.Errorf("%w %q: %w", ErrInvalidDirective, part, gerr)
		}
		d.glob = g
	}
	return d, false, nil
}

// Enabled reports whether a record from target at level passes the filter.
func (f *Filter) Enabled(target string, level core.Level) bool {
	return f.LevelFor(target).Enabled(level)
}

// LevelFor returns the threshold applied to records from target.
func (f *Filter) LevelFor(target string) core.LevelFilter {
	if f == nil {
		return core.Off
	}
	for _, d := range f.directives {
		if d.matches(target) {
			return d.level
		}
	}
	return f.base
}

// MaxLevel returns the least severe threshold of any directive, which
// lets callers reject records before looking at their target.
func (f *Filter) MaxLevel() core.LevelFilter {
	if f == nil {
		return core.Off
	}
	return f.max
}

// String returns the filter in directive syntax.
func (f *Filter) String() string {
	if f == nil {
		return core.Off.String()
	}
	parts := make([]string, 0, len(f.directives)+1)
	parts = append(parts, strings.ToLower(f.base.String()))
	for i := len(f.directives) - 1; i >= 0; i-- {
		d := f.directives[i]
		parts = append(parts, d.target+"="+strings.ToLower(d.level.String()))
	}
	return strings.Join(parts, ",")
}
