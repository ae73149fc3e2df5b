// ABOUTME: Regex route filter applying exclude patterns then an include allow-list
// ABOUTME: Invalid patterns are logged and skipped individually, never fatally

package strategy

import (
	"regexp"

	"sitemap-app-api/core/interfaces"
)

// routeFilter holds the compiled include and exclude patterns of a
// route-backed strategy.
type routeFilter struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// newRouteFilter compiles both pattern lists. One bad pattern must not
// break filtering of the rest, so compile failures are logged per
// pattern and the pattern is dropped.
func newRouteFilter(include, exclude []string, logger interfaces.Logger) *routeFilter {
	return &routeFilter{
		include: compilePatterns(include, logger),
		exclude: compilePatterns(exclude, logger),
	}
}

// compilePatterns compiles each pattern, skipping invalid ones.
func compilePatterns(patterns []string, logger interfaces.Logger) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			logger.Warn("Skipping invalid route pattern", map[string]interface{}{
				"pattern": pattern,
				"error":   err.Error(),
			})
			continue
		}
		compiled = append(compiled, re)
	}

	return compiled
}

// apply drops paths matching any exclude pattern, then, when include
// patterns exist, keeps only paths matching at least one of them.
func (f *routeFilter) apply(paths []string) []string {
	filtered := make([]string, 0, len(paths))

	for _, path := range paths {
		if matchesAny(f.exclude, path) {
			continue
		}
		if len(f.include) > 0 && !matchesAny(f.include, path) {
			continue
		}
		filtered = append(filtered, path)
	}

	return filtered
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
