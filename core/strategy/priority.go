// ABOUTME: Depth-based priority heuristic shared by route-backed strategies
// ABOUTME: Assigns importance by the number of path segments in a location

package strategy

import "strings"

// DepthPriority maps a path to a priority by segment count:
// "/" is 1.0, one segment 0.8, two segments 0.6, three or more 0.4.
func DepthPriority(path string) float64 {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return 1.0
	}

	switch strings.Count(trimmed, "/") + 1 {
	case 1:
		return 0.8
	case 2:
		return 0.6
	default:
		return 0.4
	}
}
