package dag

import (
	"log/slog"
	"strconv"
	"strings"
)

// refPrefix marks a parameter string as a reference into a prior step's
// result: "$ref:step:<id>" for the whole result, "$ref:step:<id>.a.b.c"
// to descend into it.
const refPrefix = "$ref:step:"

// ResolveRefs walks params recursively and replaces reference strings
// with values from prior step results. Unresolvable references are left
// unchanged and logged; they never fail the step.
func ResolveRefs(params map[string]any, prior map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = resolveValue(v, prior)
	}
	return out
}

func resolveValue(v any, prior map[string]any) any {
	switch val := v.(type) {
	case string:
		if strings.HasPrefix(val, refPrefix) {
			return resolveRef(val, prior)
		}
		return val
	case map[string]any:
		return ResolveRefs(val, prior)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, prior)
		}
		return out
	default:
		return v
	}
}

// resolveRef resolves one "$ref:step:..." string. A path after the step
// id descends into the result: numeric segments index arrays, everything
// else keys maps. No coercion between the two.
func resolveRef(ref string, prior map[string]any) any {
	spec := strings.TrimPrefix(ref, refPrefix)
	stepID, path, _ := strings.Cut(spec, ".")
	if stepID == "" {
		slog.Warn("Empty step reference left unresolved", "ref", ref)
		return ref
	}

	value, ok := prior[stepID]
	if !ok {
		slog.Warn("Step reference left unresolved: no prior result", "ref", ref, "step", stepID)
		return ref
	}
	if path == "" {
		return value
	}

	for _, segment := range strings.Split(path, ".") {
		switch cur := value.(type) {
		case map[string]any:
			next, ok := cur[segment]
			if !ok {
				slog.Warn("Step reference left unresolved: missing path segment",
					"ref", ref, "segment", segment)
				return ref
			}
			value = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(cur) {
				slog.Warn("Step reference left unresolved: bad array index",
					"ref", ref, "segment", segment)
				return ref
			}
			value = cur[idx]
		default:
			slog.Warn("Step reference left unresolved: cannot descend into scalar",
				"ref", ref, "segment", segment)
			return ref
		}
	}
	return value
}
