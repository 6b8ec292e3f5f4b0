package dag

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// EvaluateCondition is the built-in condition evaluator. The condition's
// field is a path into the prior-results map ("<stepId>.a.b"); numeric
// segments index arrays. A missing field satisfies only the not_exists
// operator.
func EvaluateCondition(cond *models.Condition, prior map[string]any) bool {
	if cond == nil {
		return true
	}
	value, found := lookupField(cond.Field, prior)

	switch cond.Operator {
	case models.OpExists:
		return found
	case models.OpNotExists:
		return !found
	}
	if !found {
		return false
	}

	switch cond.Operator {
	case models.OpEq:
		return looseEqual(value, cond.Value)
	case models.OpNe:
		return !looseEqual(value, cond.Value)
	case models.OpGt, models.OpGte, models.OpLt, models.OpLte:
		a, aok := toFloat(value)
		b, bok := toFloat(cond.Value)
		if !aok || !bok {
			return false
		}
		switch cond.Operator {
		case models.OpGt:
			return a > b
		case models.OpGte:
			return a >= b
		case models.OpLt:
			return a < b
		default:
			return a <= b
		}
	case models.OpIn, models.OpNotIn:
		list, ok := cond.Value.([]any)
		if !ok {
			return false
		}
		contained := false
		for _, item := range list {
			if looseEqual(value, item) {
				contained = true
				break
			}
		}
		if cond.Operator == models.OpIn {
			return contained
		}
		return !contained
	default:
		return false
	}
}

// lookupField walks a dotted path through the prior-results map.
func lookupField(field string, prior map[string]any) (any, bool) {
	if field == "" {
		return nil, false
	}
	var value any = prior
	for _, segment := range strings.Split(field, ".") {
		switch cur := value.(type) {
		case map[string]any:
			next, ok := cur[segment]
			if !ok {
				return nil, false
			}
			value = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(cur) {
				return nil, false
			}
			value = cur[idx]
		default:
			return nil, false
		}
	}
	return value, true
}

// looseEqual compares scalars across JSON number representations.
func looseEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case fmt.Stringer:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
