package condition

import "strconv"

// Evaluate resolves a parsed expression against a value snapshot keyed by
// element id. Missing ids resolve to nil, which is falsy, so a guard over a
// not-yet-visible element simply stays false.
func Evaluate(e Expr, values map[string]any) bool {
	return truthy(eval(e, values))
}

// EvaluateString parses and evaluates in one step. A malformed expression
// evaluates to false rather than hiding the error: the error is returned
// alongside so callers can surface it.
func EvaluateString(expr string, values map[string]any) (bool, error) {
	ast, err := Parse(expr)
	if err != nil {
		return false, err
	}
	return Evaluate(ast, values), nil
}

func eval(e Expr, values map[string]any) any {
	switch n := e.(type) {
	case Ref:
		return values[n.ID]
	case Number:
		return n.Value
	case Text:
		return n.Value
	case Not:
		return !truthy(eval(n.X, values))
	case Binary:
		return evalBinary(n, values)
	case Call:
		return evalCall(n, values)
	}
	return nil
}

func evalBinary(b Binary, values map[string]any) any {
	switch b.Op {
	case "&&":
		return truthy(eval(b.L, values)) && truthy(eval(b.R, values))
	case "||":
		return truthy(eval(b.L, values)) || truthy(eval(b.R, values))
	}
	l := eval(b.L, values)
	r := eval(b.R, values)
	if lf, lok := toNumber(l); lok {
		if rf, rok := toNumber(r); rok {
			switch b.Op {
			case ">":
				return lf > rf
			case "<":
				return lf < rf
			case ">=":
				return lf >= rf
			case "<=":
				return lf <= rf
			case "==":
				return lf == rf
			case "!=":
				return lf != rf
			}
		}
	}
	// Non-numeric operands: only equality is defined.
	switch b.Op {
	case "==":
		return looseEqual(l, r)
	case "!=":
		return !looseEqual(l, r)
	}
	return false
}

func evalCall(c Call, values map[string]any) any {
	switch c.Name {
	case "count":
		if len(c.Args) != 1 {
			return float64(0)
		}
		return countOf(eval(c.Args[0], values))
	case "selected":
		if len(c.Args) != 2 {
			return false
		}
		return isSelected(eval(c.Args[0], values), eval(c.Args[1], values))
	case "any":
		for _, a := range c.Args {
			if truthy(eval(a, values)) {
				return true
			}
		}
		return false
	case "all":
		for _, a := range c.Args {
			if !truthy(eval(a, values)) {
				return false
			}
		}
		return len(c.Args) > 0
	}
	return nil
}

func countOf(v any) float64 {
	switch t := v.(type) {
	case []string:
		return float64(len(t))
	case []any:
		return float64(len(t))
	case []bool:
		n := 0
		for _, f := range t {
			if f {
				n++
			}
		}
		return float64(n)
	case string:
		if t == "" {
			return 0
		}
		return 1
	case float64:
		return t
	case bool:
		if t {
			return 1
		}
	}
	return 0
}

func isSelected(v, want any) bool {
	label, _ := want.(string)
	switch t := v.(type) {
	case string:
		return t == label
	case []string:
		for _, s := range t {
			if s == label {
				return true
			}
		}
	case []any:
		for _, s := range t {
			if ss, ok := s.(string); ok && ss == label {
				return true
			}
		}
	}
	return false
}

func looseEqual(l, r any) bool {
	ls, lok := l.(string)
	rs, rok := r.(string)
	if lok && rok {
		return ls == rs
	}
	lb, lbok := l.(bool)
	if lbok && rok {
		return lb == (rs == "true" || rs == "yes")
	}
	rb, rbok := r.(bool)
	if lok && rbok {
		return rb == (ls == "true" || ls == "yes")
	}
	if lbok && rbok {
		return lb == rb
	}
	return false
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "false" && t != "no"
	case []string:
		return len(t) > 0
	case []bool:
		for _, f := range t {
			if f {
				return true
			}
		}
		return false
	case []any:
		return len(t) > 0
	}
	return false
}
