package eventbrite

import "strings"

// Rule is a constraint over which wire parameters ended up present after Process.
// Rules look at key membership only, never at values.
type Rule interface {
	Check(args Args) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(args Args) error

func (f RuleFunc) Check(args Args) error { return f(args) }

// ExactlyOneOf requires exactly one of wires to be present.
// group names the constraint in the returned error.
func ExactlyOneOf(group string, wires ...string) Rule {
	return RuleFunc(func(args Args) error {
		var present []string
		for _, w := range wires {
			if args.Has(w) {
				present = append(present, w)
			}
		}
		if len(present) == 1 {
			return nil
		}
		qualifier := "neither"
		if len(present) > 1 {
			qualifier = "more than one"
		}
		return Errorf(CodeExclusiveGroupViolation, "%s: expected exactly one of %s, got %s",
			group, strings.Join(wires, ", "), qualifier).
			WithDetails(map[string]any{
				"group":   group,
				"fields":  wires,
				"present": present,
			})
	})
}

// DependsOn requires every companion to be present whenever trigger is.
func DependsOn(trigger string, companions ...string) Rule {
	return RuleFunc(func(args Args) error {
		if !args.Has(trigger) {
			return nil
		}
		var missing []string
		for _, c := range companions {
			if !args.Has(c) {
				missing = append(missing, c)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		return Errorf(CodeMissingDependency, "%s requires %s", trigger, strings.Join(missing, ", ")).
			WithDetails(map[string]any{
				"field":   trigger,
				"missing": missing,
			})
	})
}

// Validate runs rules in order and returns the first failure.
func Validate(args Args, rules ...Rule) error {
	for _, r := range rules {
		if err := r.Check(args); err != nil {
			return err
		}
	}
	return nil
}
