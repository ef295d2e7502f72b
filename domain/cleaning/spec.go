package cleaning

import (
	"fmt"
)

// ActionSpec is the serializable form of an action, used by the HTTP
// surface and the recipe repository. It carries every kind-specific field;
// FromSpec validates the combination.
type ActionSpec struct {
	Kind        Kind         `json:"kind"`
	Column      string       `json:"column,omitempty"`
	Strategy    FillStrategy `json:"strategy,omitempty"`
	CustomValue string       `json:"custom_value,omitempty"`
	Target      TypeTarget   `json:"target,omitempty"`
	Find        string       `json:"find,omitempty"`
	Replace     string       `json:"replace,omitempty"`
	Part        DatePart     `json:"part,omitempty"`
	Places      int          `json:"places,omitempty"`
	ScaleMin    float64      `json:"scale_min,omitempty"`
	ScaleMax    float64      `json:"scale_max,omitempty"`
}

// FromSpec constructs a validated action from its serialized form
func FromSpec(s ActionSpec) (Action, error) {
	switch s.Kind {
	case KindRemoveDuplicates:
		return NewRemoveDuplicates(), nil
	case KindFillMissing:
		return NewFillMissing(s.Column, s.Strategy, s.CustomValue)
	case KindChangeType:
		return NewChangeType(s.Column, s.Target)
	case KindDropColumn:
		return NewDropColumn(s.Column)
	case KindTrimWhitespace:
		return NewTrimWhitespace(s.Column)
	case KindLowercase:
		return NewLowercase(s.Column)
	case KindUppercase:
		return NewUppercase(s.Column)
	case KindStripNonAlnum:
		return NewStripNonAlnum(s.Column)
	case KindCapitalizeWords:
		return NewCapitalizeWords(s.Column)
	case KindReplaceSubstring:
		return NewReplaceSubstring(s.Column, s.Find, s.Replace)
	case KindExtractDatePart:
		return NewExtractDatePart(s.Column, s.Part)
	case KindRoundNumbers:
		return NewRoundNumbers(s.Column, s.Places)
	case KindScaleMinMax:
		return NewScaleMinMax(s.Column, s.ScaleMin, s.ScaleMax)
	default:
		return nil, fmt.Errorf("unknown action kind %q", s.Kind)
	}
}

// ToSpec converts an action back to its serializable form
func ToSpec(a Action) ActionSpec {
	switch act := a.(type) {
	case RemoveDuplicates:
		return ActionSpec{Kind: KindRemoveDuplicates}
	case FillMissing:
		return ActionSpec{Kind: KindFillMissing, Column: act.Col, Strategy: act.Strategy, CustomValue: act.CustomValue}
	case ChangeType:
		return ActionSpec{Kind: KindChangeType, Column: act.Col, Target: act.Target}
	case DropColumn:
		return ActionSpec{Kind: KindDropColumn, Column: act.Col}
	case TrimWhitespace:
		return ActionSpec{Kind: KindTrimWhitespace, Column: act.Col}
	case Lowercase:
		return ActionSpec{Kind: KindLowercase, Column: act.Col}
	case Uppercase:
		return ActionSpec{Kind: KindUppercase, Column: act.Col}
	case StripNonAlnum:
		return ActionSpec{Kind: KindStripNonAlnum, Column: act.Col}
	case CapitalizeWords:
		return ActionSpec{Kind: KindCapitalizeWords, Column: act.Col}
	case ReplaceSubstring:
		return ActionSpec{Kind: KindReplaceSubstring, Column: act.Col, Find: act.Find, Replace: act.Replace}
	case ExtractDatePart:
		return ActionSpec{Kind: KindExtractDatePart, Column: act.Col, Part: act.Part}
	case RoundNumbers:
		return ActionSpec{Kind: KindRoundNumbers, Column: act.Col, Places: act.Places}
	case ScaleMinMax:
		return ActionSpec{Kind: KindScaleMinMax, Column: act.Col, ScaleMin: act.Min, ScaleMax: act.Max}
	default:
		return ActionSpec{Kind: a.Kind(), Column: a.Column()}
	}
}
