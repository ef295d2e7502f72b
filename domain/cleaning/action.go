// Package cleaning defines the cleaning recipe model: a closed set of
// transformation actions and the ordered queue that holds them until they
// are committed to a new baseline dataset.
package cleaning

import (
	"goscrub/domain/core"
)

// Kind identifies one cleaning action variant
type Kind string

const (
	KindRemoveDuplicates Kind = "remove_duplicates"
	KindFillMissing      Kind = "fill_missing"
	KindChangeType       Kind = "change_type"
	KindDropColumn       Kind = "drop_column"
	KindTrimWhitespace   Kind = "trim_whitespace"
	KindLowercase        Kind = "lowercase"
	KindUppercase        Kind = "uppercase"
	KindStripNonAlnum    Kind = "strip_non_alnum"
	KindCapitalizeWords  Kind = "capitalize_words"
	KindReplaceSubstring Kind = "replace_substring"
	KindExtractDatePart  Kind = "extract_date_part"
	KindRoundNumbers     Kind = "round_numbers"
	KindScaleMinMax      Kind = "scale_min_max"
)

// FillStrategy selects how a fill-missing action computes replacements
type FillStrategy string

const (
	FillZero   FillStrategy = "zero"
	FillMean   FillStrategy = "mean"
	FillMedian FillStrategy = "median"
	FillCustom FillStrategy = "custom"
)

// TypeTarget is the destination type of a change-type action
type TypeTarget string

const (
	TargetInteger TypeTarget = "integer"
	TargetFloat   TypeTarget = "float"
	TargetText    TypeTarget = "text"
	TargetBoolean TypeTarget = "boolean"
	TargetDate    TypeTarget = "date"
)

// DatePart selects which component an extract-date-part action keeps
type DatePart string

const (
	PartYear    DatePart = "year"
	PartMonth   DatePart = "month"
	PartDay     DatePart = "day"
	PartWeekday DatePart = "weekday"
)

// Action is one immutable cleaning step. The variant set is closed: only
// types in this package implement it, so the executor can switch
// exhaustively over kinds.
type Action interface {
	ID() core.ActionID
	Kind() Kind
	// Column returns the target column name, or "" for dataset-wide actions.
	Column() string

	sealed()
}

type base struct {
	id core.ActionID
}

func newBase() base {
	return base{id: core.ActionID(core.NewID())}
}

func (b base) ID() core.ActionID { return b.id }
func (b base) sealed()           {}

// RemoveDuplicates drops later rows whose stable key matches an earlier row
type RemoveDuplicates struct {
	base
}

func (RemoveDuplicates) Kind() Kind     { return KindRemoveDuplicates }
func (RemoveDuplicates) Column() string { return "" }

// NewRemoveDuplicates creates a remove-duplicates action
func NewRemoveDuplicates() RemoveDuplicates {
	return RemoveDuplicates{base: newBase()}
}

// FillMissing writes a fill value into missing cells of one column
type FillMissing struct {
	base
	Col         string
	Strategy    FillStrategy
	CustomValue string
}

func (a FillMissing) Kind() Kind     { return KindFillMissing }
func (a FillMissing) Column() string { return a.Col }

// NewFillMissing creates a fill-missing action for one column
func NewFillMissing(column string, strategy FillStrategy, customValue string) (FillMissing, error) {
	if column == "" {
		return FillMissing{}, core.ErrEmptyColumn
	}
	switch strategy {
	case FillZero, FillMean, FillMedian, FillCustom:
	default:
		return FillMissing{}, core.ErrUnknownStrategy
	}
	return FillMissing{base: newBase(), Col: column, Strategy: strategy, CustomValue: customValue}, nil
}

// ChangeType coerces every cell of one column to a target type
type ChangeType struct {
	base
	Col    string
	Target TypeTarget
}

func (a ChangeType) Kind() Kind     { return KindChangeType }
func (a ChangeType) Column() string { return a.Col }

// NewChangeType creates a change-type action for one column
func NewChangeType(column string, target TypeTarget) (ChangeType, error) {
	if column == "" {
		return ChangeType{}, core.ErrEmptyColumn
	}
	switch target {
	case TargetInteger, TargetFloat, TargetText, TargetBoolean, TargetDate:
	default:
		return ChangeType{}, core.ErrUnknownTarget
	}
	return ChangeType{base: newBase(), Col: column, Target: target}, nil
}

// DropColumn marks every cell of one column as removed
type DropColumn struct {
	base
	Col string
}

func (a DropColumn) Kind() Kind     { return KindDropColumn }
func (a DropColumn) Column() string { return a.Col }

// NewDropColumn creates a drop-column action
func NewDropColumn(column string) (DropColumn, error) {
	if column == "" {
		return DropColumn{}, core.ErrEmptyColumn
	}
	return DropColumn{base: newBase(), Col: column}, nil
}

// TrimWhitespace trims leading and trailing whitespace in one column
type TrimWhitespace struct {
	base
	Col string
}

func (a TrimWhitespace) Kind() Kind     { return KindTrimWhitespace }
func (a TrimWhitespace) Column() string { return a.Col }

// NewTrimWhitespace creates a trim action
func NewTrimWhitespace(column string) (TrimWhitespace, error) {
	if column == "" {
		return TrimWhitespace{}, core.ErrEmptyColumn
	}
	return TrimWhitespace{base: newBase(), Col: column}, nil
}

// Lowercase lowercases text cells in one column
type Lowercase struct {
	base
	Col string
}

func (a Lowercase) Kind() Kind     { return KindLowercase }
func (a Lowercase) Column() string { return a.Col }

// NewLowercase creates a lowercase action
func NewLowercase(column string) (Lowercase, error) {
	if column == "" {
		return Lowercase{}, core.ErrEmptyColumn
	}
	return Lowercase{base: newBase(), Col: column}, nil
}

// Uppercase uppercases text cells in one column
type Uppercase struct {
	base
	Col string
}

func (a Uppercase) Kind() Kind     { return KindUppercase }
func (a Uppercase) Column() string { return a.Col }

// NewUppercase creates an uppercase action
func NewUppercase(column string) (Uppercase, error) {
	if column == "" {
		return Uppercase{}, core.ErrEmptyColumn
	}
	return Uppercase{base: newBase(), Col: column}, nil
}

// StripNonAlnum removes characters other than letters, digits, and spaces
type StripNonAlnum struct {
	base
	Col string
}

func (a StripNonAlnum) Kind() Kind     { return KindStripNonAlnum }
func (a StripNonAlnum) Column() string { return a.Col }

// NewStripNonAlnum creates a strip action
func NewStripNonAlnum(column string) (StripNonAlnum, error) {
	if column == "" {
		return StripNonAlnum{}, core.ErrEmptyColumn
	}
	return StripNonAlnum{base: newBase(), Col: column}, nil
}

// CapitalizeWords capitalizes the first letter of each word
type CapitalizeWords struct {
	base
	Col string
}

func (a CapitalizeWords) Kind() Kind     { return KindCapitalizeWords }
func (a CapitalizeWords) Column() string { return a.Col }

// NewCapitalizeWords creates a capitalize action
func NewCapitalizeWords(column string) (CapitalizeWords, error) {
	if column == "" {
		return CapitalizeWords{}, core.ErrEmptyColumn
	}
	return CapitalizeWords{base: newBase(), Col: column}, nil
}

// ReplaceSubstring performs a literal replace-all within one column
type ReplaceSubstring struct {
	base
	Col     string
	Find    string
	Replace string
}

func (a ReplaceSubstring) Kind() Kind     { return KindReplaceSubstring }
func (a ReplaceSubstring) Column() string { return a.Col }

// NewReplaceSubstring creates a replace action. The find text must be
// non-empty; an empty find would make replace-all a silent no-op.
func NewReplaceSubstring(column, find, replace string) (ReplaceSubstring, error) {
	if column == "" {
		return ReplaceSubstring{}, core.ErrEmptyColumn
	}
	if find == "" {
		return ReplaceSubstring{}, core.ErrEmptyFind
	}
	return ReplaceSubstring{base: newBase(), Col: column, Find: find, Replace: replace}, nil
}

// ExtractDatePart replaces date cells with one calendar component
type ExtractDatePart struct {
	base
	Col  string
	Part DatePart
}

func (a ExtractDatePart) Kind() Kind     { return KindExtractDatePart }
func (a ExtractDatePart) Column() string { return a.Col }

// NewExtractDatePart creates an extract-date-part action
func NewExtractDatePart(column string, part DatePart) (ExtractDatePart, error) {
	if column == "" {
		return ExtractDatePart{}, core.ErrEmptyColumn
	}
	switch part {
	case PartYear, PartMonth, PartDay, PartWeekday:
	default:
		return ExtractDatePart{}, core.ErrUnknownDatePart
	}
	return ExtractDatePart{base: newBase(), Col: column, Part: part}, nil
}

// RoundNumbers rounds numeric cells to a fixed number of decimal places
type RoundNumbers struct {
	base
	Col    string
	Places int
}

func (a RoundNumbers) Kind() Kind     { return KindRoundNumbers }
func (a RoundNumbers) Column() string { return a.Col }

// NewRoundNumbers creates a rounding action
func NewRoundNumbers(column string, places int) (RoundNumbers, error) {
	if column == "" {
		return RoundNumbers{}, core.ErrEmptyColumn
	}
	return RoundNumbers{base: newBase(), Col: column, Places: places}, nil
}

// ScaleMinMax normalizes numeric cells into [Min, Max]
type ScaleMinMax struct {
	base
	Col string
	Min float64
	Max float64
}

func (a ScaleMinMax) Kind() Kind     { return KindScaleMinMax }
func (a ScaleMinMax) Column() string { return a.Col }

// NewScaleMinMax creates a min-max scaling action. Scaling is not
// composable: a second scale on the same column would renormalize already
// normalized values, so the queue's redundancy rule forbids it.
func NewScaleMinMax(column string, min, max float64) (ScaleMinMax, error) {
	if column == "" {
		return ScaleMinMax{}, core.ErrEmptyColumn
	}
	return ScaleMinMax{base: newBase(), Col: column, Min: min, Max: max}, nil
}

// Describe returns a short human-readable label for UI display
func Describe(a Action) string {
	switch act := a.(type) {
	case RemoveDuplicates:
		return "Remove duplicate rows"
	case FillMissing:
		return "Fill missing values in " + act.Col
	case ChangeType:
		return "Change type of " + act.Col + " to " + string(act.Target)
	case DropColumn:
		return "Drop column " + act.Col
	case TrimWhitespace:
		return "Trim whitespace in " + act.Col
	case Lowercase:
		return "Lowercase " + act.Col
	case Uppercase:
		return "Uppercase " + act.Col
	case StripNonAlnum:
		return "Strip special characters in " + act.Col
	case CapitalizeWords:
		return "Capitalize words in " + act.Col
	case ReplaceSubstring:
		return "Replace \"" + act.Find + "\" in " + act.Col
	case ExtractDatePart:
		return "Extract " + string(act.Part) + " from " + act.Col
	case RoundNumbers:
		return "Round " + act.Col
	case ScaleMinMax:
		return "Scale " + act.Col
	default:
		return string(a.Kind())
	}
}
