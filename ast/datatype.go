package ast

import "github.com/go-sqltoast/sqltoast/token"

// DataType is implemented by every data type descriptor variant
// (character string, national character string, bit string, exact
// numeric, approximate numeric, datetime, interval).
type DataType interface {
	Node
	dataTypeNode()
}

// CharacterStringType covers CHAR/CHARACTER/VARCHAR, including the
// CHAR VARYING spelling which collapses to VARCHAR.
type CharacterStringType struct {
	SpanVal      token.Span
	Varying      bool
	Length       *int
	CharacterSet *Identifier
}

func (t *CharacterStringType) Span() token.Span { return t.SpanVal }
func (*CharacterStringType) dataTypeNode()       {}

// NationalCharacterStringType covers NATIONAL CHAR[ACTER]/NCHAR, including
// the VARYING spelling which collapses to NVARCHAR.
type NationalCharacterStringType struct {
	SpanVal token.Span
	Varying bool
	Length  *int
}

func (t *NationalCharacterStringType) Span() token.Span { return t.SpanVal }
func (*NationalCharacterStringType) dataTypeNode()       {}

// BitStringType covers BIT [VARYING] ( length ).
type BitStringType struct {
	SpanVal token.Span
	Varying bool
	Length  int
}

func (t *BitStringType) Span() token.Span { return t.SpanVal }
func (*BitStringType) dataTypeNode()       {}

// ExactNumericKind distinguishes the exact numeric spellings.
type ExactNumericKind int

const (
	ExactNumericInteger ExactNumericKind = iota
	ExactNumericSmallInt
	ExactNumericNumeric
)

// ExactNumericType covers INT/INTEGER, SMALLINT, and NUMERIC/DEC/DECIMAL
// with an optional (precision[,scale]).
type ExactNumericType struct {
	SpanVal   token.Span
	Kind      ExactNumericKind
	Precision *int
	Scale     *int
}

func (t *ExactNumericType) Span() token.Span { return t.SpanVal }
func (*ExactNumericType) dataTypeNode()       {}

// ApproximateNumericKind distinguishes FLOAT/REAL/DOUBLE PRECISION.
type ApproximateNumericKind int

const (
	ApproximateNumericFloat ApproximateNumericKind = iota
	ApproximateNumericReal
	ApproximateNumericDouble
)

// ApproximateNumericType covers FLOAT(precision), REAL (equivalent to
// FLOAT(24)), and DOUBLE PRECISION.
type ApproximateNumericType struct {
	SpanVal   token.Span
	Kind      ApproximateNumericKind
	Precision *int
}

func (t *ApproximateNumericType) Span() token.Span { return t.SpanVal }
func (*ApproximateNumericType) dataTypeNode()       {}

// DatetimeKind distinguishes DATE/TIME/TIMESTAMP.
type DatetimeKind int

const (
	DatetimeDate DatetimeKind = iota
	DatetimeTime
	DatetimeTimestamp
)

// DatetimeType covers DATE, TIME[(precision)] [WITH TIME ZONE], and
// TIMESTAMP[(precision)] [WITH TIME ZONE].
type DatetimeType struct {
	SpanVal      token.Span
	Kind         DatetimeKind
	Precision    *int
	WithTimeZone bool
}

func (t *DatetimeType) Span() token.Span { return t.SpanVal }
func (*DatetimeType) dataTypeNode()       {}

// IntervalField identifies a single field of an INTERVAL qualifier.
type IntervalField int

const (
	IntervalYear IntervalField = iota
	IntervalMonth
	IntervalDay
	IntervalHour
	IntervalMinute
	IntervalSecond
)

// IntervalType covers INTERVAL <field>, with an optional precision on a
// trailing SECOND field.
type IntervalType struct {
	SpanVal         token.Span
	Field           IntervalField
	SecondPrecision *int
}

func (t *IntervalType) Span() token.Span { return t.SpanVal }
func (*IntervalType) dataTypeNode()       {}
