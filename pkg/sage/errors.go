package sage

import (
	"errors"
	"fmt"
)

// ParseError is the base error type for decoding errors.
type ParseError struct {
	Message string
	Offset  *int
}

func (e *ParseError) Error() string {
	if e.Offset != nil {
		return fmt.Sprintf("%s at offset 0x%X", e.Message, *e.Offset)
	}
	return e.Message
}

// ErrorKind classifies a decode failure.
type ErrorKind uint8

const (
	KindIO ErrorKind = iota + 1
	KindUnsupportedVariant
	KindBadHeader
	KindMarkerNotFound
	KindTruncatedHeader
	KindMalformedSettings
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindUnsupportedVariant:
		return "UnsupportedVariant"
	case KindBadHeader:
		return "BadHeader"
	case KindMarkerNotFound:
		return "MarkerNotFound"
	case KindTruncatedHeader:
		return "TruncatedHeader"
	case KindMalformedSettings:
		return "MalformedSettingsBlock"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is. A *DecodeError matches the sentinel of its Kind.
var (
	ErrIO                 = errors.New("sage: replay bytes could not be read")
	ErrUnsupportedVariant = errors.New("sage: unsupported replay variant")
	ErrBadHeader          = errors.New("sage: bad replay header")
	ErrMarkerNotFound     = errors.New("sage: marker not found")
	ErrTruncatedHeader    = errors.New("sage: truncated header")
	ErrMalformedSettings  = errors.New("sage: malformed settings block")
)

var kindSentinels = map[ErrorKind]error{
	KindIO:                 ErrIO,
	KindUnsupportedVariant: ErrUnsupportedVariant,
	KindBadHeader:          ErrBadHeader,
	KindMarkerNotFound:     ErrMarkerNotFound,
	KindTruncatedHeader:    ErrTruncatedHeader,
	KindMalformedSettings:  ErrMalformedSettings,
}

// Stage names the pipeline step a decode failed in.
type Stage uint8

const (
	StageSource Stage = iota
	StageVariant
	StageHeader
	StageStrings
	StageTimestamp
	StageSettings
	StageVersion
	StageFooter
)

func (s Stage) String() string {
	switch s {
	case StageSource:
		return "source"
	case StageVariant:
		return "variant"
	case StageHeader:
		return "header"
	case StageStrings:
		return "strings"
	case StageTimestamp:
		return "timestamp"
	case StageSettings:
		return "settings"
	case StageVersion:
		return "version"
	case StageFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// DecodeError is returned for every fatal decode failure.
type DecodeError struct {
	ParseError
	Kind    ErrorKind
	Stage   Stage
	Variant Variant // not Valid() when the failure precedes detection
	Err     error
}

func (e *DecodeError) Error() string {
	msg := "sage: " + e.Stage.String() + ": " + e.ParseError.Error()
	if e.Variant.Valid() {
		msg += " (" + e.Variant.Token() + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the sentinel of e's Kind.
func (e *DecodeError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

const variantUndetected = numVariants

// Helper functions for creating errors

func newDecodeError(kind ErrorKind, msg string, offset *int) *DecodeError {
	return &DecodeError{
		ParseError: ParseError{Message: msg, Offset: offset},
		Kind:       kind,
		Variant:    variantUndetected,
	}
}

func newIOError(err error) *DecodeError {
	e := newDecodeError(KindIO, "reading replay", new(int))
	e.Stage = StageSource
	e.Err = err
	return e
}

func newUnsupportedVariantError(token string) *DecodeError {
	e := newDecodeError(KindUnsupportedVariant, fmt.Sprintf("unsupported replay variant %q", token), new(int))
	e.Stage = StageVariant
	return e
}

// The magic always sits at the start of the file.
func newBadHeaderError(probe []byte) *DecodeError {
	return newDecodeError(KindBadHeader, fmt.Sprintf("invalid header magic: got %q", probe), new(int))
}

func newMarkerNotFoundError(marker string, offset int) *DecodeError {
	return newDecodeError(KindMarkerNotFound, fmt.Sprintf("marker %q not found", marker), &offset)
}

func newTruncatedHeaderError(msg string, offset int) *DecodeError {
	return newDecodeError(KindTruncatedHeader, msg, &offset)
}

func newMalformedSettingsError(msg string) *DecodeError {
	return newDecodeError(KindMalformedSettings, msg, nil)
}

// atStage stamps the stage and variant onto a *DecodeError, and pos when the
// error carries no offset of its own. Other errors are reported as truncation
// at pos, which is the only way a bounded read can fail.
func atStage(err error, stage Stage, v Variant, pos int) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		de = newTruncatedHeaderError("unexpected end of replay", pos)
		de.Err = err
	}
	if de.Offset == nil {
		de.Offset = &pos
	}
	de.Stage = stage
	de.Variant = v
	return de
}
