package media

// Code classifies a media failure. Codes are stable strings so the
// presentation layer can switch on them and render a fallback.
type Code string

const (
	CodeInvalidURL      Code = "invalid-url"
	CodeUnsupportedHost Code = "unsupported-host"
	CodeInvalidID       Code = "invalid-id"

	// Reported by the presentation layer's own resource callbacks,
	// defined here so the taxonomy lives in one place.
	CodeImageLoadError Code = "image-load-error"
	CodeAudioLoadError Code = "audio-load-error"
)

// Error is a typed, user-displayable media failure. It is returned as
// a value, never panicked; callers are expected to render a fallback
// instead of the embed.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}
