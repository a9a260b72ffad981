package remote

import "fmt"

type FetchErrorKind int

const (
	KindNetwork FetchErrorKind = iota
	KindHTTPStatus
	KindInvalidImage
	KindIO
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http status"
	case KindInvalidImage:
		return "invalid image"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

type FetchError struct {
	Kind FetchErrorKind
	URL  string
	// StatusCode is set for KindHTTPStatus.
	StatusCode int
	// MIME is the sniffed content type for KindInvalidImage.
	MIME string
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case KindInvalidImage:
		if e.Err != nil {
			return fmt.Sprintf("fetch %s: not a png image: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("fetch %s: not a png image (detected %s)", e.URL, e.MIME)
	default:
		return fmt.Sprintf("fetch %s: %s error: %v", e.URL, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
