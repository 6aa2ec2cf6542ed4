package serving

import (
	"strings"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/emirpasic/gods/sets/hashset"
)

// Media types on the invocation surface.
const (
	MediaTypeJSON          = "application/json"
	MediaTypeCSV           = "text/csv"
	MediaTypeJSONLines     = "application/jsonlines"
	MediaTypeJSONLinesText = "application/jsonlines;data=text"

	mediaTypeAny = "*/*"
)

// validAcceptSet is the fixed allow-list of response formats. Read-only after
// init, safe for concurrent lookups.
var validAcceptSet = hashset.New(MediaTypeCSV, MediaTypeJSONLines, MediaTypeJSONLinesText)

// ResolveAccept resolves the effective response format from the request header,
// the configured process-wide default, and the allow-list. Blank and wildcard
// headers defer to the default; an empty default falls back to delimited text.
// Pure function of its input plus read-only config; idempotent on already
// resolved values.
func (h *Handler) ResolveAccept(acceptHeader string) (string, error) {
	acceptVal := strings.TrimSpace(acceptHeader)
	if acceptVal == "" || acceptVal == mediaTypeAny {
		acceptVal = h.defaultAccept
	}
	if acceptVal != "" && !validAcceptSet.Contains(acceptVal) {
		return "", &errors.InvalidAcceptTypeError{
			ErrorMsg: "accept value passed via request or environment variable is not valid: " + acceptVal,
		}
	}
	if acceptVal == "" {
		return MediaTypeCSV, nil
	}
	return acceptVal, nil
}
