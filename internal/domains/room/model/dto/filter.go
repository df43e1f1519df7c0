package dto

import (
	"net/url"
	"sort"
	"strings"

	"frontdesk/shared/failure"
)

const (
	FilterKeyType         = "type"
	FilterKeyStatus       = "status"
	FilterKeyViewType     = "viewType"
	FilterKeyMinPrice     = "minPrice"
	FilterKeyMaxPrice     = "maxPrice"
	FilterKeyMaxGuests    = "maxGuests"
	FilterKeyBedCount     = "bedCount"
	FilterKeyCheckInDate  = "checkInDate"
	FilterKeyCheckOutDate = "checkOutDate"
)

// recognizedFilterKeys enumerates every filter the upstream room search
// understands. Anything else is rejected at construction instead of
// being silently dropped.
var recognizedFilterKeys = map[string]struct{}{
	FilterKeyType:         {},
	FilterKeyStatus:       {},
	FilterKeyViewType:     {},
	FilterKeyMinPrice:     {},
	FilterKeyMaxPrice:     {},
	FilterKeyMaxGuests:    {},
	FilterKeyBedCount:     {},
	FilterKeyCheckInDate:  {},
	FilterKeyCheckOutDate: {},
}

// Filter is the tagged room-search configuration. Construct it with
// NewFilter; the zero value means unfiltered.
type Filter struct {
	values url.Values
}

// NewFilter builds a Filter from raw key/value pairs, rejecting unknown
// keys with a bad-request failure. Empty values are ignored.
func NewFilter(raw map[string]string) (Filter, error) {
	values := url.Values{}

	unknown := []string{}

	for key, value := range raw {
		if _, ok := recognizedFilterKeys[key]; !ok {
			unknown = append(unknown, key)

			continue
		}

		if value != "" {
			values.Set(key, value)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)

		return Filter{}, failure.BadRequestFromString("unrecognized room filter key(s): " + strings.Join(unknown, ", ")) //nolint:wrapcheck
	}

	return Filter{values: values}, nil
}

// FilterFromQuery builds a Filter from an HTTP query, considering only
// the recognized keys so pagination parameters can coexist on the same
// request.
func FilterFromQuery(query url.Values) Filter {
	values := url.Values{}

	for key := range recognizedFilterKeys {
		if value := query.Get(key); value != "" {
			values.Set(key, value)
		}
	}

	return Filter{values: values}
}

// Values returns the query representation sent to the upstream service.
func (f Filter) Values() url.Values {
	return f.values
}

// CacheKey returns a deterministic fragment for cache keying.
func (f Filter) CacheKey() string {
	return f.values.Encode()
}

// IsZero reports whether the filter carries no criteria.
func (f Filter) IsZero() bool {
	return len(f.values) == 0
}
