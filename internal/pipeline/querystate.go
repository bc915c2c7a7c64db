package pipeline

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sosarder/savvysailorcruises.co.uk/internal/model"
)

// Query-string keys for shareable filter state.  Fields at their
// default value are omitted on encode and left untouched on decode, so
// a round trip reproduces every non-default field exactly.
const (
	keySearch    = "q"
	keyLine      = "line"
	keyCategory  = "cat"
	keyType      = "type"
	keyRoute     = "route"
	keyPort      = "port"
	keyRegion    = "region"
	keyMinNights = "minn"
	keyMaxNights = "maxn"
	keyMaxPPN    = "maxppn"
	keyIndicator = "ind"
	keySortCol   = "sort"
	keySortDir   = "dir"
)

// EncodeFilters serializes f into query parameters, one short key per
// non-default field.
func EncodeFilters(f FilterState) url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set(keySearch, strings.TrimSpace(f.Search))
	set(keyLine, f.CruiseLine)
	set(keyCategory, f.Category)
	set(keyType, f.Type)
	set(keyRoute, string(f.RouteType))
	set(keyPort, f.DeparturePort)
	set(keyRegion, f.Region)
	if f.MinNights > 0 {
		v.Set(keyMinNights, strconv.Itoa(f.MinNights))
	}
	if f.MaxNights > 0 {
		v.Set(keyMaxNights, strconv.Itoa(f.MaxNights))
	}
	if f.MaxPPN > 0 {
		v.Set(keyMaxPPN, strconv.FormatFloat(f.MaxPPN, 'f', -1, 64))
	}
	set(keyIndicator, f.Indicator)
	return v
}

// EncodeQuery is EncodeFilters plus the sort keys, rendered as a
// canonical query string.  The default sort is omitted like any other
// default.  url.Values.Encode keys are sorted, so equal states always
// produce identical strings.
func EncodeQuery(f FilterState, s SortState) string {
	v := EncodeFilters(f)
	if s.Column.Valid() && s != DefaultSort() {
		v.Set(keySortCol, string(s.Column))
		if !s.Ascending {
			v.Set(keySortDir, "desc")
		}
	}
	return v.Encode()
}

// DecodeFilters applies the known keys of v onto a default FilterState.
// Absent keys leave their field at the default; unparseable numerics
// decode as unset, never as zero bounds.
func DecodeFilters(v url.Values) FilterState {
	f := FilterState{}
	f.Search = strings.TrimSpace(v.Get(keySearch))
	f.CruiseLine = v.Get(keyLine)
	f.Category = v.Get(keyCategory)
	f.Type = v.Get(keyType)
	if rt := model.RouteType(v.Get(keyRoute)); rt.Valid() {
		f.RouteType = rt
	}
	f.DeparturePort = v.Get(keyPort)
	f.Region = v.Get(keyRegion)
	if n, err := strconv.Atoi(v.Get(keyMinNights)); err == nil && n > 0 {
		f.MinNights = n
	}
	if n, err := strconv.Atoi(v.Get(keyMaxNights)); err == nil && n > 0 {
		f.MaxNights = n
	}
	if n, err := strconv.ParseFloat(v.Get(keyMaxPPN), 64); err == nil && n > 0 {
		f.MaxPPN = n
	}
	f.Indicator = v.Get(keyIndicator)
	return f
}

// DecodeSort reads the sort keys of v, falling back to the default sort
// for unknown columns.  An explicit "dir=desc" flips direction; a new
// column otherwise starts ascending.
func DecodeSort(v url.Values) SortState {
	s := DefaultSort()
	if col := SortColumn(v.Get(keySortCol)); col.Valid() {
		s.Column = col
	}
	if strings.EqualFold(v.Get(keySortDir), "desc") {
		s.Ascending = false
	}
	return s
}
