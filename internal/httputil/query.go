package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns a []string with the names of all filter struct
// fields that are set in the query parameters.
//
// This can be useful to distinguish an explicit zero value from an
// unset parameter without defining the filter fields as pointers.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if url.Query().Has(param) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}
