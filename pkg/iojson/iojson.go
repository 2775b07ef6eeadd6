// Package iojson reads and writes JSON for command line input and output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// marshalFailure is written to ew when obj cannot be encoded. The message is
// escaped with json.Marshal so the output stays valid JSON.
func marshalFailure(jsonErr error) string {
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":"error marshaling output","data":{"json_error":%s}}`, errBytes)
}

// WriteWith writes obj to w as indented JSON. Encoding failures are reported
// to ew as a JSON error object.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, marshalFailure(err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
