package util

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
)

func StructToJSONReader(data interface{}) io.Reader {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return bytes.NewReader(jsonBytes)
}
