package utils

import (
	"bytes"
	encjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson indenta um valor (ou um []byte já serializado) para logs de debug
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			logrus.Debug("utils: error marshalling value for pretty print:", err)
			return ""
		}
	}

	var out bytes.Buffer
	if err := encjson.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
