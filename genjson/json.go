package genjson

import (
	"bytes"
	"encoding/json"

	"github.com/Invicton-Labs/go-stackerr"
)

func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, err
}

// UnmarshalStrict is like Unmarshal, but fails on object fields that
// have no matching field in T.
func UnmarshalStrict[T any](data []byte) (v T, err stackerr.Error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, stackerr.Wrap(err)
	}
	return v, nil
}
