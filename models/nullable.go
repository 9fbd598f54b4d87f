// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// NullableString is an optional, nullable field of a partial update.
//
// Set is false when the JSON key is absent. A present key with a null
// value gives Set == true and Value == nil, which clears the column.
type NullableString struct {
	Set   bool
	Value *string
}

// NewNullableString returns a field that is present in the update.
// A nil value means an explicit null.
func NewNullableString(value *string) NullableString {
	return NullableString{Set: true, Value: value}
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
