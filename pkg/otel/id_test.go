// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_Unmarshal(t *testing.T) {
	for _, x := range []struct {
		name string
		data string
		want ID
	}{
		{"hex string", `"5b8efff798038103d269b633813fc60c"`, "5b8efff798038103d269b633813fc60c"},
		{"string passed through", `"EEE"`, "EEE"},
		{"byte array", `[171,205]`, "abcd"},
		{"empty array", `[]`, ""},
		{"empty string", `""`, ""},
	} {
		t.Run(x.name, func(t *testing.T) {
			var id ID
			if assert.NoError(t, json.Unmarshal([]byte(x.data), &id)) {
				assert.Equal(t, x.want, id)
			}
		})
	}
}

func TestID_Unmarshal_invalid(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`[256]`), &id))
	assert.Error(t, json.Unmarshal([]byte(`42`), &id))
}
