package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{Username: "a", Password: []byte("b")}.Validate())
	assert.ErrorIs(t, Credentials{Username: "a"}.Validate(), ErrEmptyCredentials)
	assert.ErrorIs(t, Credentials{Password: []byte("b")}.Validate(), ErrEmptyCredentials)
}

func TestCredentials_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "plain", password: "secret", want: `{"username":"alice","password":"secret"}`},
		{name: "quotes and backslash", password: `a"b\c`, want: `{"username":"alice","password":"a\"b\\c"}`},
		{name: "control characters", password: "tab\there\n\x01", want: `{"username":"alice","password":"tab\there\n\u0001"}`},
		{name: "non-ascii kept as is", password: "пароль🦊", want: `{"username":"alice","password":"пароль🦊"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Credentials{Username: "alice", Password: []byte(tt.password)}

			got, err := c.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			var back Credentials
			require.NoError(t, json.Unmarshal(got, &back))
			assert.Equal(t, c, back)
		})
	}
}

func TestCredentials_MarshalJSON_InvalidUTF8(t *testing.T) {
	_, err := Credentials{Username: "alice", Password: []byte{0xff, 0xfe}}.MarshalJSON()
	require.Error(t, err)
}

func TestCredentials_StringHidesPassword(t *testing.T) {
	c := Credentials{Username: "alice", Password: []byte("secret")}
	assert.NotContains(t, fmt.Sprint(c), "secret")
	assert.Contains(t, fmt.Sprint(c), "alice")
}
