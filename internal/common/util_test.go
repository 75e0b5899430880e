package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	require.Equal(t, make([]byte, 7), buf)
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestGenerateRandByteArray_Length(t *testing.T) {
	buf := GenerateRandByteArray(24)
	require.Len(t, buf, 24)
}

func TestGenerateRandByteArray_EntropyHint(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(32) results are identical; extremely unlikely")
	}
}
