package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntheticIDReversible(t *testing.T) {
	cases := map[ActivityType]string{
		ActivityTypeCustomer:      "1723456789000",
		ActivityTypeDocumentation: "64a000000000000000000001",
		ActivityTypeTraining:      "local-abc",
		ActivityTypePresales:      "local-def",
		ActivityTypeScheduler:     "64a000000000000000000002",
	}

	for typ, nativeID := range cases {
		id := SyntheticID(typ, nativeID)
		ref, err := ParseSyntheticID(id)
		require.NoError(t, err)
		require.Equal(t, typ, ref.Type)
		require.Equal(t, nativeID, ref.NativeID)
	}
}

func TestParseSyntheticIDRejectsUnknownPrefix(t *testing.T) {
	_, err := ParseSyntheticID("bogus-123")
	require.Error(t, err)

	_, err = ParseSyntheticID("")
	require.Error(t, err)

	// 前缀后必须有原生ID
	_, err = ParseSyntheticID("cust-")
	require.Error(t, err)
}

func TestClassifyNativeID(t *testing.T) {
	// local/test子串或含非十六进制字符的ID视为本地
	require.Equal(t, OriginLocal, ClassifyNativeID("local-9f1c"))
	require.Equal(t, OriginLocal, ClassifyNativeID("test-entry"))
	require.Equal(t, OriginLocal, ClassifyNativeID("z123"))

	// 十六进制/纯数字ID视为远端
	require.Equal(t, OriginRemote, ClassifyNativeID("64a000000000000000000001"))
	require.Equal(t, OriginRemote, ClassifyNativeID("1723456789000"))
}

func TestEmployeeFullName(t *testing.T) {
	require.Equal(t, "Jo Lee", Employee{FirstName: "Jo", LastName: "Lee"}.FullName())
	require.Equal(t, "Jo", Employee{FirstName: "Jo"}.FullName())
	require.Equal(t, "", Employee{}.FullName())
}
