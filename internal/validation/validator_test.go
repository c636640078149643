package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tillihusky/plycast-plyt-converter/internal/types"
)

func validItem(guid string) types.PlyItem {
	return types.PlyItem{
		GUID:          guid,
		TCOut:         "00:00:10.000",
		OriginalTCOut: "00:00:10.000",
		FixState:      "False",
	}
}

func TestValidateClean(t *testing.T) {
	list := &types.PlyList{Items: []types.PlyItem{
		validItem("3f2504e0-4f89-11d3-9a0c-0305e82c3301"),
		validItem("ABCDEFGH-IJKL-MNOP-QRST-"),
	}}

	result := Validate(list)
	require.True(t, result.IsValid)
	require.Empty(t, result.Errors)
	require.Equal(t, 2, result.ItemsValidated)
}

func TestValidateGUIDWarnings(t *testing.T) {
	tests := []struct {
		name string
		guid string
		rule string
	}{
		{"short legacy id", "abc----", "guid_shape"},
		{"partial", "abcdefgh-ijk---", "guid_shape"},
		{"empty", "----", "guid_empty"},
		{"no dashes", "plainvalue", "guid_shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(&types.PlyList{Items: []types.PlyItem{validItem(tt.guid)}})
			require.True(t, result.IsValid, "warnings do not invalidate")
			require.Equal(t, 1, result.WarningCount)
			require.Len(t, result.Warnings(), 1)
			require.Equal(t, tt.rule, result.Warnings()[0].Rule)
			require.Equal(t, 1, result.Warnings()[0].ItemIndex)
			require.Nil(t, result.FirstError())
		})
	}
}

func TestValidateStructuralErrors(t *testing.T) {
	bad := validItem("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	bad.OriginalTCOut = "00:00:00.000"
	bad.CategoryGuid = "x"
	bad.FixState = "True"

	result := Validate(&types.PlyList{Items: []types.PlyItem{validItem("3f2504e0-4f89-11d3-9a0c-0305e82c3301"), bad}})
	require.False(t, result.IsValid)
	require.Equal(t, 3, result.ErrorCount)

	first := result.FirstError()
	require.NotNil(t, first)
	require.Equal(t, "original_tc_out", first.Rule)
	require.Equal(t, 2, first.ItemIndex)
	require.Contains(t, first.Error(), "[ERROR] Item 2, Field 'ORIGINAL_TC_OUT'")
}

func TestValidateNil(t *testing.T) {
	result := Validate(nil)
	require.True(t, result.IsValid)
	require.Zero(t, result.ItemsValidated)
}
