package nba

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigMap(t *testing.T) {
	doc := map[string]interface{}{
		"league": map[string]interface{}{
			"standard": map[string]interface{}{
				"teams": []interface{}{},
			},
		},
	}

	std, err := digMap(doc, "league", "standard")
	require.NoError(t, err)
	assert.Contains(t, std, "teams")
}

func TestDigMap_MissingKey(t *testing.T) {
	doc := map[string]interface{}{
		"league": map[string]interface{}{},
	}

	_, err := digMap(doc, "league", "standard", "conference")
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "league.standard", fe.Field)
	assert.Equal(t, `nba: response field "league.standard" missing or malformed`, fe.Error())
}

func TestDigMap_WrongType(t *testing.T) {
	doc := map[string]interface{}{"league": "not an object"}

	_, err := digMap(doc, "league")

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "league", fe.Field)
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{"tricode": "LAL", "teamId": 42.0}

	s, err := getString(m, "tricode")
	require.NoError(t, err)
	assert.Equal(t, "LAL", s)

	_, err = getString(m, "teamId")
	assert.Error(t, err)

	_, err = getString(m, "missing")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	m := map[string]interface{}{"isNBAFranchise": true, "name": "x"}

	b, err := getBool(m, "isNBAFranchise")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = getBool(m, "name")
	assert.Error(t, err)
}

func TestGetArray(t *testing.T) {
	m := map[string]interface{}{
		"games": []interface{}{"a", "b"},
		"links": map[string]interface{}{},
	}

	arr, err := getArray(m, "games")
	require.NoError(t, err)
	assert.Len(t, arr, 2)

	_, err = getArray(m, "links")
	assert.Error(t, err)
}

// The API serves most numbers as strings, so the numeric getters accept
// both forms.
func TestGetInt(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    int
		wantErr bool
	}{
		{"json number", 34.0, 34, false},
		{"string number", "34", 34, false},
		{"negative string", "-2", -2, false},
		{"not a number", "thirty", 0, true},
		{"wrong type", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]interface{}{"win": tt.value}
			got, err := getInt(m, "win")
			if tt.wantErr {
				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, "win", fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := getInt(map[string]interface{}{}, "win")
	assert.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    float64
		wantErr bool
	}{
		{"json number", 3.5, 3.5, false},
		{"string number", "3.5", 3.5, false},
		{"whole string", "0", 0, false},
		{"not a number", "n/a", 0, true},
		{"wrong type", []interface{}{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]interface{}{"gamesBehind": tt.value}
			got, err := getFloat(m, "gamesBehind")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetNumberString(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    string
		wantErr bool
	}{
		{"decimal string", "27.3", "27.3", false},
		{"percentage string", "0.475", "0.475", false},
		{"json number", 8.0, "8", false},
		{"json decimal", 12.1, "12.1", false},
		{"not numeric", "a lot", "", true},
		{"wrong type", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]interface{}{"value": tt.value}
			got, err := getNumberString(m, "value")
			if tt.wantErr {
				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
