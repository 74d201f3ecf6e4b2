package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuesOf(entries ...Entry) *Values {
	v := &Values{}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

func TestValuesKeepInsertionOrder(t *testing.T) {
	v := valuesOf(Entry{"b", 1}, Entry{"a", 2}, Entry{"c", 3})

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2,"c":3}`, string(data))
}

func TestValuesSetReplacesVariant(t *testing.T) {
	v := valuesOf(Entry{"first", 1}, Entry{"myKey", 2}, Entry{"last", 3})

	v.Set("MYKEY", 4)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []Entry{{"first", 1}, {"last", 3}, {"MYKEY", 4}}, v.Entries())

	e, ok := v.Get("mykey")
	require.True(t, ok)
	assert.Equal(t, "MYKEY", e.Key)

	last, ok := v.Get("LAST")
	require.True(t, ok)
	assert.Equal(t, 3, last.Value)
}

func TestValuesDelete(t *testing.T) {
	v := valuesOf(Entry{"a", 1}, Entry{"b", 2})

	assert.True(t, v.Delete("A"))
	assert.False(t, v.Delete("a"))
	_, ok := v.Get("a")
	assert.False(t, ok)
	b, ok := v.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, b.Value)
}

func TestValuesUnmarshal(t *testing.T) {
	v := &Values{}
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "ratio": 0.5, "name": "x", "Z": 2}`), v))

	assert.Equal(t, []Entry{{"ratio", 0.5}, {"name", "x"}, {"Z", 2}}, v.Entries())

	nulls := &Values{}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": null, "A": null}`), nulls))
	assert.Equal(t, 0, nulls.Len())

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &Values{}))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &Values{}))
}

func TestNilValues(t *testing.T) {
	var v *Values
	assert.Equal(t, 0, v.Len())
	_, ok := v.Get("a")
	assert.False(t, ok)
	assert.Empty(t, v.Map())
}
