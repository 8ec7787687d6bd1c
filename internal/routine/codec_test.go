package routine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFieldNames(t *testing.T) {
	c := Catalog{{Name: "Morning", Tasks: []Task{{Name: "Stretch", Duration: 300}}}}

	got, err := Encode(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Morning","tasks":[{"name":"Stretch","time":300}]}]`, got)
}

func TestEncodeEmptyTasksAsArray(t *testing.T) {
	got, err := Encode(Catalog{{Name: "Empty"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Empty","tasks":[]}]`, got)

	got, err = Encode(Catalog{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

func TestEncodeNaNAsNull(t *testing.T) {
	got, err := Encode(Catalog{{Name: "R", Tasks: []Task{{Name: "Y", Duration: NaN}}}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"R","tasks":[{"name":"Y","time":null}]}]`, got)
}

func TestRoundTrip(t *testing.T) {
	c := sample()
	c[1].Tasks = append(c[1].Tasks, Task{Name: "Broken", Duration: NaN})

	s, err := Encode(c)
	require.NoError(t, err)

	back, err := Decode(s)
	require.NoError(t, err)
	assert.True(t, back.Equal(c), "got %+v", back)
}

func TestDecodeNull(t *testing.T) {
	c, err := Decode("null")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestDecodeMissingTasks(t *testing.T) {
	c, err := Decode(`[{"name":"Bare"}]`)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.NotNil(t, c[0].Tasks)
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`{`, `{"name":"x"}`, `[1,2]`, `"routines"`, `[{"name":"a","tasks":[{"name":"b","time":"5"}]}]`} {
		_, err := Decode(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestSecondsUnmarshal(t *testing.T) {
	var s Seconds
	require.NoError(t, json.Unmarshal([]byte(`90`), &s))
	assert.Equal(t, Seconds(90), s)

	require.NoError(t, json.Unmarshal([]byte(`90.7`), &s))
	assert.Equal(t, Seconds(90), s)

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.True(t, s.IsNaN())

	require.NoError(t, json.Unmarshal([]byte(`-5`), &s))
	assert.True(t, s.IsNaN())
}
