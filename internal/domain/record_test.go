package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataRecordReadsNestedFeatures(t *testing.T) {
	t.Parallel()

	record, err := ParseDataRecord([]byte(`{"id":"r-1","features":{"feature1":1.5,"feature2":2,"target":"setosa"},"timestamp":"2026-02-14T11:00:00"}`))
	require.NoError(t, err)

	assert.Equal(t, "r-1", record.ID())
	assert.Equal(t, "2026-02-14T11:00:00", record.Timestamp())

	value, ok := record.Feature("feature1")
	require.True(t, ok)
	assert.Equal(t, 1.5, value)

	_, ok = record.Feature("feature4")
	assert.False(t, ok)

	target, ok := record.Target()
	require.True(t, ok)
	assert.Equal(t, Label("setosa"), target)
}

func TestDataRecordReadsFlatRows(t *testing.T) {
	t.Parallel()

	record, err := ParseDataRecord([]byte(`{"id":3,"feature1":5.1,"feature2":3.5,"feature3":null,"target":0}`))
	require.NoError(t, err)

	assert.Equal(t, "3", record.ID())
	value, ok := record.Feature("feature2")
	require.True(t, ok)
	assert.Equal(t, 3.5, value)

	_, ok = record.Feature("feature3")
	assert.False(t, ok)

	target, ok := record.Target()
	require.True(t, ok)
	assert.Equal(t, Label("0"), target)

	assert.Equal(t, `{"feature1":5.1,"feature2":3.5,"feature3":null}`, record.FeaturesJSON())
}

func TestDataRecordRoundTripsUnknownFields(t *testing.T) {
	t.Parallel()

	raw := `{"id":1,"extra":{"deep":[1,2,3]},"features":{"feature1":1}}`
	record, err := ParseDataRecord([]byte(raw))
	require.NoError(t, err)

	encoded, err := json.Marshal([]DataRecord{record})
	require.NoError(t, err)
	assert.JSONEq(t, "["+raw+"]", string(encoded))
}

func TestDataRecordRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := ParseDataRecord([]byte(`[1,2]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode data record")
}

func TestLabelDecodesStringsAndNumbers(t *testing.T) {
	t.Parallel()

	var labels []Label
	require.NoError(t, json.Unmarshal([]byte(`["A",1,2.5,true,null]`), &labels))
	assert.Equal(t, []Label{"A", "1", "2.5", "true", ""}, labels)
}

func TestFeatureEncodesNonFiniteAsNull(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal([4]Feature{1, Feature(math.NaN()), Feature(math.Inf(1)), 2.25})
	require.NoError(t, err)
	assert.Equal(t, `[1,null,null,2.25]`, string(encoded))
	assert.False(t, Feature(math.NaN()).IsNumber())
	assert.True(t, Feature(0).IsNumber())
}

func TestNewBatchRejectsEmptyAndCopies(t *testing.T) {
	t.Parallel()

	_, ok := NewBatch(nil)
	assert.False(t, ok)

	first, err := ParseDataRecord([]byte(`{"id":1}`))
	require.NoError(t, err)
	second, err := ParseDataRecord([]byte(`{"id":2}`))
	require.NoError(t, err)

	records := []DataRecord{first}
	batch, ok := NewBatch(records)
	require.True(t, ok)

	records[0] = second
	assert.Equal(t, "1", batch.Records()[0].ID())
	assert.Equal(t, 1, batch.Len())
}
