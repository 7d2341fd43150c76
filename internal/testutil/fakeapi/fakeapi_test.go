package fakeapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsHaveNestedFeatures(t *testing.T) {
	records := Records(3)
	require.Len(t, records, 3)

	value, ok := records[0].Feature("feature1")
	require.True(t, ok)
	assert.InDelta(t, 5.1, value, 1e-9)

	target, ok := records[0].Target()
	require.True(t, ok)
	assert.Equal(t, "versicolor", target.String())
	assert.Equal(t, "1", records[0].ID())
}

func TestFailWithOverridesRoute(t *testing.T) {
	service, root := Start(t)
	service.FailWith("GET /api/storage/data", http.StatusBadGateway, "bad gateway")

	resp, err := http.Get(root + "/storage/data")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, 1, service.Calls("GET /api/storage/data"))

	service.Recover("GET /api/storage/data")
	resp, err = http.Get(root + "/storage/data")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSaveAppendsRecords(t *testing.T) {
	service, root := Start(t)

	body := `{"data":[{"id":1,"features":{"feature1":1.5,"target":"setosa"}}]}`
	resp, err := http.Post(root+"/storage/data", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, service.Stored(), 1)
	assert.Equal(t, "1", service.Stored()[0].ID())
}
