package proxy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatter(t *testing.T) {
	assert.Equal(t, "*", NewFormatter("").Origin)
	assert.Equal(t, "https://maps.example.com", NewFormatter("https://maps.example.com").Origin)
}

func TestFormatter_Success(t *testing.T) {
	f := NewFormatter("https://maps.example.com")
	route, err := NewRoute(AddressSearch, testFetch("[]"))
	assert.NoError(t, err)

	response := f.Success(route, "[]")

	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, "[]", response.Body)
	assert.False(t, response.IsBase64Encoded)
	assert.Equal(t, map[string]string{
		"Access-Control-Allow-Origin": "https://maps.example.com",
		"Content-Type":                "application/json",
	}, response.Headers)
}

func TestFormatter_Success_headerOverride(t *testing.T) {
	f := NewFormatter("")
	route, err := testRegistry().Lookup("OPEN_STREET_VIEW")
	assert.NoError(t, err)

	response := f.Success(route, "data:image/jpeg;base64,AAAA")

	assert.Equal(t, 200, response.StatusCode)
	assert.True(t, response.IsBase64Encoded)
	assert.Equal(t, "image/jpeg", response.Headers["Content-Type"])
	assert.Equal(t, "*", response.Headers["Access-Control-Allow-Origin"])
}

func TestFormatter_Failure(t *testing.T) {
	f := NewFormatter("")

	cases := []struct {
		err    error
		status int
		body   string
	}{
		{Unauthorized(), 403, `{"message":"Forbidden Access"}`},
		{NotFound(""), 404, `{"message":"ApiKey  Not Valid"}`},
		{Upstream(OpenPlanning, errors.New(`GET api/applications.js?key=ptoken failed`)), 500, `{"message":"Internal Server Error"}`},
		{BadRequest(`Missing "q"`), 400, `{"message":"Missing \"q\""}`},
	}

	for _, c := range cases {
		response := f.Failure(c.err)

		assert.Equal(t, c.status, response.StatusCode)
		assert.Equal(t, c.body, response.Body)
		assert.False(t, response.IsBase64Encoded)
		assert.Equal(t, "application/json", response.Headers["Content-Type"])
		assert.Equal(t, "*", response.Headers["Access-Control-Allow-Origin"])
	}
}
