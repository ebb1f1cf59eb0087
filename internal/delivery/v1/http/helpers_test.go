package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"599.99", 59999, true},
		{"600", 60000, true},
		{"0.01", 1, true},
		{"89.9", 8990, true},
		{"", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"12.999", 0, false},
		{"abc", 0, false},
	}

	for _, tc := range cases {
		cents, err := parsePriceToCents(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.cents, cents, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestBearerToken(t *testing.T) {
	withAuth := func(header string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		return r
	}

	assert.Equal(t, "abc123", bearerToken(withAuth("Bearer abc123")))
	assert.Equal(t, "", bearerToken(withAuth("Basic abc123")))
	assert.Equal(t, "", bearerToken(withAuth("")))
}
