package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Is(t *testing.T) {
	fetchErr := fmt.Errorf("list sitemaps: %w", &FetchError{URL: "http://x", StatusCode: 404})
	assert.True(t, errors.Is(fetchErr, ErrFetch))
	assert.False(t, errors.Is(fetchErr, ErrParse))
	assert.Contains(t, fetchErr.Error(), "unexpected status: 404")

	cause := errors.New("unexpected EOF")
	parseErr := &ParseError{URL: "http://x", Err: cause}
	assert.True(t, errors.Is(parseErr, ErrParse))
	assert.True(t, errors.Is(parseErr, cause))

	var fe *FetchError
	assert.True(t, errors.As(fetchErr, &fe))
	assert.Equal(t, 404, fe.StatusCode)
}
