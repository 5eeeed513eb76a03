package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryNormalize_Defaults(t *testing.T) {
	q := Query{}.Normalize()

	assert.Equal(t, DefaultKeywords, q.Keywords)
	assert.Equal(t, DefaultLocation, q.Location)
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultResultsPerPage, q.ResultsPerPage)
}

func TestQueryNormalize_KeepsExplicitValues(t *testing.T) {
	q := Query{Keywords: "data scientist", Location: "Berlin", Page: 3, ResultsPerPage: 5}.Normalize()

	assert.Equal(t, "data scientist", q.Keywords)
	assert.Equal(t, "Berlin", q.Location)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 5, q.ResultsPerPage)
}

func TestQueryNormalize_NegativeNumbersFallBack(t *testing.T) {
	q := Query{Page: -1, ResultsPerPage: -10}.Normalize()

	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultResultsPerPage, q.ResultsPerPage)
}
