package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vocabquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"Grade1": [ {"word":"apple","meaning":"a fruit"}, {"word":"dog","meaning":"an animal"} ],
	"Grade3": [],
	"Grade2": [ {"word":"river","meaning":"flowing water","level":2} ]
}`

func TestParse(t *testing.T) {
	bank, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Grade1", "Grade3", "Grade2"}, bank.GradeLabels())

	entries, err := bank.EntriesFor("Grade1")
	require.NoError(t, err)
	assert.Equal(t, []domain.WordEntry{
		{Word: "apple", Meaning: "a fruit"},
		{Word: "dog", Meaning: "an animal"},
	}, entries)

	empty, err := bank.EntriesFor("Grade3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "not json", input: "<html>404</html>"},
		{name: "top level array", input: `[{"word":"a","meaning":"b"}]`},
		{name: "grade value is object", input: `{"G1": {"word":"a","meaning":"b"}}`},
		{name: "grade value is null", input: `{"G1": null}`},
		{name: "entry is string", input: `{"G1": ["apple"]}`},
		{name: "entry is null", input: `{"G1": [null]}`},
		{name: "word not string", input: `{"G1": [{"word":1,"meaning":"b"}]}`},
		{name: "missing meaning", input: `{"G1": [{"word":"a"}]}`},
		{name: "truncated", input: `{"G1": [{"word":"a","meaning":"b"}]`},
		{name: "trailing data", input: `{"G1": []} {"G2": []}`},
		{name: "duplicate word", input: `{"G1": [{"word":"a","meaning":"b"},{"word":"a","meaning":"c"}]}`},
		{name: "duplicate grade", input: `{"G1": [], "G1": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
			assert.Nil(t, bank)
		})
	}
}

func TestFileSource_LoadWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	bank, err := NewFileSource(path).LoadWords(context.Background())
	require.NoError(t, err)
	assert.Len(t, bank.GradeLabels(), 3)

	_, err = NewFileSource(filepath.Join(dir, "missing.json")).LoadWords(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource_LoadWords(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedError bool
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   sampleDoc,
		},
		{
			name:          "not found",
			status:        http.StatusNotFound,
			body:          "not found",
			expectedError: true,
		},
		{
			name:          "malformed body",
			status:        http.StatusOK,
			body:          "{",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words.json", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			bank, err := NewHTTPSource(srv.URL + "/words.json").LoadWords(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, bank)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Grade1", "Grade3", "Grade2"}, bank.GradeLabels())
			}
		})
	}
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url).LoadWords(context.Background())
	assert.Error(t, err)
}
