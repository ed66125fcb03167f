package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIndex is an Index over a fixed candidate list.
type fakeIndex struct {
	docs       []Document
	queryErr   error
	queryCalls int
	lastQuery  CandidateQuery
}

func (f *fakeIndex) QueryCandidates(_ context.Context, query CandidateQuery) ([]Document, string, error) {
	f.queryCalls++
	f.lastQuery = query
	if f.queryErr != nil {
		return nil, "", f.queryErr
	}
	return f.docs, "resolved-query", nil
}

func (f *fakeIndex) GetDocument(_ context.Context, fileID string) (Document, error) {
	for _, doc := range f.docs {
		if doc.ID == fileID {
			return doc, nil
		}
	}
	return Document{}, fmt.Errorf("file %s not found", fileID)
}

// fakeStore is a DocumentStore over in-memory content.
type fakeStore struct {
	contents map[string][]byte
	exports  map[string][]byte
	errs     map[string]error
}

func (f *fakeStore) Export(_ context.Context, fileID, _ string) ([]byte, error) {
	if err := f.errs[fileID]; err != nil {
		return nil, err
	}
	data, ok := f.exports[fileID]
	if !ok {
		return nil, fmt.Errorf("no export for %s", fileID)
	}
	return data, nil
}

func (f *fakeStore) Download(_ context.Context, fileID string) ([]byte, error) {
	if err := f.errs[fileID]; err != nil {
		return nil, err
	}
	data, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("no content for %s", fileID)
	}
	return data, nil
}

func textDoc(id, name string) Document {
	return Document{
		ID:           id,
		Name:         name,
		MimeType:     "text/plain",
		CreatedTime:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		ModifiedTime: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestSearchRejectsEmptyTerm(t *testing.T) {
	index := &fakeIndex{}
	engine := NewEngine(index, &fakeStore{})

	for _, term := range []string{"", "   ", "\t\n"} {
		_, err := engine.Search(context.Background(), Request{Term: term})
		assert.ErrorIs(t, err, ErrEmptyTerm)
	}

	// Validation happens before any remote call.
	assert.Zero(t, index.queryCalls)
}

func TestSearchEndToEnd(t *testing.T) {
	doc := textDoc("f1", "invoice.txt")
	index := &fakeIndex{docs: []Document{doc}}
	store := &fakeStore{contents: map[string][]byte{
		"f1": []byte("Invoice #42 due"),
	}}
	engine := NewEngine(index, store)

	resp, err := engine.Search(context.Background(), Request{Term: "invoice"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalMatches)
	assert.Equal(t, "invoice", resp.SearchTerm)
	assert.Equal(t, "resolved-query", resp.Query)

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, "f1", result.FileID)
	assert.Equal(t, "invoice.txt", result.FileName)
	assert.Equal(t, 1, result.MatchCount)
	require.Len(t, result.Snippets, 1)
	assert.Contains(t, result.Snippets[0].Text, "Invoice #42")
}

func TestSearchPerDocumentIsolation(t *testing.T) {
	docA := textDoc("a", "broken.txt")
	docB := textDoc("b", "working.txt")
	index := &fakeIndex{docs: []Document{docA, docB}}
	store := &fakeStore{
		contents: map[string][]byte{"b": []byte("this one matches the term")},
		errs:     map[string]error{"a": errors.New("transport failure")},
	}
	engine := NewEngine(index, store)

	resp, err := engine.Search(context.Background(), Request{Term: "matches"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "b", resp.Results[0].FileID)
	assert.Equal(t, 1, resp.TotalMatches)
}

func TestSearchQueryFailureIsFatal(t *testing.T) {
	index := &fakeIndex{queryErr: errors.New("remote index down")}
	engine := NewEngine(index, &fakeStore{})

	_, err := engine.Search(context.Background(), Request{Term: "anything"})
	assert.Error(t, err)
}

func TestSearchLowercasesQueryTerm(t *testing.T) {
	index := &fakeIndex{}
	engine := NewEngine(index, &fakeStore{})

	_, err := engine.Search(context.Background(), Request{Term: "Invoice"})
	require.NoError(t, err)
	assert.Equal(t, "invoice", index.lastQuery.Term)

	_, err = engine.Search(context.Background(), Request{Term: "Invoice", CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, "Invoice", index.lastQuery.Term)
}

func TestSearchAppliesDefaults(t *testing.T) {
	index := &fakeIndex{}
	engine := NewEngine(index, &fakeStore{})

	_, err := engine.Search(context.Background(), Request{Term: "x"})
	require.NoError(t, err)

	assert.Equal(t, 50, index.lastQuery.MaxResults)
	assert.Contains(t, index.lastQuery.MimeTypes, "application/pdf")
	assert.Contains(t, index.lastQuery.MimeTypes, "text/plain")
}

func TestSearchExcludesNonMatchingDocuments(t *testing.T) {
	index := &fakeIndex{docs: []Document{textDoc("a", "a.txt"), textDoc("b", "b.txt")}}
	store := &fakeStore{contents: map[string][]byte{
		"a": []byte("nothing relevant here"),
		"b": []byte("the needle is here"),
	}}
	engine := NewEngine(index, store)

	resp, err := engine.Search(context.Background(), Request{Term: "needle"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "b", resp.Results[0].FileID)
}

func TestSearchGoogleDocUsesExport(t *testing.T) {
	doc := Document{ID: "g1", Name: "Notes", MimeType: "application/vnd.google-apps.document"}
	index := &fakeIndex{docs: []Document{doc}}
	store := &fakeStore{exports: map[string][]byte{
		"g1": []byte("exported doc body with needle inside"),
	}}
	engine := NewEngine(index, store)

	resp, err := engine.Search(context.Background(), Request{Term: "needle"})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "g1", resp.Results[0].FileID)
}

func TestSearchInFileZeroMatchesIsValid(t *testing.T) {
	doc := textDoc("f1", "notes.txt")
	index := &fakeIndex{docs: []Document{doc}}
	store := &fakeStore{contents: map[string][]byte{"f1": []byte("nothing to see")}}
	engine := NewEngine(index, store)

	result, err := engine.SearchInFile(context.Background(), "f1", "missing", false, false, 0)
	require.NoError(t, err)

	assert.Equal(t, "f1", result.FileID)
	assert.False(t, result.HasMatches)
	assert.Zero(t, result.MatchCount)
	assert.Empty(t, result.Snippets)
}

func TestSearchInFileMatches(t *testing.T) {
	doc := textDoc("f1", "notes.txt")
	index := &fakeIndex{docs: []Document{doc}}
	store := &fakeStore{contents: map[string][]byte{"f1": []byte("alpha beta alpha")}}
	engine := NewEngine(index, store)

	result, err := engine.SearchInFile(context.Background(), "f1", "alpha", false, false, 0)
	require.NoError(t, err)

	assert.True(t, result.HasMatches)
	assert.Equal(t, 2, result.MatchCount)
	assert.Len(t, result.Snippets, 2)
}

func TestSearchInFileNotFoundIsFatal(t *testing.T) {
	engine := NewEngine(&fakeIndex{}, &fakeStore{})

	_, err := engine.SearchInFile(context.Background(), "missing", "term", false, false, 0)
	assert.Error(t, err)
}

func TestSearchInFileRejectsEmptyTerm(t *testing.T) {
	engine := NewEngine(&fakeIndex{}, &fakeStore{})

	_, err := engine.SearchInFile(context.Background(), "f1", "  ", false, false, 0)
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestSearchInFileExtractionFailureIsZeroMatches(t *testing.T) {
	doc := textDoc("f1", "broken.txt")
	index := &fakeIndex{docs: []Document{doc}}
	store := &fakeStore{errs: map[string]error{"f1": errors.New("download failed")}}
	engine := NewEngine(index, store)

	result, err := engine.SearchInFile(context.Background(), "f1", "term", false, false, 0)
	require.NoError(t, err)

	assert.False(t, result.HasMatches)
	assert.Zero(t, result.MatchCount)
}

func TestSearchUnsupportedMimeTypeIsZeroMatches(t *testing.T) {
	doc := Document{ID: "img", Name: "photo.png", MimeType: "image/png"}
	index := &fakeIndex{docs: []Document{doc}}
	engine := NewEngine(index, &fakeStore{})

	resp, err := engine.Search(context.Background(), Request{Term: "anything"})
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.TotalMatches)
}
