package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name      string
		param     interface{}
		expected  []string
		expectErr bool
	}{
		{
			name:     "single string",
			param:    "file-1",
			expected: []string{"file-1"},
		},
		{
			name:     "array of strings",
			param:    []interface{}{"file-1", "file-2"},
			expected: []string{"file-1", "file-2"},
		},
		{
			name:      "nil parameter",
			param:     nil,
			expectErr: true,
		},
		{
			name:      "empty string",
			param:     "",
			expectErr: true,
		},
		{
			name:      "empty array",
			param:     []interface{}{},
			expectErr: true,
		},
		{
			name:      "array with empty element",
			param:     []interface{}{"file-1", ""},
			expectErr: true,
		},
		{
			name:      "array with non-string element",
			param:     []interface{}{"file-1", 42},
			expectErr: true,
		},
		{
			name:      "wrong type",
			param:     42,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringOrArray(tt.param, "fileIds")
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseStringOrArray() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestProcessBatch_IsolatesFailures(t *testing.T) {
	results := ProcessBatch([]string{"a", "b", "c"}, func(id string) (string, error) {
		if id == "b" {
			return "", errors.New("not found")
		}
		return fmt.Sprintf("ok-%s", id), nil
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Status != "success" || results[0].Result != "ok-a" {
		t.Errorf("results[0] = %+v, expected success", results[0])
	}
	if results[1].Status != "error" || results[1].Error != "not found" {
		t.Errorf("results[1] = %+v, expected error", results[1])
	}
	if results[2].Status != "success" {
		t.Errorf("results[2] = %+v, expected success after failed item", results[2])
	}
}

func TestProcessBatch_PreservesOrder(t *testing.T) {
	ids := []string{"z", "a", "m"}
	results := ProcessBatch(ids, func(id string) (string, error) {
		return id, nil
	})

	for i, id := range ids {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %q, expected %q", i, results[i].ID, id)
		}
	}
}

func TestFormatResults(t *testing.T) {
	results := []Result{
		{ID: "a", Status: "success", Result: "ok"},
		{ID: "b", Status: "error", Error: "boom"},
	}

	formatted := FormatResults(results)

	var br BatchResult
	if err := json.Unmarshal([]byte(formatted), &br); err != nil {
		t.Fatalf("formatted result is not valid JSON: %v", err)
	}
	if br.Total != 2 {
		t.Errorf("Total = %d, expected 2", br.Total)
	}
	if br.Successful != 1 {
		t.Errorf("Successful = %d, expected 1", br.Successful)
	}
	if br.Failed != 1 {
		t.Errorf("Failed = %d, expected 1", br.Failed)
	}
}
