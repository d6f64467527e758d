// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/tidwall/gjson"
)

// LoadTestJSON loads a provider fixture from the test/testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("Test file %s is not valid JSON", filename)
	}
	return data
}

// DataElement returns element i of a fixture's "data" array exactly as written.
func DataElement(t *testing.T, body []byte, i int) json.RawMessage {
	t.Helper()

	elem := gjson.GetBytes(body, "data."+strconv.Itoa(i))
	if !elem.Exists() {
		t.Fatalf("Fixture has no data element %d", i)
	}
	return json.RawMessage(elem.Raw)
}

// DecodeJSON unmarshals body into a new T, failing the test on error.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to decode %s: %v", body, err)
	}
	return v
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
