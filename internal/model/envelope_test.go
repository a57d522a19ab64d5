// internal/model/envelope_test.go
package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/model"
)

func TestUnwrapList(t *testing.T) {
	next := "http://api/admin/subjects/?offset=20"

	tests := []struct {
		name          string
		raw           string
		wantItems     int
		wantCount     int
		wantNext      *string
		wantFirstName string
	}{
		{
			name:          "Bare array",
			raw:           `[{"id":1,"name":"해부학"},{"id":2,"name":"생리학"}]`,
			wantItems:     2,
			wantCount:     2,
			wantFirstName: "해부학",
		},
		{
			name:          "Pagination envelope",
			raw:           `{"count":42,"next":"http://api/admin/subjects/?offset=20","previous":null,"results":[{"id":1,"name":"해부학"}]}`,
			wantItems:     1,
			wantCount:     42,
			wantNext:      &next,
			wantFirstName: "해부학",
		},
		{
			name:          "Nested data wrapper",
			raw:           `{"data":[{"id":1,"name":"해부학"},{"id":2,"name":"생리학"},{"id":3,"name":"병리학"}]}`,
			wantItems:     3,
			wantCount:     3,
			wantFirstName: "해부학",
		},
		{
			name:      "Unknown shape degrades to empty",
			raw:       `{"foo":1}`,
			wantItems: 0,
			wantCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := model.UnwrapList[model.Subject](json.RawMessage(tc.raw), nil)

			require.NotNil(t, page.Items)
			assert.Len(t, page.Items, tc.wantItems)
			assert.Equal(t, tc.wantCount, page.Count)
			assert.Equal(t, tc.wantNext, page.Next)
			if tc.wantFirstName != "" {
				assert.Equal(t, tc.wantFirstName, page.Items[0].Name)
			}
		})
	}
}

func TestUnwrapList_EmptyAndGarbage(t *testing.T) {
	assert.Empty(t, model.UnwrapList[model.Subject](nil, nil).Items)
	assert.Empty(t, model.UnwrapList[model.Subject](json.RawMessage(`"plain string"`), nil).Items)
	assert.Empty(t, model.UnwrapList[model.Subject](json.RawMessage(`[{"id":"not-a-number"}]`), nil).Items)
}
