package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelRequest struct {
	Label string `json:"label"`
}

func (l labelRequest) Validate() []string {
	if l.Label == "" {
		return []string{"label is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantMessage string
	}{
		{name: "valid", body: `{"label":"Send"}`, wantOK: true},
		{name: "empty body", body: "", wantMessage: "request body is required"},
		{name: "unknown field", body: `{"label":"Send","x":1}`, wantMessage: `unknown field "x"`},
		{name: "trailing object", body: `{"label":"a"}{"label":"b"}`, wantMessage: "single JSON object"},
		{name: "validation", body: `{}`, wantMessage: "label is required"},
		{name: "too large", body: `{"label":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, wantMessage: "request body too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dest labelRequest
			ok := DecodeAndValidate(rr, req, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Send", dest.Label)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.wantMessage)
		})
	}
}
