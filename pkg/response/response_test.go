package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageTotalPages(t *testing.T) {
	tests := []struct {
		name          string
		totalElements int64
		size          int
		wantPages     int
	}{
		{"vazio", 0, 20, 0},
		{"exato", 40, 20, 2},
		{"com resto", 41, 20, 3},
		{"menos que uma pagina", 5, 20, 1},
		{"size zero", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage([]string{}, tt.totalElements, 0, tt.size)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.totalElements, page.TotalElements)
		})
	}
}

func TestPageWireFormat(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, 200, NewPage([]int{1, 2, 3}, 3, 0, 20))

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	// Envelope keys are a fixed contract with the front end
	assert.Contains(t, decoded, "content")
	assert.Contains(t, decoded, "totalElements")
	assert.Contains(t, decoded, "totalPages")
	assert.Contains(t, decoded, "size")
	assert.Contains(t, decoded, "number")
	assert.Equal(t, float64(3), decoded["totalElements"])
	assert.Equal(t, float64(0), decoded["number"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationError(w, map[string][]string{"horaFim": {"Hora fim deve ser posterior à hora início"}})

	assert.Equal(t, 400, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Erro de validação", resp.Message)
}
