package scholarships

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"futurepath-backend/models/scholarships"
)

func TestListScholarships(t *testing.T) {
	w := httptest.NewRecorder()
	ListScholarships(w, httptest.NewRequest("GET", "/api/scholarships", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Scholarships []scholarships.Scholarship `json:"scholarships"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Scholarships, len(scholarships.Catalog))
	assert.Equal(t, "fulbright-foreign-student-program", body.Scholarships[0].ID)
}

func TestListScholarshipsMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	ListScholarships(w, httptest.NewRequest("POST", "/api/scholarships", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
