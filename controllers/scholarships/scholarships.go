package scholarships

import (
	"encoding/json"
	"net/http"

	"futurepath-backend/models/scholarships"
)

// ListScholarships отдает статический каталог, авторизация не требуется
func ListScholarships(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"scholarships": scholarships.Catalog,
	})
}
