package respond

import (
	"encoding/json"
	"net/http"
	"strings"

	"storefront/internal/view"
)

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// ViewID - экземпляр экрана, к которому относится запрос. Пусто - одноразовый экран.
func ViewID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(view.HeaderViewID))
}
