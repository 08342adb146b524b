package view_delete

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"storefront/pkg/logger"
)

// Handler закрывает экраны вкладки. Ответы их незавершённых загрузок отбрасываются.
type Handler struct {
	log   handlerLogger
	views Views
}

func New(log handlerLogger, views Views) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "view_delete")),
		views: views,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewID := strings.TrimSpace(mux.Vars(r)["id"])
	if viewID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.views.CloseView(viewID)
	h.log.Debug("view closed", logger.NewField("view_id", viewID))

	w.WriteHeader(http.StatusNoContent)
}
