package get_import_template

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/csvimport"
)

type Handler struct {
	template []byte
	logger   Logger
}

// NewHandler шаблон статичный, рендерим один раз
func NewHandler(logger Logger) *Handler {
	return &Handler{
		template: csvimport.TemplateCSV(),
		logger:   logger,
	}
}

// Handle GET /api/v1/services/import/template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvimport.TemplateFilename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(h.template); err != nil {
		h.logger.Error("GET /services/import/template - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /services/import/template - Template sent")
}
