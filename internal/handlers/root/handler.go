package root

import (
	"net/http"
	"todoapi/infras/otel"
	"todoapi/shared/constant"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Banner struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.ReadRoot)
}

// ReadRoot returns the service banner.
// @Summary Service banner
// @Description Welcome message with API information.
// @Tags Root
// @Produce json
// @Success 200 {object} root.Banner
// @Router / [get]
func (handler *Handler) ReadRoot(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReadRoot")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, Banner{
		Message: constant.ResponseBannerMessage,
		Version: constant.AppVersion,
		Docs:    constant.ResponseDocsPath,
	})
}
