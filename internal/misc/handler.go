package misc

import (
	"fmt"
	"net/http"

	"github.com/WaekyTV/fitquest-backend/pkg"
)

// Handler serves the few unauthenticated ops endpoints.
type Handler struct {
	versionInfo string
}

func NewHandler(versionInfo string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
	}
}

func (handler *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) HandleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"status":"ok","version":"%s"}`, handler.versionInfo))
}
