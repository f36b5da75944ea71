package progression

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

// CatalogHandler serves the static badge and challenge catalogs. These
// routes are public, the catalog carries no user state.
type CatalogHandler struct {
	catalog *scoring.Catalog
}

func NewCatalogHandler(catalog *scoring.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

func (handler *CatalogHandler) writeCatalogSection(w http.ResponseWriter, section any) {
	sectionJson, err := json.Marshal(section)
	if err != nil {
		log.Errorf("marshal catalog section: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sectionJson)
}

func (handler *CatalogHandler) HandleTrophies(w http.ResponseWriter, _ *http.Request) {
	handler.writeCatalogSection(w, handler.catalog.Trophies)
}

func (handler *CatalogHandler) HandleNutritionBadges(w http.ResponseWriter, _ *http.Request) {
	handler.writeCatalogSection(w, handler.catalog.NutritionBadges)
}

func (handler *CatalogHandler) HandleStreakBadges(w http.ResponseWriter, _ *http.Request) {
	handler.writeCatalogSection(w, handler.catalog.StreakBadges)
}

func (handler *CatalogHandler) HandleChallengeTemplates(w http.ResponseWriter, _ *http.Request) {
	handler.writeCatalogSection(w, handler.catalog.Challenges)
}

func (handler *CatalogHandler) HandleRewards(w http.ResponseWriter, _ *http.Request) {
	handler.writeCatalogSection(w, handler.catalog.Rewards)
}
