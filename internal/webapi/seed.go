package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ogxlabs/ogxsupply/internal/domain"
)

// seedProducts inserts the built-in sample catalog. The operation is
// idempotent over the fixed sample set: a sample is skipped when a document
// with the same name and model already exists. This is not a general
// upsert.
func (s *Server) seedProducts(c echo.Context) error {
	ctx := c.Request().Context()

	inserted := 0
	for _, p := range domain.SampleProducts() {
		filter := bson.M{"name": p.Name, "model": p.Model}
		count, err := s.store.CountDocuments(ctx, domain.KindProduct, filter)
		if err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			continue
		}
		if _, err := s.store.CreateDocument(ctx, domain.KindProduct, p); err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
		inserted++
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "inserted": inserted})
}
