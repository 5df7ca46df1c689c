package webapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogxlabs/ogxsupply/internal/domain"
)

const defaultListLimit = 24

func (s *Server) createProduct(c echo.Context) error {
	var in domain.ProductInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, bindDetail(err))
	}
	in.Normalize()
	if err := c.Validate(&in); err != nil {
		return fail(c, http.StatusBadRequest, domain.ValidationDetail(err))
	}

	id, err := s.store.CreateDocument(c.Request().Context(), domain.KindProduct, in.Record())
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

func (s *Server) listProducts(c echo.Context) error {
	limit := int64(defaultListLimit)
	if v := c.QueryParam("limit"); v != "" {
		if n := cast.ToInt64(v); n > 0 {
			limit = n
		}
	}

	filter := bson.M{}
	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		filter["category"] = category
	}

	docs, err := s.store.GetDocuments(c.Request().Context(), domain.KindProduct, filter, limit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	// Expose the store identifier as a plain "id" string.
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		if raw, ok := d["_id"]; ok {
			if oid, ok := raw.(primitive.ObjectID); ok {
				d["id"] = oid.Hex()
			} else {
				d["id"] = fmt.Sprint(raw)
			}
			delete(d, "_id")
		}
		out = append(out, d)
	}
	return c.JSON(http.StatusOK, out)
}
