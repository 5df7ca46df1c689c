package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ogxlabs/ogxsupply/internal/domain"
)

func (s *Server) createInquiry(c echo.Context) error {
	var in domain.InquiryInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, bindDetail(err))
	}
	in.Normalize()
	if err := c.Validate(&in); err != nil {
		return fail(c, http.StatusBadRequest, domain.ValidationDetail(err))
	}

	id, err := s.store.CreateDocument(c.Request().Context(), domain.KindInquiry, in.Record())
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": "received"})
}
