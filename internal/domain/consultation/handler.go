package consultation

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/export"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse", "registrar"))
	readGroup.GET("/consultations", h.ListConsultations)
	readGroup.GET("/consultations/:id", h.GetConsultation)
	readGroup.GET("/consultations/export", h.ExportConsultations)

	writeGroup := api.Group("", auth.RequireRole("admin", "physician"))
	writeGroup.POST("/consultations", h.CreateConsultation)
	writeGroup.PUT("/consultations/:id", h.UpdateConsultation)
	writeGroup.DELETE("/consultations/:id", h.DeleteConsultation)
	writeGroup.PATCH("/consultations/:id/discharge", h.DischargeConsultation)
}

func (h *Handler) CreateConsultation(c echo.Context) error {
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if userID, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context())); err == nil {
		con.CreatedByID = &userID
	}
	if err := h.svc.Create(c.Request().Context(), &con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, con)
}

func (h *Handler) GetConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	con, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) ListConsultations(c echo.Context) error {
	pg := pagination.FromContext(c)
	ctx := c.Request().Context()

	if patientID := c.QueryParam("patient_id"); patientID != "" {
		pid, err := uuid.Parse(patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		cons, total, err := h.svc.ListByPatient(ctx, pid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(cons, total, pg.Limit, pg.Offset))
	}

	if facilityID := c.QueryParam("facility_id"); facilityID != "" {
		fid, err := uuid.Parse(facilityID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid facility_id")
		}
		cons, total, err := h.svc.ListByFacility(ctx, fid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(cons, total, pg.Limit, pg.Offset))
	}

	cons, total, err := h.svc.List(ctx, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(cons, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	con.ID = id
	if userID, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context())); err == nil {
		con.LastEditedByID = &userID
	}
	if err := h.svc.Update(c.Request().Context(), &con); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) DeleteConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DischargeConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		DischargeDate *time.Time `json:"discharge_date"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var date time.Time
	if body.DischargeDate != nil {
		date = *body.DischargeDate
	}
	con, err := h.svc.Discharge(c.Request().Context(), id, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) ExportConsultations(c echo.Context) error {
	var fid *uuid.UUID
	if facilityID := c.QueryParam("facility_id"); facilityID != "" {
		id, err := uuid.Parse(facilityID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid facility_id")
		}
		fid = &id
	}
	cons, err := h.svc.ListForExport(c.Request().Context(), fid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	records := make([]map[string]interface{}, len(cons))
	for i, con := range cons {
		records[i] = ExportRecord(con)
	}

	if c.QueryParam("format") == "xlsx" {
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="consultations.xlsx"`)
		c.Response().WriteHeader(http.StatusOK)
		return export.WriteXLSX(c.Response(), "Consultations", ExportMapping, records)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="consultations.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteCSV(c.Response(), ExportMapping, records)
}
