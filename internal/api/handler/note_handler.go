package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-labs/notes-api/internal/api/metrics"
	"github.com/inkwell-labs/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Every route sits
// behind the Auth middleware; the ownership policy itself lives in the service.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/notes.
//
// @Summary      List the authenticated user's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive substring match over title or content"
// @Param        sortBy  query     string  false  "Sort key: createdAt|updatedAt|title with optional :asc/:desc suffix"
// @Success      200     {array}   noteResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), ports.ListNotesInput{
		OwnerID: user.ID,
		Search:  c.QueryParam("search"),
		SortBy:  c.QueryParam("sortBy"),
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("list").Inc()
	return c.JSON(http.StatusOK, toNoteListResponse(notes))
}

// Get handles GET /api/notes/:id.
//
// @Summary      Get a note by id
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("get").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Create handles POST /api/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note title and content"
// @Success      201   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		OwnerID: user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// Update handles PUT /api/notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to change; omitted fields are kept"
// @Success      200   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), ports.UpdateNoteInput{
		OwnerID: user.ID,
		NoteID:  c.Param("id"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /api/notes/:id. Deletion is permanent and immediate.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "note removed"})
}
