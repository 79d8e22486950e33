package handler

import (
	"net/http"
	"strconv"
	"time"

	"bookz/internal/delivery/http/response"
	"bookz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthorHandler holds dependencies for author catalog handlers.
type AuthorHandler struct {
	uc usecase.AuthorUsecase
}

// NewAuthorHandler is the constructor for AuthorHandler, injected by Fx.
func NewAuthorHandler(uc usecase.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{uc: uc}
}

type authorRequest struct {
	FullName  string `json:"full_name" validate:"required,max=255"`
	Biography string `json:"biography"`
}

// Create adds a new author to the catalog.
func (h *AuthorHandler) Create(c echo.Context) error {
	var input authorRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	author, err := h.uc.CreateAuthor(c.Request().Context(), usecase.AuthorInput{
		FullName:  input.FullName,
		Biography: input.Biography,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, author, "Author created successfully")
}

// Get returns one author by ID.
func (h *AuthorHandler) Get(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	author, err := h.uc.GetAuthor(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, author, "")
}

// List returns all authors ordered by name.
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.uc.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authors, "")
}

// Update modifies an existing author.
func (h *AuthorHandler) Update(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	var input authorRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}

	author, err := h.uc.UpdateAuthor(c.Request().Context(), authorID, usecase.AuthorInput{
		FullName:  input.FullName,
		Biography: input.Biography,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, author, "Author updated successfully")
}

// Delete removes an author; subscriptions and book links cascade.
func (h *AuthorHandler) Delete(c echo.Context) error {
	authorID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_AUTHOR_ID", "Author ID must be a valid UUID")
	}

	if err := h.uc.DeleteAuthor(c.Request().Context(), authorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": authorID.String()}, "Author deleted successfully")
}

// TopByYear ranks authors by books published in a year. The year defaults to
// the current one.
func (h *AuthorHandler) TopByYear(c echo.Context) error {
	year := time.Now().Year()
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_YEAR", "Year must be an integer")
		}
		year = parsed
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be an integer")
		}
		limit = parsed
	}

	top, err := h.uc.TopAuthorsByYear(c.Request().Context(), year, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, top, "")
}
