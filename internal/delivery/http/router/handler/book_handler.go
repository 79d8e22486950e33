package handler

import (
	"net/http"
	"strconv"

	"bookz/internal/delivery/http/response"
	"bookz/internal/domain/repository"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book catalog handlers.
type BookHandler struct {
	uc usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

type bookRequest struct {
	Title         string      `json:"title" validate:"required,max=255"`
	YearPublished int         `json:"year_published" validate:"required"`
	Description   string      `json:"description"`
	ISBN          string      `json:"isbn"`
	CoverImage    string      `json:"cover_image"`
	AuthorIDs     []uuid.UUID `json:"author_ids" validate:"required,min=1"`
}

func (r *bookRequest) toInput() usecase.BookInput {
	return usecase.BookInput{
		Title:         r.Title,
		YearPublished: r.YearPublished,
		Description:   r.Description,
		ISBN:          r.ISBN,
		CoverImage:    r.CoverImage,
		AuthorIDs:     r.AuthorIDs,
	}
}

type createBookResponse struct {
	Book         any `json:"book"`
	Notification any `json:"notification"`
}

// Create persists a book and reports the subscriber notification outcome
// alongside it. A failed notification never fails the creation.
func (h *BookHandler) Create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input bookRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	book, notification, err := h.uc.CreateBook(c.Request().Context(), actor, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createBookResponse{
		Book:         book,
		Notification: notification,
	}, "Book created successfully")
}

// Get returns one book with its authors.
func (h *BookHandler) Get(c echo.Context) error {
	bookID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_BOOK_ID", "Book ID must be a valid UUID")
	}

	book, err := h.uc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "")
}

// List returns books matching the query filters, newest first.
func (h *BookHandler) List(c echo.Context) error {
	filter, err := bookFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	books, err := h.uc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books, "")
}

// Update modifies a book and replaces its author associations.
func (h *BookHandler) Update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	bookID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_BOOK_ID", "Book ID must be a valid UUID")
	}

	var input bookRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), actor, bookID, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated successfully")
}

// Delete removes a book.
func (h *BookHandler) Delete(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	bookID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_BOOK_ID", "Book ID must be a valid UUID")
	}

	if err := h.uc.DeleteBook(c.Request().Context(), actor, bookID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": bookID.String()}, "Book deleted successfully")
}

func bookFilterFromQuery(c echo.Context) (repository.BookFilter, error) {
	var filter repository.BookFilter

	if raw := c.QueryParam("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("author_id must be a valid UUID")
		}
		filter.AuthorID = &authorID
	}
	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New("year must be an integer")
		}
		filter.Year = year
	}
	filter.TitleSearch = c.QueryParam("title")

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New("limit must be an integer")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errors.New("offset must be an integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}
