package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	mockRepo "bookz/internal/mocks/repository"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthorService(t *testing.T) (usecase.AuthorUsecase, *mockRepo.MockAuthorRepository) {
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewAuthorService(AuthorServiceParams{
		AuthorRepo: authorRepo,
		Logger:     logger,
	})

	return service, authorRepo
}

func TestAuthorService_CreateAuthor(t *testing.T) {
	service, authorRepo := createTestAuthorService(t)

	ctx := context.Background()
	authorRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	author, err := service.CreateAuthor(ctx, usecase.AuthorInput{
		FullName:  "Александр Пушкин",
		Biography: "Поэт",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, author.ID)
	assert.Equal(t, "Александр Пушкин", author.FullName)
	assert.False(t, author.CreatedAt.IsZero())
}

func TestAuthorService_CreateAuthor_EmptyName(t *testing.T) {
	service, _ := createTestAuthorService(t)

	_, err := service.CreateAuthor(context.Background(), usecase.AuthorInput{})

	require.Error(t, err)
}

func TestAuthorService_GetAuthor_NotFound(t *testing.T) {
	service, authorRepo := createTestAuthorService(t)

	ctx := context.Background()
	id := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAuthorNotFound)

	_, err := service.GetAuthor(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
}

func TestAuthorService_UpdateAuthor_KeepsNameWhenEmpty(t *testing.T) {
	service, authorRepo := createTestAuthorService(t)

	ctx := context.Background()
	id := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, id).Return(&entity.Author{
		ID:        id,
		FullName:  "Александр Пушкин",
		Biography: "Старая биография",
	}, nil)
	authorRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	author, err := service.UpdateAuthor(ctx, id, usecase.AuthorInput{Biography: "Новая биография"})

	require.NoError(t, err)
	assert.Equal(t, "Александр Пушкин", author.FullName)
	assert.Equal(t, "Новая биография", author.Biography)
}

func TestAuthorService_TopAuthorsByYear_DefaultLimit(t *testing.T) {
	service, authorRepo := createTestAuthorService(t)

	ctx := context.Background()
	expected := []*entity.TopAuthor{
		{AuthorID: uuid.New(), FullName: "Автор", BookCount: 3},
	}

	authorRepo.EXPECT().TopAuthorsByYear(ctx, 1833, defaultTopAuthorsLimit).Return(expected, nil)

	top, err := service.TopAuthorsByYear(ctx, 1833, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, top)
}

func TestAuthorService_DeleteAuthor(t *testing.T) {
	service, authorRepo := createTestAuthorService(t)

	ctx := context.Background()
	id := uuid.New()

	authorRepo.EXPECT().FindByID(ctx, id).Return(&entity.Author{ID: id, FullName: "Автор"}, nil)
	authorRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, service.DeleteAuthor(ctx, id))
}
