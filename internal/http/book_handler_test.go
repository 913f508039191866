package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrepo/internal/entity"
	"bookrepo/internal/store/mocks"
	"bookrepo/internal/testutil"
	"bookrepo/internal/usecase"
)

var testBook = entity.Book{
	ID:              "book-id-1",
	Title:           "На Дрини ћуприја",
	Authors:         []string{"иво андрић"},
	Publisher:       "Просвета",
	PublishedYear:   1945,
	InventoryNumber: 1001,
	CreatedAt:       "01.09.2026.",
}

func TestBookHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	tests := []struct {
		name           string
		queryParams    string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:        "success - default order",
			queryParams: "",
			setupMock: func() {
				mockRepo.EXPECT().
					List(gomock.Any(), usecase.ListParams{Sort: usecase.SortByTitle, Direction: usecase.Ascending}).
					Return([]entity.Book{testBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - createdAt descending",
			queryParams: "?sortingType=CREATED_AT&sortingDirection=DESC",
			setupMock: func() {
				mockRepo.EXPECT().
					List(gomock.Any(), usecase.ListParams{Sort: usecase.SortByCreatedAt, Direction: usecase.Descending}).
					Return([]entity.Book{testBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "persist layer failure",
			queryParams: "",
			setupMock: func() {
				mockRepo.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := httptest.NewRecorder()
			handler.Collection(w, testutil.NewRequest(http.MethodGet, "/books"+tt.queryParams, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	mockRepo.EXPECT().
		Search(gomock.Any(), "андрић").
		Return([]entity.Book{testBook}, nil)

	w := httptest.NewRecorder()
	handler.Search(w, testutil.NewRequest(http.MethodGet, "/books/search?q=андрић", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var books []entity.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, testBook.ID, books[0].ID)
}

func TestBookHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByID(gomock.Any(), "book-id-1").
			Return(testBook, nil)

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodGet, "/books/book-id-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var book entity.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, testBook, book)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(entity.Book{}, usecase.NewBookNotFound("missing"))

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodGet, "/books/missing", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Book with an ID: missing Not Found", resp.Body["message"])
	})

	t.Run("nested path rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodGet, "/books/a/b", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(testBook, nil)

		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodPost, "/books", entity.Book{Title: "На Дрини ћуприја"}))

		require.Equal(t, http.StatusCreated, w.Code)
		var book entity.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, testBook.ID, book.ID)
		assert.Equal(t, testBook.CreatedAt, book.CreatedAt)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)
		handler.Collection(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing title rejected before the store", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodPost, "/books", entity.Book{Publisher: "Просвета"}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "validation failed", resp.Body["message"])
	})
}

func TestBookHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	t.Run("updated", func(t *testing.T) {
		payload := entity.Book{Title: "Нови наслов"}
		mockRepo.EXPECT().
			Update(gomock.Any(), "book-id-1", payload).
			Return(testBook, nil)

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodPut, "/books/book-id-1", payload))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), "missing", gomock.Any()).
			Return(entity.Book{}, usecase.NewBookNotFound("missing"))

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodPut, "/books/missing", entity.Book{Title: "Наслов"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), "book-id-1").
			Return(true, nil)

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodDelete, "/books/book-id-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", strings.TrimSpace(w.Body.String()))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), "missing").
			Return(false, usecase.NewBookNotFound("missing"))

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodDelete, "/books/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := NewBookHandler(mocks.NewMockBookRepository(ctrl))

	w := httptest.NewRecorder()
	handler.Collection(w, testutil.NewRequest(http.MethodDelete, "/books", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	handler.Search(w, testutil.NewRequest(http.MethodPost, "/books/search", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
