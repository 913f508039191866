package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrepo/internal/entity"
	"bookrepo/internal/store/mocks"
	"bookrepo/internal/testutil"
	"bookrepo/internal/usecase"
)

var testCategory = entity.Category{ID: "cat-id-1", Name: "Роман"}

func TestCategoryHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCategoryRepository(ctrl)
	handler := NewCategoryHandler(mockRepo)

	mockRepo.EXPECT().
		List(gomock.Any()).
		Return([]entity.Category{testCategory}, nil)

	w := httptest.NewRecorder()
	handler.Collection(w, testutil.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var categories []entity.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, []entity.Category{testCategory}, categories)
}

func TestCategoryHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCategoryRepository(ctrl)
	handler := NewCategoryHandler(mockRepo)

	mockRepo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(entity.Category{}, usecase.NewCategoryNotFound("missing"))

	w := httptest.NewRecorder()
	handler.Item(w, testutil.NewRequest(http.MethodGet, "/categories/missing", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Category with an ID: missing Not Found", resp.Body["message"])
}

func TestCategoryHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCategoryRepository(ctrl)
	handler := NewCategoryHandler(mockRepo)

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), entity.Category{Name: "Роман"}).
			Return(testCategory, nil)

		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodPost, "/categories", entity.Category{Name: "Роман"}))

		require.Equal(t, http.StatusCreated, w.Code)
		var category entity.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
		assert.Equal(t, testCategory, category)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entity.Category{}, &usecase.AlreadyExistsError{Name: "Роман"})

		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodPost, "/categories", entity.Category{Name: "Роман"}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, "Област са називом: Роман већ постоји.", resp.Body["message"])
	})

	t.Run("missing name rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Collection(w, testutil.NewRequest(http.MethodPost, "/categories", entity.Category{}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoryHandler_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCategoryRepository(ctrl)
	handler := NewCategoryHandler(mockRepo)

	t.Run("update forces path id", func(t *testing.T) {
		mockRepo.EXPECT().
			Update(gomock.Any(), "cat-id-1", entity.Category{Name: "Драма"}).
			Return(entity.Category{ID: "cat-id-1", Name: "Драма"}, nil)

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodPut, "/categories/cat-id-1", entity.Category{Name: "Драма"}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), "cat-id-1").
			Return(true, nil)

		w := httptest.NewRecorder()
		handler.Item(w, testutil.NewRequest(http.MethodDelete, "/categories/cat-id-1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
