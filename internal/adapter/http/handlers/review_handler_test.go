package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sparklean/internal/adapter/http/handlers/mocks"
	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return(usecase.ReviewList{
			Requests: []entities.EstimateRequest{
				{ID: "b", CreatedAt: time.Now(), IsNew: true, FullName: "Ana Souza"},
				{ID: "a", CreatedAt: time.Now().Add(-time.Hour), FullName: "Bruno Lima"},
			},
			NewCount: 1,
			Total:    2,
		}, nil)

		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["success"] != true || resp["new_count"] != float64(1) || resp["total"] != float64(2) {
			t.Fatalf("unexpected body: %v", resp)
		}
		estimates, ok := resp["estimates"].([]any)
		if !ok || len(estimates) != 2 {
			t.Fatalf("expected 2 estimates, got %v", resp["estimates"])
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return(usecase.ReviewList{}, assertError{})

		r := gin.New()
		r.GET("/v1/estimates", h.ListEstimates)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReviewHandler_MarkAsRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().MarkAsRead(gomock.Any(), "est-1").Return(nil)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/read", h.MarkAsRead)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().MarkAsRead(gomock.Any(), "nope").Return(usecase.ErrEstimateRequestNotFound)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/read", h.MarkAsRead)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/nope/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "ESTIMATE_NOT_FOUND" {
			t.Fatalf("expected ESTIMATE_NOT_FOUND, got %v", resp["code"])
		}
	})
}

func TestReviewHandler_MarkAllAsRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	uc.EXPECT().MarkAllAsRead(gomock.Any()).Return(nil)

	r := gin.New()
	r.PATCH("/v1/estimates/read-all", h.MarkAllAsRead)

	req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/read-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReviewHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "nope").Return(usecase.ErrEstimateRequestNotFound)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReviewHandler_UnreadCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	uc.EXPECT().UnreadCount(gomock.Any()).Return(4, nil)

	r := gin.New()
	r.GET("/v1/estimates/unread-count", h.UnreadCount)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/unread-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["new_count"] != float64(4) {
		t.Fatalf("expected new_count 4, got %v", resp["new_count"])
	}
}

func TestReviewHandler_ListNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	uc.EXPECT().Notifications(gomock.Any()).Return([]entities.Notification{
		{ID: "n1", EstimateID: "est-1", Status: entities.NotificationStatusSent, CreatedAt: time.Now()},
	}, nil)

	r := gin.New()
	r.GET("/v1/notifications", h.ListNotifications)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	notifications, ok := resp["notifications"].([]any)
	if !ok || len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %v", resp["notifications"])
	}
}
