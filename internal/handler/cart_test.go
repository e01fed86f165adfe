package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/handler"
	mocks "github.com/SergeyBogomolovv/campus-laundry/internal/handler/mocks"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartRouter(t *testing.T) (chi.Router, *mocks.MockCartService) {
	svc := mocks.NewMockCartService(t)
	h := handler.NewCartHandler(discardLogger(), svc, authenticate())

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func TestCartHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			token: studentToken,
			body:  `{"service_type":"washing","item":"shirts"}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, entities.ServiceWashing, "shirts").Return(service.CartSnapshot{
					ActiveService:  entities.ServiceWashing,
					Selection:      map[string]int{"shirts": 1},
					SelectionTotal: 1,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"selection":{"shirts":1}`,
		},
		{
			name:  "unknown item",
			token: studentToken,
			body:  `{"service_type":"washing","item":"socks"}`,
			mockBehavior: func(svc *mocks.MockCartService) {
				svc.EXPECT().AddItem(mock.Anything, entities.ServiceWashing, "socks").
					Return(service.CartSnapshot{}, entities.ErrUnknownItem).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown service or clothing item`,
		},
		{
			name:         "unknown service",
			token:        studentToken,
			body:         `{"service_type":"dry-clean","item":"shirts"}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ServiceType":"oneof"`,
		},
		{
			name:         "workers have no cart",
			token:        workerToken,
			body:         `{"service_type":"washing","item":"shirts"}`,
			mockBehavior: func(svc *mocks.MockCartService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newCartRouter(t)
			tc.mockBehavior(svc)

			status, body := serve(t, r, http.MethodPost, "/cart/items", tc.token, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCartHandler_Commit(t *testing.T) {
	t.Run("committed line", func(t *testing.T) {
		r, svc := newCartRouter(t)
		svc.EXPECT().Commit(mock.Anything).Return(entities.CartLineItem{
			ID:          "line-1",
			ServiceType: entities.ServiceWashing,
			Counts:      map[string]int{"shirts": 2, "trousers": 1},
		}, nil).Once()

		status, body := serve(t, r, http.MethodPost, "/cart/commit", studentToken, "")
		assert.Equal(t, http.StatusCreated, status)
		assert.JSONEq(t, `{"id":"line-1","service_type":"washing","items":{"shirts":2,"trousers":1},"total_count":3}`, body)
	})

	t.Run("nothing selected", func(t *testing.T) {
		r, svc := newCartRouter(t)
		svc.EXPECT().Commit(mock.Anything).Return(entities.CartLineItem{}, entities.ErrEmptySelection).Once()

		status, body := serve(t, r, http.MethodPost, "/cart/commit", studentToken, "")
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, body, "no items selected")
	})
}

func TestCartHandler_Lines(t *testing.T) {
	t.Run("remove missing line", func(t *testing.T) {
		r, svc := newCartRouter(t)
		svc.EXPECT().RemoveLine(mock.Anything, "nope").Return(service.CartSnapshot{}, entities.ErrLineNotFound).Once()

		status, _ := serve(t, r, http.MethodDelete, "/cart/lines/nope", studentToken, "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("get and clear", func(t *testing.T) {
		r, svc := newCartRouter(t)
		svc.EXPECT().Get(mock.Anything).Return(service.CartSnapshot{
			Lines:     []entities.CartLineItem{{ID: "l1", ServiceType: entities.ServiceIronAndWashing, Counts: map[string]int{"sarees": 1}}},
			LineTotal: 1,
		}, nil).Once()
		svc.EXPECT().Clear(mock.Anything).Return(nil).Once()

		status, body := serve(t, r, http.MethodGet, "/cart", studentToken, "")
		assert.Equal(t, http.StatusOK, status)

		var cart handler.Cart
		decodeJSON(t, body, &cart)
		assert.Equal(t, 1, cart.LineTotal)
		assert.Equal(t, map[string]int{}, cart.Selection)
		assert.Equal(t, "iron+washing", cart.Lines[0].ServiceType)

		status, _ = serve(t, r, http.MethodDelete, "/cart", studentToken, "")
		assert.Equal(t, http.StatusNoContent, status)
	})
}
