package transport_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/muhammadheryan/storefront/constant"
	cartmock "github.com/muhammadheryan/storefront/mocks/application/cart"
	catalogmock "github.com/muhammadheryan/storefront/mocks/application/catalog"
	contactmock "github.com/muhammadheryan/storefront/mocks/application/contact"
	deliverymock "github.com/muhammadheryan/storefront/mocks/application/delivery"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type storefrontFields struct {
	catalogApp  *catalogmock.CatalogApp
	cartApp     *cartmock.CartApp
	contactApp  *contactmock.ContactApp
	deliveryApp *deliverymock.DeliveryApp
}

func newStorefront(t *testing.T) (*storefrontFields, http.Handler) {
	logger.Set(zap.NewNop())
	f := &storefrontFields{
		catalogApp:  catalogmock.NewCatalogApp(t),
		cartApp:     cartmock.NewCartApp(t),
		contactApp:  contactmock.NewContactApp(t),
		deliveryApp: deliverymock.NewDeliveryApp(t),
	}
	h := transport.NewTransport(&transport.RestHandler{
		CatalogApp:  f.catalogApp,
		CartApp:     f.cartApp,
		ContactApp:  f.contactApp,
		DeliveryApp: f.deliveryApp,
	}, transport.Options{})
	return f, h
}

func TestSearch_QueryParams(t *testing.T) {
	f, h := newStorefront(t)
	f.catalogApp.On("Search", mock.Anything, model.SearchRequest{Q: "ice maker", Type: "part", Limit: 10, Offset: 0}).
		Return(&model.SearchResponse{}, nil)

	rec := do(h, http.MethodGet, "/search?q=ice+maker&type=part&limit=10&offset=junk", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f, h := newStorefront(t)
		f.catalogApp.On("GetItem", mock.Anything, "item-1").Return(&model.ItemResponse{Item: &model.Item{ID: "item-1", Title: "Range"}}, nil)

		rec := do(h, http.MethodGet, "/items/item-1", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var res model.ItemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Range", res.Item.Title)
	})

	t.Run("hidden", func(t *testing.T) {
		f, h := newStorefront(t)
		f.catalogApp.On("GetItem", mock.Anything, "draft-1").Return(nil, errors.SetCustomError(constant.ErrNotFound))

		rec := do(h, http.MethodGet, "/items/draft-1", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeliveryAvailability(t *testing.T) {
	f, h := newStorefront(t)
	f.deliveryApp.On("GetAvailability", mock.Anything, "2024-03-01", 7).
		Return(&model.DeliveryAvailabilityResponse{Availability: []model.DeliverySlot{}, ByDate: map[string][]model.DeliverySlot{}}, nil)

	rec := do(h, http.MethodGet, "/delivery/availability?dateFrom=2024-03-01&days=7", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitContact(t *testing.T) {
	f, h := newStorefront(t)
	f.contactApp.On("SubmitInquiry", mock.Anything, &model.ContactRequest{Name: "Sam", Phone: "5550102000", Message: "hi"}).
		Return(nil, errors.SetCustomError(constant.ErrInvalidPhone))

	rec := do(h, http.MethodPost, "/contact", `{"name":"Sam","phone":"5550102000","message":"hi"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please enter a valid phone number", decodeError(t, rec).Message)
}

func TestCartRoutes(t *testing.T) {
	const cartID = "2f1b7c1e-5d4a-4b8e-9a43-0c6f4f1e2d11"

	t.Run("update quantity", func(t *testing.T) {
		f, h := newStorefront(t)
		f.cartApp.On("UpdateQuantity", mock.Anything, cartID, "item-1", 4).Return(&model.Cart{ID: cartID, ItemCount: 4}, nil)

		rec := do(h, http.MethodPatch, "/cart/"+cartID+"/items/item-1", `{"quantity":4}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("remove item", func(t *testing.T) {
		f, h := newStorefront(t)
		f.cartApp.On("RemoveItem", mock.Anything, cartID, "item-1").Return(&model.Cart{ID: cartID}, nil)

		rec := do(h, http.MethodDelete, "/cart/"+cartID+"/items/item-1", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear", func(t *testing.T) {
		f, h := newStorefront(t)
		f.cartApp.On("Clear", mock.Anything, "bad").Return(errors.SetCustomError(constant.ErrInvalidCartID))

		rec := do(h, http.MethodDelete, "/cart/bad", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetrics_RouteTemplateLabel(t *testing.T) {
	logger.Set(zap.NewNop())
	catalogApp := catalogmock.NewCatalogApp(t)
	catalogApp.On("GetItem", mock.Anything, mock.Anything).Return(&model.ItemResponse{Item: &model.Item{}}, nil).Twice()
	reg := metrics.NewRegistry()
	h := transport.NewTransport(&transport.RestHandler{CatalogApp: catalogApp}, transport.Options{Metrics: reg})

	do(h, http.MethodGet, "/items/a", "", nil)
	do(h, http.MethodGet, "/items/b", "", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(reg.HTTPRequests.WithLabelValues(http.MethodGet, "/items/{id}", "200")))

	rec := do(h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_request_duration_seconds")
}
