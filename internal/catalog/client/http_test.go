package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGatewayFetchesCatalogLists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/suppliers":
			w.Write([]byte(`[{"_id":"s1","name":"Acme"}]`))
		case "/arrivals":
			w.Write([]byte(`[{"_id":"a1","supplierId":"s1","supplierName":"Acme","items":[{"arrivalId":"l1","productName":"Cable","quantity":5,"costPrice":100,"isAccessory":true,"barcode":"B1"}]}]`))
		case "/receipts":
			w.Write([]byte(`[{"status":"completed","items":[{"arrivalId":"l1","quantity":2}]}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, 5*time.Second)
	ctx := context.Background()

	suppliers, err := gateway.Suppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Acme", suppliers[0].Name)

	arrivals, err := gateway.Arrivals(ctx)
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	require.Len(t, arrivals[0].Items, 1)
	assert.Equal(t, "l1", arrivals[0].Items[0].LineID)
	assert.Equal(t, 5, arrivals[0].Items[0].Quantity)

	receipts, err := gateway.Receipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.False(t, receipts[0].Cancelled())
	assert.Equal(t, 2, receipts[0].Items[0].Quantity)
}

func TestHTTPGatewayRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, 5*time.Second)

	_, err := gateway.Arrivals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestHTTPGatewayRejectsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, 5*time.Second)

	_, err := gateway.Suppliers(context.Background())
	require.Error(t, err)
}
