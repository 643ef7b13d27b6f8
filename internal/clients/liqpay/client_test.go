package liqpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeNice-r/liqpay-go/internal/clients/liqpay"
	"github.com/DeNice-r/liqpay-go/internal/entity"
	"github.com/DeNice-r/liqpay-go/pkg/config"
)

func TestClient_Checkout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, liqpay.CheckoutPath, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req liqpay.CheckoutRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ZGF0YQ==", req.Data)
		require.Equal(t, "c2ln", req.Signature)

		json.NewEncoder(w).Encode(liqpay.CheckoutResponse{URL: "https://www.liqpay.ua/checkout/token"})
	}))
	t.Cleanup(srv.Close)

	c := liqpay.NewClient(config.LiqPay{APIURL: srv.URL})

	url, err := c.Checkout(context.Background(), "ZGF0YQ==", "c2ln")
	require.NoError(t, err)
	require.Equal(t, "https://www.liqpay.ua/checkout/token", url)
}

func TestClient_Checkout_GatewayError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(liqpay.CheckoutResponse{
			ErrCode:        "err_access",
			ErrDescription: "Access denied",
		})
	}))
	t.Cleanup(srv.Close)

	c := liqpay.NewClient(config.LiqPay{APIURL: srv.URL})

	_, err := c.Checkout(context.Background(), "ZGF0YQ==", "c2ln")
	require.ErrorIs(t, err, entity.ErrGatewayUnavailable)
	require.ErrorContains(t, err, "err_access")
}

func TestClient_Checkout_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := liqpay.NewClient(config.LiqPay{APIURL: srv.URL})

	_, err := c.Checkout(context.Background(), "ZGF0YQ==", "c2ln")
	require.ErrorIs(t, err, entity.ErrGatewayUnavailable)
}

func TestClient_Checkout_NoRedirectURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(liqpay.CheckoutResponse{})
	}))
	t.Cleanup(srv.Close)

	c := liqpay.NewClient(config.LiqPay{APIURL: srv.URL})

	_, err := c.Checkout(context.Background(), "ZGF0YQ==", "c2ln")
	require.ErrorIs(t, err, entity.ErrGatewayUnavailable)
}

func TestClient_Checkout_Unreachable(t *testing.T) {
	t.Parallel()

	c := liqpay.NewClient(config.LiqPay{APIURL: "http://127.0.0.1:1"})

	_, err := c.Checkout(context.Background(), "ZGF0YQ==", "c2ln")
	require.ErrorIs(t, err, entity.ErrGatewayUnavailable)
}
