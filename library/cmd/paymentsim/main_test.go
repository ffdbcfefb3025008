package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/model"
)

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, model.GatewayResponse) {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	var resp model.GatewayResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w.Code, resp
}

func TestGateway_ProcessPayment(t *testing.T) {
	t.Parallel()
	e := newGateway(zap.NewExample().Named("test")).newRouter()

	t.Run("ok", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost, "/api/v1/payments",
			`{"patronId":"123456","amount":6.5,"description":"Late fees for 'Dune'"}`)
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
		require.True(t, strings.HasPrefix(resp.TransactionID, "txn_"))
		require.Equal(t, "Charged $6.50", resp.Message)
	})

	t.Run("over the charge limit", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost, "/api/v1/payments",
			`{"patronId":"123456","amount":15.01}`)
		require.Equal(t, http.StatusOK, code)
		require.False(t, resp.Success)
		require.Equal(t, "Amount $15.01 exceeds the single charge limit", resp.Message)
	})

	t.Run("bad patron account", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost, "/api/v1/payments",
			`{"patronId":"12345","amount":6.5}`)
		require.Equal(t, http.StatusOK, code)
		require.False(t, resp.Success)
		require.Equal(t, "Invalid patron account", resp.Message)
	})

	t.Run("zero amount is a malformed request", func(t *testing.T) {
		code, _ := doJSON(t, e, http.MethodPost, "/api/v1/payments",
			`{"patronId":"123456","amount":0}`)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestGateway_Refund(t *testing.T) {
	t.Parallel()
	e := newGateway(zap.NewExample().Named("test")).newRouter()

	_, charged := doJSON(t, e, http.MethodPost, "/api/v1/payments",
		`{"patronId":"123456","amount":6.5}`)
	require.True(t, charged.Success)

	t.Run("unknown transaction", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost, "/api/v1/payments/txn_unknown/refund",
			`{"amount":6.5}`)
		require.Equal(t, http.StatusOK, code)
		require.False(t, resp.Success)
		require.Equal(t, "Transaction not found", resp.Message)
	})

	t.Run("refund above the captured amount", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost,
			fmt.Sprintf("/api/v1/payments/%s/refund", charged.TransactionID), `{"amount":7.0}`)
		require.Equal(t, http.StatusOK, code)
		require.False(t, resp.Success)
		require.Equal(t, "Refund exceeds the captured amount", resp.Message)
	})

	t.Run("ok", func(t *testing.T) {
		code, resp := doJSON(t, e, http.MethodPost,
			fmt.Sprintf("/api/v1/payments/%s/refund", charged.TransactionID), `{"amount":6.5}`)
		require.Equal(t, http.StatusOK, code)
		require.True(t, resp.Success)
		require.Equal(t, "Refund of $6.50 processed successfully", resp.Message)
	})
}
