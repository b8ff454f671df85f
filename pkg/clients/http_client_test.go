package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"state":"approved"}`, string(body))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewHTTPClient(nil)
	headers := http.Header{"Content-Type": []string{"application/json"}}
	status, body, err := client.Post(context.Background(), server.URL, headers, []byte(`{"state":"approved"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPClient_PostCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewHTTPClient(nil).Post(ctx, server.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Post(gomock.Any(), "http://hooks.local", gomock.Any(), gomock.Any()).Return(0, nil, errors.New("refused"))

	client := NewHTTPClient(nil)
	client.SetClient(mock)
	_, _, err := client.Post(context.Background(), "http://hooks.local", nil, nil)
	assert.Error(t, err)
}
