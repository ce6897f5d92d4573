// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"card_keep/internal/handlers"
	"card_keep/internal/middleware"
	"card_keep/internal/model"
	"card_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

type testServer struct {
	server  *httptest.Server
	learner *mocks.LearnerService
	deck    *mocks.DeckService
	review  *mocks.ReviewService
}

// newTestServer は開発用の X-Learner-ID 認証でルーターを組み立てます。
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		learner: mocks.NewLearnerService(t),
		deck:    mocks.NewDeckService(t),
		review:  mocks.NewReviewService(t),
	}
	hs := &handlers.Handlers{
		Learner: handlers.NewLearnerHandler(ts.learner),
		Deck:    handlers.NewDeckHandler(ts.deck),
		Review:  handlers.NewReviewHandler(ts.review),
	}
	r := chi.NewRouter()
	r.Mount("/api/v1", hs.Routes(middleware.DevLearnerContextMiddleware))
	ts.server = httptest.NewServer(r)
	t.Cleanup(ts.server.Close)
	return ts
}

// sendRequest はHTTPリクエストを送信し、ステータスコードを検証してボディを返します。
func sendRequest(t *testing.T, ts *testServer, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, ts.server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")
	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch: %s", respBodyBytes)

	return respBodyBytes
}

// verifyErrorCode はエラーレスポンスの code を検証します。
func verifyErrorCode(t *testing.T, body []byte, wantCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Failed to unmarshal error response: %s", body)
	assert.Equal(t, wantCode, errResp.Error.Code)
}

func learnerHeader(id uuid.UUID) map[string]string {
	return map[string]string{"X-Learner-ID": id.String()}
}
