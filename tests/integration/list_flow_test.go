package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoplist-backend/infrastructure/config"
	"shoplist-backend/infrastructure/di"
	"shoplist-backend/interfaces/http/rest"
	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/observability"
	"shoplist-backend/tests/mocks"
)

const testAwid = "22222222222222222222222222222222"

func newTestServer(t *testing.T, fallbackID string) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	repo := mocks.NewMemoryListRepository()

	commandBus := di.ProvideCommandBus(repo, nil, logger)
	queryBus := di.ProvideQueryBus(repo, logger)
	resolver := auth.NewDirectoryResolver(auth.DefaultDirectory(), fallbackID)

	cfg := &config.Config{
		Awid:        testAwid,
		Environment: "development",
	}

	metrics := observability.NewMetrics("Shoplist/test", nil)
	router := rest.NewRouter(commandBus, queryBus, resolver, cfg, metrics, logger)
	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, userID string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func errorMap(envelope map[string]interface{}) map[string]interface{} {
	m, _ := envelope["uuAppErrorMap"].(map[string]interface{})
	return m
}

func TestSharedListFlow(t *testing.T) {
	srv := newTestServer(t, "")

	// Maria creates the Groceries list
	status, envelope := doRequest(t, srv, http.MethodPost, "/list/create", "user123", map[string]interface{}{
		"name": "Groceries",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, testAwid, envelope["awid"])
	assert.Empty(t, errorMap(envelope))
	assert.Equal(t, "Groceries", envelope["name"])
	assert.Equal(t, "user123", envelope["ownerId"])
	assert.Empty(t, envelope["members"])
	assert.Empty(t, envelope["items"])
	assert.Equal(t, false, envelope["archived"])

	listID, ok := envelope["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, listID)

	// Maria invites Ivan
	status, envelope = doRequest(t, srv, http.MethodPost, "/list/addMember", "user123", map[string]interface{}{
		"listId":   listID,
		"memberId": "user789",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, envelope["members"], "user789")

	// Ivan adds Milk
	status, envelope = doRequest(t, srv, http.MethodPost, "/item/add", "user789", map[string]interface{}{
		"listId": listID,
		"text":   "Milk",
	})
	require.Equal(t, http.StatusOK, status)
	item, ok := envelope["item"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Milk", item["text"])
	assert.Equal(t, false, item["solved"])

	// Petr is neither owner nor member; his write is rejected
	status, envelope = doRequest(t, srv, http.MethodPost, "/item/add", "user456", map[string]interface{}{
		"listId": listID,
		"text":   "Eggs",
	})
	require.Equal(t, http.StatusForbidden, status)
	assert.NotEmpty(t, errorMap(envelope))

	// The rejected write left the list unchanged
	status, envelope = doRequest(t, srv, http.MethodGet, "/item/list?listId="+listID, "user123", nil)
	require.Equal(t, http.StatusOK, status)
	items, ok := envelope["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	// Ivan resolves Milk
	itemID := item["id"].(string)
	status, envelope = doRequest(t, srv, http.MethodPost, "/item/resolve", "user789", map[string]interface{}{
		"listId": listID,
		"itemId": itemID,
		"solved": true,
	})
	require.Equal(t, http.StatusOK, status)
	resolved := envelope["item"].(map[string]interface{})
	assert.Equal(t, true, resolved["solved"])

	// The unresolved filter now excludes Milk
	status, envelope = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/item/list?listId=%s&filter=unresolved", listID), "user789", nil)
	require.Equal(t, http.StatusOK, status)
	items = envelope["items"].([]interface{})
	assert.Empty(t, items)

	// Maria deletes the list
	status, envelope = doRequest(t, srv, http.MethodPost, "/list/delete", "user123", map[string]interface{}{
		"id": listID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, envelope["deleted"])

	// The list and its items are gone
	status, envelope = doRequest(t, srv, http.MethodGet, "/list/get?id="+listID, "user123", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, errorMap(envelope))
}

func TestMembershipAndArchival(t *testing.T) {
	srv := newTestServer(t, "")

	_, envelope := doRequest(t, srv, http.MethodPost, "/list/create", "user123", map[string]interface{}{
		"name": "Chores",
	})
	listID := envelope["id"].(string)

	// Member cannot rename
	status, _ := doRequest(t, srv, http.MethodPost, "/list/addMember", "user123", map[string]interface{}{
		"listId":   listID,
		"memberId": "user789",
	})
	require.Equal(t, http.StatusOK, status)

	status, envelope = doRequest(t, srv, http.MethodPost, "/list/update", "user789", map[string]interface{}{
		"id":   listID,
		"name": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, status)
	assert.NotEmpty(t, errorMap(envelope))

	// Owner renames and archives
	status, envelope = doRequest(t, srv, http.MethodPost, "/list/update", "user123", map[string]interface{}{
		"id":   listID,
		"name": "Weekend Chores",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Weekend Chores", envelope["name"])

	status, envelope = doRequest(t, srv, http.MethodPost, "/list/updateArchived", "user123", map[string]interface{}{
		"id":       listID,
		"archived": true,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, envelope["archived"])

	// Ivan leaves; his own view of the list disappears
	status, envelope = doRequest(t, srv, http.MethodPost, "/list/leaveList", "user789", map[string]interface{}{
		"listId": listID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user789", envelope["leftUserId"])

	status, envelope = doRequest(t, srv, http.MethodGet, "/list/list", "user789", nil)
	require.Equal(t, http.StatusOK, status)
	lists := envelope["lists"].([]interface{})
	assert.Empty(t, lists)

	// Owner still sees it
	status, envelope = doRequest(t, srv, http.MethodGet, "/list/list", "user123", nil)
	require.Equal(t, http.StatusOK, status)
	lists = envelope["lists"].([]interface{})
	require.Len(t, lists, 1)
}

func TestAuthenticationFailures(t *testing.T) {
	srv := newTestServer(t, "")

	// No identity header and no fallback configured
	status, envelope := doRequest(t, srv, http.MethodGet, "/list/list", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, errorMap(envelope))

	// Unknown principal
	status, envelope = doRequest(t, srv, http.MethodGet, "/list/list", "ghost", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, errorMap(envelope))
}

func TestFallbackPrincipal(t *testing.T) {
	srv := newTestServer(t, "user123")

	// With the development fallback configured, an anonymous request acts as
	// the fallback principal
	status, envelope := doRequest(t, srv, http.MethodPost, "/list/create", "", map[string]interface{}{
		"name": "Anonymous List",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user123", envelope["ownerId"])
}

func TestValidationFailures(t *testing.T) {
	srv := newTestServer(t, "")

	// Missing name
	status, envelope := doRequest(t, srv, http.MethodPost, "/list/create", "user123", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, errorMap(envelope))

	// Malformed list id
	status, envelope = doRequest(t, srv, http.MethodGet, "/list/get?id=not-a-uuid", "user123", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, errorMap(envelope))

	// Double delete yields NotFound
	_, envelope = doRequest(t, srv, http.MethodPost, "/list/create", "user123", map[string]interface{}{
		"name": "Ephemeral",
	})
	listID := envelope["id"].(string)

	status, _ = doRequest(t, srv, http.MethodPost, "/list/delete", "user123", map[string]interface{}{"id": listID})
	require.Equal(t, http.StatusOK, status)

	status, envelope = doRequest(t, srv, http.MethodPost, "/list/delete", "user123", map[string]interface{}{"id": listID})
	require.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, errorMap(envelope))
}
