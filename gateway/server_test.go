package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/0glabs/lunch-buddies/common/api"
	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testClient struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	gin.SetMode(gin.TestMode)

	store := session.NewStore(session.StoreConfig{Seed: 3})

	return &testClient{
		t:      t,
		router: api.NewRouter(Routes(store)),
	}
}

func (tc *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}

	rec := httptest.NewRecorder()
	tc.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie {
			tc.cookie = cookie
		}
	}

	return rec
}

func (tc *testClient) json(method, path, body string) envelope {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := tc.do(req)
	require.Equal(tc.t, http.StatusOK, rec.Code)

	var resp envelope
	require.NoError(tc.t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func (tc *testClient) state(method, path, body string) session.State {
	resp := tc.json(method, path, body)
	require.Equal(tc.t, 0, resp.Code, resp.Message)

	var state session.State
	require.NoError(tc.t, json.Unmarshal(resp.Data, &state))

	return state
}

func (tc *testClient) form(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return tc.do(req)
}

func (tc *testClient) page() string {
	rec := tc.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(tc.t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestSessionCreatedOnFirstRequest(t *testing.T) {
	tc := newTestClient(t)

	state := tc.state(http.MethodGet, "/api/session", "")

	require.NotNil(t, tc.cookie)
	assert.Equal(t, tc.cookie.Value, state.ID)
	assert.Empty(t, state.Roster)
	assert.Empty(t, state.Grouping)
	assert.Equal(t, session.DefaultGroupSize, state.GroupSize)

	// same cookie, same session
	assert.Equal(t, state.ID, tc.state(http.MethodGet, "/api/session", "").ID)
}

func TestApiFlow(t *testing.T) {
	tc := newTestClient(t)

	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", " Eve "} {
		tc.state(http.MethodPost, "/api/people", `{"name":"`+name+`"}`)
	}

	state := tc.state(http.MethodPut, "/api/group-size", `{"size":2}`)
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Dave", "Eve"}, state.Roster)

	state = tc.state(http.MethodPost, "/api/groups", "")
	assert.Equal(t, 3, state.Grouping.Count())

	sizes := state.Grouping.Sizes()
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 2, 2}, sizes)

	state = tc.state(http.MethodDelete, "/api/people/0", "")
	assert.Equal(t, []string{"Bob", "Carol", "Dave", "Eve"}, state.Roster)

	state = tc.state(http.MethodPost, "/api/reset", "")
	assert.Empty(t, state.Roster)
	assert.Empty(t, state.Grouping)
	assert.Equal(t, session.DefaultGroupSize, state.GroupSize)
}

func TestApiRejectedEvents(t *testing.T) {
	tc := newTestClient(t)
	tc.state(http.MethodPost, "/api/people", `{"name":"Alice"}`)

	resp := tc.json(http.MethodPost, "/api/people", `{"name":"   "}`)
	assert.Equal(t, ErrBlankName.Code, resp.Code)

	resp = tc.json(http.MethodDelete, "/api/people/3", "")
	assert.Equal(t, ErrPersonNotFound.Code, resp.Code)

	resp = tc.json(http.MethodDelete, "/api/people/abc", "")
	assert.Equal(t, api.ErrValidation.Code, resp.Code)

	resp = tc.json(http.MethodPut, "/api/group-size", `{"size":1}`)
	assert.Equal(t, ErrGroupSizeTooSmall.Code, resp.Code)

	for _, body := range []string{`{}`, `{"size":0}`, `{"size":-4}`} {
		resp = tc.json(http.MethodPut, "/api/group-size", body)
		assert.Equal(t, ErrGroupSizeTooSmall.Code, resp.Code, body)
	}

	resp = tc.json(http.MethodPut, "/api/group-size", `{"size":"two"}`)
	assert.Equal(t, api.ErrValidation.Code, resp.Code)

	resp = tc.json(http.MethodPost, "/api/people", `{"name":`)
	assert.Equal(t, api.ErrValidation.Code, resp.Code)

	state := tc.state(http.MethodGet, "/api/session", "")
	assert.Equal(t, []string{"Alice"}, state.Roster)
	assert.Equal(t, session.DefaultGroupSize, state.GroupSize)
}

func TestPartitionEndpoint(t *testing.T) {
	tc := newTestClient(t)

	resp := tc.json(http.MethodPost, "/api/partition", `{"names":["A","B"," ","C","D"],"size":2,"seed":9}`)
	require.Equal(t, 0, resp.Code)

	var groups grouping.Grouping
	require.NoError(t, json.Unmarshal(resp.Data, &groups))
	assert.Equal(t, []int{2, 2}, groups.Sizes())
	assert.Nil(t, tc.cookie)

	resp = tc.json(http.MethodPost, "/api/partition", `{"names":["A","B"],"size":0}`)
	require.NoError(t, json.Unmarshal(resp.Data, &groups))
	assert.Empty(t, groups)

	resp = tc.json(http.MethodPost, "/api/partition", `{"names":[],"size":3}`)
	require.NoError(t, json.Unmarshal(resp.Data, &groups))
	assert.Empty(t, groups)
}

func TestHugeGroupSize(t *testing.T) {
	tc := newTestClient(t)

	resp := tc.json(http.MethodPost, "/api/partition", `{"names":["A","B","C"],"size":9223372036854775807}`)
	require.Equal(t, 0, resp.Code)

	var groups grouping.Grouping
	require.NoError(t, json.Unmarshal(resp.Data, &groups))
	assert.Equal(t, []int{3}, groups.Sizes())

	tc.state(http.MethodPost, "/api/people", `{"name":"A"}`)
	tc.state(http.MethodPost, "/api/people", `{"name":"B"}`)
	tc.state(http.MethodPut, "/api/group-size", `{"size":9223372036854775807}`)

	state := tc.state(http.MethodPost, "/api/groups", "")
	assert.Equal(t, []int{2}, state.Grouping.Sizes())
}

func TestPageFlow(t *testing.T) {
	tc := newTestClient(t)

	body := tc.page()
	assert.Contains(t, body, "Lunch Buddies")
	assert.NotContains(t, body, "People List")
	assert.NotContains(t, body, "Generated Groups")

	rec := tc.form("/people", url.Values{"name": {"Ada Lovelace"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	tc.form("/people", url.Values{"name": {"Grace Hopper"}})
	tc.form("/people", url.Values{"name": {"   "}})
	tc.form("/group-size", url.Values{"size": {"3"}})

	body = tc.page()
	assert.Contains(t, body, "2 people")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, ">AL<")
	assert.Contains(t, body, `value="3"`)

	tc.form("/groups", nil)
	body = tc.page()
	assert.Contains(t, body, "Generated Groups")
	assert.Contains(t, body, "Group 1")
	assert.NotContains(t, body, "Group 2")

	tc.form("/people/0/delete", nil)
	body = tc.page()
	assert.Contains(t, body, "1 people")

	rec = tc.form("/people/9/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	tc.form("/reset", nil)
	body = tc.page()
	assert.NotContains(t, body, "People List")
	assert.Contains(t, body, `value="2"`)
}

func TestPageEscapesNames(t *testing.T) {
	tc := newTestClient(t)

	tc.form("/people", url.Values{"name": {"<script>x</script>"}})

	body := tc.page()
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestStaticAssets(t *testing.T) {
	tc := newTestClient(t)

	rec := tc.do(httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".avatar")
}

func TestNewPageView(t *testing.T) {
	view := newPageView(session.State{
		Roster:    []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		GroupSize: 4,
		Grouping:  grouping.Grouping{{"H", "A"}, {"B"}},
	})

	assert.Len(t, view.People, 8)
	assert.Equal(t, "primary", view.People[0].Color)
	assert.Equal(t, "primary", view.People[7].Color)
	assert.Equal(t, 7, view.People[7].Index)
	assert.Equal(t, 2, view.Groups[1].Number)
	assert.Equal(t, "success", view.Groups[0].Members[1].Color)
	assert.Equal(t, session.MinGroupSize, view.MinGroupSize)
}

func TestReportStats(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	store := session.NewStore(session.StoreConfig{})
	store.Create()
	store.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		reportStats(ctx, store, time.Hour)
		close(done)
	}()

	// first report is logged right away, without waiting for the interval
	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Message == "Session stats" {
				return entry.Data["sessions"] == 2
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stats reporting did not stop after cancel")
	}
}
