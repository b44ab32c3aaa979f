package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/filestore"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/internal/server/store/drivers/sqlite"
	"github.com/coursepilot/coursepilot/pkg/cryptox"
	"github.com/coursepilot/coursepilot/pkg/metricsx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "http-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testEnv struct {
	server *httptest.Server
	store  store.Store
}

func newTestEnv(t *testing.T, sessionTTL time.Duration) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	files, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter("test", st, files, metricsx.New("http"), false, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.SessionService = &service.SessionService{Store: st, TTL: sessionTTL}
	router.ResultService = &service.ResultService{Store: st}
	router.PaymentService = &service.PaymentService{Store: st, Files: files}
	router.ProfileService = &service.ProfileService{Store: st}
	router.AdminService = &service.AdminService{Store: st, CoursePrice: 500}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: st}
}

// newClient returns an HTTP client with its own cookie jar, i.e. one
// browser session.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func (e *testEnv) postJSON(t *testing.T, client *http.Client, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := client.Post(e.server.URL+path, "application/json", &buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) register(t *testing.T, client *http.Client, username, email, password string) {
	t.Helper()

	resp := e.postJSON(t, client, "/register", map[string]string{
		"username": username, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) login(t *testing.T, client *http.Client, email, password string) {
	t.Helper()

	resp := e.postJSON(t, client, "/login", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (e *testEnv) loginAdmin(t *testing.T) *http.Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, service.SeedAdmin(context.Background(), e.store, logger,
		"admin", "admin@x.com", "admin-secret"))

	client := newClient(t)
	e.login(t, client, "admin@x.com", "admin-secret")
	return client
}

func submitResultBody(questions int) map[string]any {
	q := make([]map[string]any, 0, questions)
	for i := 0; i < questions; i++ {
		q = append(q, map[string]any{
			"question":       "2+2?",
			"options":        []string{"3", "4", "5", "6"},
			"correctAnswer":  "4",
			"selectedOption": "4",
		})
	}
	return map[string]any{
		"name":       "Alice",
		"subject":    "Math",
		"level":      "intermediate",
		"percent":    82.5,
		"start_time": "2025-03-01T10:00:00Z",
		"end_time":   "2025-03-01T10:30:00Z",
		"goodAt":     []string{"algebra"},
		"improvement": []string{
			"geometry",
		},
		"courseSuggestions": []map[string]string{
			{"title": "Geometry Basics", "level": "beginner"},
		},
		"submittedData": q,
	}
}

func (e *testEnv) submitPayment(t *testing.T, client *http.Client, subject string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Alice"))
	require.NoError(t, mw.WriteField("subject", subject))
	require.NoError(t, mw.WriteField("paymentMethod", "bank-transfer"))
	part, err := mw.CreateFormFile("receipt", "receipt.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("evidence"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := client.Post(e.server.URL+"/component/submitPayment", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionGateFailsClosed(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	protected := []string{
		"/api/change-password",
		"/component/sidebar",
		"/component/Dashboard",
		"/component/suggestion",
		"/component/billing",
		"/component/Progress",
		"/component/Purchased",
		"/component/setting",
		"/component/Updating_user",
		"/component/submitPayment",
		"/AdminComponent/UpdatePaymentStatus",
		"/AdminComponent/CourseManagment",
		"/AdminComponent/BillingPayment",
		"/AdminComponent/totalUsers",
		"/AdminComponent/totalamount",
		"/AdminComponent/totalcourses",
		"/AdminComponent/UserManagment",
	}
	for _, path := range protected {
		resp := env.postJSON(t, client, path, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestExpiredSessionIsRejected(t *testing.T) {
	env := newTestEnv(t, -time.Minute)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp := env.postJSON(t, client, "/component/sidebar", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")

	resp := env.postJSON(t, client, "/login", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// No session cookie was issued; the gate still rejects.
	resp = env.postJSON(t, client, "/component/sidebar", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterDuplicateEmailAnswers400(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")

	resp := env.postJSON(t, client, "/register", map[string]string{
		"username": "bob", "email": "a@x.com", "password": "other1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSessionContract(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	// Missing session answers 404, not 401.
	resp := env.postJSON(t, client, "/get-session", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp = env.postJSON(t, client, "/get-session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var principal domain.Principal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&principal))
	require.Equal(t, "alice", principal.Username)
	require.Equal(t, domain.RoleUser, principal.Role)
	require.NotEmpty(t, principal.AccountID)
}

func TestLogoutDestroysSession(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp := env.postJSON(t, client, "/component/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/sidebar", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp := env.postJSON(t, client, "/AdminComponent/totalUsers", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordFlow(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp := env.postJSON(t, client, "/api/change-password", map[string]string{
		"currentPassword": "wrong", "newPassword": "next-secret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.postJSON(t, client, "/api/change-password", map[string]string{
		"currentPassword": "secret", "newPassword": "next-secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fresh := newClient(t)
	env.login(t, fresh, "a@x.com", "next-secret")
}

func TestFullAssessmentAndPaymentScenario(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	// Suggestions before any result: 404.
	resp := env.postJSON(t, client, "/component/suggestion", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/Dashboard", submitResultBody(3))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/suggestion", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggestions []domain.CourseSuggestion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestions))
	require.Len(t, suggestions, 1)
	require.Equal(t, "Geometry Basics", suggestions[0].Title)

	resp = env.postJSON(t, client, "/component/Progress", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress ProgressResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&progress))
	require.Len(t, progress.Data, 1)
	require.Len(t, progress.Data[0].Questions, 3)

	// Nothing purchased yet.
	resp = env.postJSON(t, client, "/component/Purchased", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.submitPayment(t, client, "Math")

	resp = env.postJSON(t, client, "/component/billing", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var billing []PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&billing))
	require.Len(t, billing, 1)
	require.Equal(t, domain.PaymentSubmitted, billing[0].Status)

	// Approval is an admin operation.
	admin := env.loginAdmin(t)
	resp = env.postJSON(t, admin, "/AdminComponent/UpdatePaymentStatus", map[string]string{
		"id": billing[0].ID, "status": domain.PaymentApproved,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/Purchased", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var purchased []PurchasedSubject
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&purchased))
	require.Equal(t, []PurchasedSubject{{Subject: "Math"}}, purchased)

	// Approved is terminal.
	resp = env.postJSON(t, admin, "/AdminComponent/UpdatePaymentStatus", map[string]string{
		"id": billing[0].ID, "status": domain.PaymentRejected,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileSettingRoundTrip(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	// No profile yet.
	resp := env.postJSON(t, client, "/component/Updating_user", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/setting", map[string]string{
		"name": "Alice", "phoneNumber": "123", "country": "NZ",
		"province": "Otago", "city": "Dunedin", "street": "1 George St",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postJSON(t, client, "/component/Updating_user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	require.Equal(t, "Alice", profile.Name)
	require.Equal(t, "a@x.com", profile.Email)
}

func TestAdminRollupEndpoints(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	resp := env.postJSON(t, client, "/component/Dashboard", submitResultBody(1))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	admin := env.loginAdmin(t)

	resp = env.postJSON(t, admin, "/AdminComponent/totalUsers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.EqualValues(t, 2, users) // alice + seeded admin

	resp = env.postJSON(t, admin, "/AdminComponent/totalcourses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var courses int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	require.EqualValues(t, 1, courses)

	resp = env.postJSON(t, admin, "/AdminComponent/totalamount", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var amount float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&amount))
	require.EqualValues(t, 500, amount)

	resp = env.postJSON(t, admin, "/AdminComponent/CourseManagment", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.postJSON(t, admin, "/AdminComponent/UserManagment", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var accounts []service.AccountSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accounts))
	require.Len(t, accounts, 2)
}

func TestSubmitPaymentValidatesFields(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	client := newClient(t)

	env.register(t, client, "alice", "a@x.com", "secret")
	env.login(t, client, "a@x.com", "secret")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Alice"))
	// subject, paymentMethod and receipt missing
	require.NoError(t, mw.Close())

	resp, err := client.Post(env.server.URL+"/component/submitPayment", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	resp, err := http.Get(env.server.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(env.server.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(env.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
