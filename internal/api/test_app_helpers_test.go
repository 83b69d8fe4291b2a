package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/i18n"
	"github.com/terraincognita07/utsav/internal/security"
	"github.com/terraincognita07/utsav/internal/services"
)

const (
	testSecretKey = "0123456789abcdef0123456789abcdef"
	testPasscode  = "diya-lamp-42"
)

var testNow = time.Date(2025, time.March, 8, 9, 30, 0, 0, time.UTC)

type brokenNoteStore struct{}

func (brokenNoteStore) Note(context.Context, calendar.Date) (string, bool, error) {
	return "", false, errors.New("store offline")
}

func (brokenNoteStore) SaveNote(context.Context, calendar.Date, string) error {
	return errors.New("store offline")
}

func (brokenNoteStore) NotesBetween(context.Context, calendar.Date, calendar.Date) (map[calendar.Date]string, error) {
	return nil, errors.New("store offline")
}

func newTestApp(t *testing.T) (*fiber.App, *calendar.MemoryNoteStore) {
	t.Helper()
	store := calendar.NewMemoryNoteStore()
	return newTestAppWithStore(t, store, ""), store
}

func newLockedTestApp(t *testing.T) (*fiber.App, *calendar.MemoryNoteStore) {
	t.Helper()
	hash, err := security.HashPasscode(testPasscode)
	if err != nil {
		t.Fatalf("hash passcode: %v", err)
	}
	store := calendar.NewMemoryNoteStore()
	return newTestAppWithStore(t, store, hash), store
}

func newTestAppWithStore(t *testing.T, store calendar.NoteStore, passcodeHash string) *fiber.App {
	t.Helper()

	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	service := services.NewCalendarService(calendar.DefaultFestivals(), store, time.Sunday)
	handler, err := NewHandler(service, testSecretKey, passcodeHash, time.UTC, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) (*http.Response, string) {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, string(body)
}

func getPage(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept-Language", "en")
	return doRequest(t, app, request)
}

func postForm(t *testing.T, app *fiber.App, path string, form string, cookie string) (*http.Response, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return doRequest(t, app, request)
}

func putJSON(t *testing.T, app *fiber.App, path string, payload string, cookie string) (*http.Response, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPut, path, strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return doRequest(t, app, request)
}

func decodeJSON(t *testing.T, body string, target any) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("decode response body %q: %v", body, err)
	}
}

func readAPIError(t *testing.T, body string) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func httptestRequestWithLanguage(path string, language string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Accept-Language", language)
	return request
}

func containsAll(body string, fragments ...string) bool {
	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			return false
		}
	}
	return true
}
