package webapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ogxlabs/ogxsupply/config"
)

type createCall struct {
	kind string
	doc  interface{}
}

// fakeStore implements Store for handler tests.
type fakeStore struct {
	connected bool

	createID  string
	createErr error
	creates   []createCall

	docs       []bson.M
	getErr     error
	lastKind   string
	lastFilter bson.M
	lastLimit  int64

	countVal    int64
	countErr    error
	lastCountBy []bson.M

	names    []string
	namesErr error
	lastMax  int
}

func (f *fakeStore) Connected() bool { return f.connected }

func (f *fakeStore) CreateDocument(_ context.Context, kind string, doc interface{}) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.creates = append(f.creates, createCall{kind: kind, doc: doc})
	return f.createID, nil
}

func (f *fakeStore) GetDocuments(_ context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	f.lastKind = kind
	f.lastFilter = filter
	f.lastLimit = limit
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs, nil
}

func (f *fakeStore) CountDocuments(_ context.Context, kind string, filter bson.M) (int64, error) {
	f.lastKind = kind
	f.lastCountBy = append(f.lastCountBy, filter)
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countVal, nil
}

func (f *fakeStore) CollectionNames(_ context.Context, max int) ([]string, error) {
	f.lastMax = max
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	return f.names, nil
}

func newTestServer(store Store) *Server {
	cfg := &config.AppConfig{}
	cfg.Database.URL = "mongodb://localhost:27017"
	cfg.Database.Name = "ogx"
	return NewServer(cfg, store)
}

func doJSON(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response %q is not a JSON object: %v", rec.Body.String(), err)
	}
	return out
}

func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response %q is not a JSON array: %v", rec.Body.String(), err)
	}
	return out
}
