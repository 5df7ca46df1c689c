package webapi

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogxlabs/ogxsupply/internal/domain"
)

func TestCreateProductReturnsStoreID(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true, createID: "64a7f0d2c1e4b23a9f8e1d07"}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodPost, "/api/products",
		`{"name":"Test Valve","category":"Valves","in_stock":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := decodeObject(t, rec)
	if body["id"] != "64a7f0d2c1e4b23a9f8e1d07" {
		t.Fatalf("id = %v, want store-issued id", body["id"])
	}

	if len(store.creates) != 1 {
		t.Fatalf("store received %d inserts, want 1", len(store.creates))
	}
	call := store.creates[0]
	if call.kind != domain.KindProduct {
		t.Fatalf("insert kind = %q, want %q", call.kind, domain.KindProduct)
	}
	p, ok := call.doc.(domain.Product)
	if !ok {
		t.Fatalf("insert doc type = %T, want domain.Product", call.doc)
	}
	if p.Name != "Test Valve" || p.Category != "Valves" || p.InStock {
		t.Fatalf("insert doc = %+v, want Test Valve/Valves/in_stock=false", p)
	}
}

func TestCreateProductDefaultsInStock(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true, createID: "64a7f0d2c1e4b23a9f8e1d08"}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodPost, "/api/products",
		`{"name":"Pressure Gauge","category":"Instrumentation"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	p := store.creates[0].doc.(domain.Product)
	if !p.InStock {
		t.Fatal("in_stock = false for omitted field, want default true")
	}
}

func TestCreateProductValidationRejectsBeforePersistence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing name", `{"category":"Valves"}`, "name"},
		{"missing category", `{"name":"Test Valve"}`, "category"},
		{"malformed image url", `{"name":"Test Valve","category":"Valves","image_url":"not-a-url"}`, "image_url"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := &fakeStore{connected: true}
			s := newTestServer(store)

			rec := doJSON(t, s, http.MethodPost, "/api/products", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			detail, _ := decodeObject(t, rec)["detail"].(string)
			if !strings.Contains(detail, tc.wantField) {
				t.Fatalf("detail = %q, want mention of %q", detail, tc.wantField)
			}
			if len(store.creates) != 0 {
				t.Fatalf("store received %d inserts, want 0", len(store.creates))
			}
		})
	}
}

func TestCreateProductStoreErrorSurfacesDetail(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true, createErr: errors.New("insert rejected")}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodPost, "/api/products",
		`{"name":"Test Valve","category":"Valves"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if detail := decodeObject(t, rec)["detail"]; detail != "insert rejected" {
		t.Fatalf("detail = %v, want raw store error", detail)
	}
}

func TestListProductsRenamesIdentifier(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	store := &fakeStore{
		connected: true,
		docs:      []bson.M{{"_id": oid, "name": "Test Valve", "category": "Valves", "in_stock": false}},
	}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodGet, "/api/products?category=Valves", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	items := decodeArray(t, rec)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0]["id"] != oid.Hex() {
		t.Fatalf("id = %v, want %q", items[0]["id"], oid.Hex())
	}
	if _, exists := items[0]["_id"]; exists {
		t.Fatal("_id still present in response, want removed")
	}
	if items[0]["in_stock"] != false {
		t.Fatalf("in_stock = %v, want false", items[0]["in_stock"])
	}

	if store.lastKind != domain.KindProduct {
		t.Fatalf("query kind = %q, want %q", store.lastKind, domain.KindProduct)
	}
	if store.lastFilter["category"] != "Valves" {
		t.Fatalf("filter = %v, want category=Valves", store.lastFilter)
	}
}

func TestListProductsDefaultAndExplicitLimit(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true}
	s := newTestServer(store)

	doJSON(t, s, http.MethodGet, "/api/products", "")
	if store.lastLimit != 24 {
		t.Fatalf("default limit = %d, want 24", store.lastLimit)
	}
	if len(store.lastFilter) != 0 {
		t.Fatalf("filter = %v, want empty for no category", store.lastFilter)
	}

	doJSON(t, s, http.MethodGet, "/api/products?limit=2", "")
	if store.lastLimit != 2 {
		t.Fatalf("limit = %d, want 2", store.lastLimit)
	}
}

func TestListProductsEmptyResultIsArray(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodGet, "/api/products", "")
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want empty JSON array", got)
	}
}

func TestListProductsStoreErrorSurfacesDetail(t *testing.T) {
	t.Parallel()

	store := &fakeStore{connected: true, getErr: errors.New("query failed")}
	s := newTestServer(store)

	rec := doJSON(t, s, http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if detail := decodeObject(t, rec)["detail"]; detail != "query failed" {
		t.Fatalf("detail = %v, want raw store error", detail)
	}
}
