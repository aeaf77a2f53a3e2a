package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	productsvc "github.com/davidcastanon/shopmart-backend/internal/products"
	"github.com/davidcastanon/shopmart-backend/pkg/pagination"
)

type stubProducts struct {
	page       *productsvc.PageDTO
	product    *productsvc.ProductDTO
	results    []productsvc.ProductDTO
	categories []string
	err        error

	gotCategory string
	gotParams   pagination.Params
	gotQuery    string
}

func (s *stubProducts) List(_ context.Context, category string, params pagination.Params) (*productsvc.PageDTO, error) {
	s.gotCategory = category
	s.gotParams = params
	return s.page, s.err
}

func (s *stubProducts) GetByID(context.Context, string) (*productsvc.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubProducts) Search(_ context.Context, query string) ([]productsvc.ProductDTO, error) {
	s.gotQuery = query
	return s.results, s.err
}

func (s *stubProducts) Categories(context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubProducts) Create(context.Context, productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return nil, nil
}

func TestListProducts(t *testing.T) {
	stub := &stubProducts{page: &productsvc.PageDTO{
		Items: []productsvc.ProductDTO{{ID: "p1", Name: "Lamp"}},
		Pagination: pagination.Meta{
			CurrentPage: 2, TotalPages: 5, TotalItems: 55, ItemsPerPage: 12,
		},
	}}
	handler := ListProducts(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&category=home", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotCategory != "home" {
		t.Fatalf("category not forwarded, got %q", stub.gotCategory)
	}
	if stub.gotParams.Page != 2 || stub.gotParams.Limit != pagination.DefaultLimit {
		t.Fatalf("unexpected params: %+v", stub.gotParams)
	}

	var envelope struct {
		Data       []productsvc.ProductDTO `json:"data"`
		Pagination pagination.Meta         `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "p1" {
		t.Fatalf("unexpected data: %+v", envelope.Data)
	}
	if envelope.Pagination.TotalItems != 55 {
		t.Fatalf("unexpected pagination: %+v", envelope.Pagination)
	}
}

func TestListProductsBadPage(t *testing.T) {
	handler := ListProducts(&stubProducts{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	handler := GetProduct(&stubProducts{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}

func TestSearchProducts(t *testing.T) {
	stub := &stubProducts{results: []productsvc.ProductDTO{{ID: "p1"}}}
	handler := SearchProducts(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=lamp", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.gotQuery != "lamp" {
		t.Fatalf("query not forwarded, got %q", stub.gotQuery)
	}
}

func TestSearchProductsMissingQuery(t *testing.T) {
	for _, target := range []string{"/api/products/search", "/api/products/search?q=%20%20"} {
		stub := &stubProducts{}
		handler := SearchProducts(stub, nil)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, resp.Code)
		}

		var envelope struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Error.Code != "VALIDATION_ERROR" {
			t.Fatalf("unexpected error code %q", envelope.Error.Code)
		}
	}
}
