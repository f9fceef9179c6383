package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetOptions(t *testing.T) {
	r := gin.New()
	r.GET("/options", GetOptions)

	rec := doRequest(r, http.MethodGet, "/options", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)

	if steps := result["steps"].([]interface{}); len(steps) != 3 {
		t.Errorf("expected 3 steps, got %d", len(steps))
	}
	if currencies := result["currencies"].([]interface{}); len(currencies) != 8 {
		t.Errorf("expected 8 currencies, got %d", len(currencies))
	}
	if result["default_currency"] != "USD" {
		t.Errorf("expected USD default, got %v", result["default_currency"])
	}
	goals := result["financial_goals"].([]interface{})
	first := goals[0].(map[string]interface{})
	if first["value"] != "retirement" || first["label"] != "Retirement Planning" {
		t.Errorf("unexpected first goal %v", first)
	}
}
