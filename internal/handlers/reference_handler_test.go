package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestReferenceHandler_GetReference(t *testing.T) {
	tests := []struct {
		name       string
		scoping    bool
		wantOwners int
	}{
		{"with owner scoping", true, 5},
		{"without owner scoping", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/reference", NewReferenceHandler(tt.scoping).GetReference)

			rec := doRequest(r, "GET", "/reference", "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			result := parseJSON(t, rec)
			if len(result["kinds"].([]interface{})) != 2 {
				t.Errorf("expected 2 kinds, got %v", result["kinds"])
			}
			categories := result["categories"].([]interface{})
			if len(categories) != 7 || categories[len(categories)-1] != "Other" {
				t.Errorf("unexpected categories %v", categories)
			}
			if len(result["owners"].([]interface{})) != tt.wantOwners {
				t.Errorf("expected %d owners, got %v", tt.wantOwners, result["owners"])
			}
			if result["owner_scoping"] != tt.scoping {
				t.Errorf("unexpected owner_scoping %v", result["owner_scoping"])
			}
		})
	}
}
