package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestPricingPlanLifecycle(t *testing.T) {
	api := newTestAPI(t)
	r := newTestEngine(api)
	r.GET("/pricing-plans", api.ListPricingPlans)
	r.GET("/pricing-plans/:id", api.GetPricingPlan)
	r.POST("/pricing-plans", api.CreatePricingPlan)
	r.PUT("/pricing-plans/:id", api.UpdatePricingPlan)
	r.DELETE("/pricing-plans/:id", api.DeletePricingPlan)

	rejected := doJSON(t, r, http.MethodPost, "/pricing-plans", map[string]any{"title": "Free", "price": 0})
	if rejected.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero price, got %d", rejected.Code)
	}
	if msg := decodeBody(t, rejected)["error"]; msg != "price must be greater than 0" {
		t.Fatalf("unexpected validation message: %v", msg)
	}

	created := doJSON(t, r, http.MethodPost, "/pricing-plans", map[string]any{
		"title":        "Basic Package",
		"price":        499,
		"featuresText": "4 Hours of Coverage\n\n 100 Digital Images ",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	plan := decodeBody(t, created)["plan"].(map[string]any)
	id := plan["id"].(string)
	features := plan["features"].([]any)
	if len(features) != 2 || features[1] != "100 Digital Images" {
		t.Fatalf("unexpected features: %v", features)
	}

	updated := doJSON(t, r, http.MethodPut, "/pricing-plans/"+id, map[string]any{"title": "Basic", "price": 549, "isPopular": true})
	if updated.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", updated.Code)
	}

	list := decodeBody(t, doJSON(t, r, http.MethodGet, "/pricing-plans", nil))
	if list["stale"] != false {
		t.Fatalf("expected fresh list, got %v", list["stale"])
	}
	items := list["items"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["price"] != float64(549) {
		t.Fatalf("unexpected list: %v", items)
	}

	if rr := doJSON(t, r, http.MethodDelete, "/pricing-plans/"+id, nil); rr.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428 without confirmation, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodDelete, "/pricing-plans/"+id+"?confirm=true", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected delete success, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodGet, "/pricing-plans/"+id, nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestCreateProjectRejectsMismatchedURL(t *testing.T) {
	api := newTestAPI(t)
	r := newTestEngine(api)
	r.POST("/projects", api.CreateProject)

	rr := doJSON(t, r, http.MethodPost, "/projects", map[string]any{
		"title":       "Promo",
		"description": "Spring campaign",
		"platform":    "facebook",
		"videoUrl":    "https://example.com/watch/1",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if msg := decodeBody(t, rr)["error"].(string); !strings.Contains(msg, "valid Facebook URL") {
		t.Fatalf("unexpected message: %s", msg)
	}

	ok := doJSON(t, r, http.MethodPost, "/projects", map[string]any{
		"title":       "Promo",
		"description": "Spring campaign",
		"videoUrl":    "https://www.facebook.com/reel/1234567890",
	})
	if ok.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", ok.Code, ok.Body.String())
	}
	project := decodeBody(t, ok)["project"].(map[string]any)
	if project["platform"] != "facebook" {
		t.Fatalf("expected detected facebook platform, got %v", project["platform"])
	}
	if project["embedUrl"] != "https://www.facebook.com/plugins/video.php?href=https://www.facebook.com/reel/1234567890" {
		t.Fatalf("unexpected embed url: %v", project["embedUrl"])
	}
}

func TestContactAndSocialLinkEndpoints(t *testing.T) {
	api := newTestAPI(t)
	r := newTestEngine(api)
	r.POST("/contacts", api.CreateContact)
	r.GET("/contacts/:id", api.GetContact)
	r.POST("/social-links", api.CreateSocialLink)
	r.GET("/social-links/icons", api.ListSocialIcons)

	created := doJSON(t, r, http.MethodPost, "/contacts", map[string]any{"contactType": "phone", "label": "Support", "content": "+1 555"})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", created.Code)
	}
	contact := decodeBody(t, created)["contact"].(map[string]any)
	if contact["href"] != "tel:+1 555" || contact["isMain"] != false {
		t.Fatalf("unexpected contact: %v", contact)
	}

	if rr := doJSON(t, r, http.MethodGet, "/contacts/unknown", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	if rr := doJSON(t, r, http.MethodPost, "/social-links", map[string]any{"platform": "Behance"}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty url, got %d", rr.Code)
	}
	if rr := doJSON(t, r, http.MethodPost, "/social-links", "not an object"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}

	icons := decodeBody(t, doJSON(t, r, http.MethodGet, "/social-links/icons", nil))["icons"].([]any)
	if len(icons) != 9 {
		t.Fatalf("expected 9 icons, got %d", len(icons))
	}
}

func TestParallaxRandomBackground(t *testing.T) {
	api := newTestAPI(t)
	r := newTestEngine(api)
	r.GET("/random", api.RandomParallaxBackground)

	body := decodeBody(t, doJSON(t, r, http.MethodGet, "/random", nil))
	if url, _ := body["backgroundUrl"].(string); !strings.HasPrefix(url, "https://img.heroui.chat/image/") {
		t.Fatalf("unexpected background url: %v", body["backgroundUrl"])
	}
}
