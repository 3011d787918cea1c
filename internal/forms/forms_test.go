package forms

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/notify"
)

func TestPlanFormAcceptsLooseInputShapes(t *testing.T) {
	bodies := []string{
		`{"name":"Pro","role":"merchant","price":"49.99","features":"fast shipping, priority support"}`,
		`{"name":"Pro","role":"merchant","price":49.99,"features":["fast shipping","priority support"]}`,
		`{"name":"Pro","role":"merchant","price":"49.99","features":"[\"fast shipping\",\"priority support\"]"}`,
	}
	for _, body := range bodies {
		var form PlanForm
		if err := json.Unmarshal([]byte(body), &form); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if err := form.Validate(); err != nil {
			t.Fatalf("validate %s: %v", body, err)
		}
		payload := form.Payload()
		if payload["price"] != json.Number("49.99") {
			t.Fatalf("price = %#v", payload["price"])
		}
		if !reflect.DeepEqual(payload["features"], []string{"fast shipping", "priority support"}) {
			t.Fatalf("features = %#v", payload["features"])
		}
	}
}

func TestPlanFormFieldLocalErrors(t *testing.T) {
	form := PlanForm{Role: "admin", Price: "abc"}
	err := form.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	want := map[string]string{
		"name":  "name is required",
		"role":  "role must be one of: merchant, model, influencer",
		"price": "price must be a number",
	}
	for field, msg := range want {
		if verrs[field] != msg {
			t.Fatalf("%s: got %q, want %q", field, verrs[field], msg)
		}
	}

	negative := PlanForm{Name: "Basic", Role: "model", Price: "-1"}
	if err := negative.Validate(); err == nil || err.Error() != "price must be zero or more" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestPayloadIsBuiltFromFormOnly(t *testing.T) {
	plan := models.NormalizePlan(map[string]any{"id": 4, "name": "Old", "role": "model", "price": "10", "features": "a,b"})
	form := PlanFromEntity(plan)
	form.Name = "New"

	payload := form.Payload()
	if _, leaked := payload["id"]; leaked {
		t.Fatalf("entity id leaked into payload: %v", payload)
	}
	if payload["name"] != "New" || payload["role"] != "model" {
		t.Fatalf("unexpected payload %v", payload)
	}
	form.Features[0] = "changed"
	if plan.Features[0] != "a" {
		t.Fatalf("editing the form mutated the entity")
	}
}

func TestUserFormAlwaysSendsRoleAndBan(t *testing.T) {
	u := models.NormalizeUser(map[string]any{"id": 2, "role_id": 3, "is_banned": true})
	form := UserFromEntity(u)
	form.RoleID = models.RoleInfluencer

	payload := form.Payload()
	if payload["role_id"] != models.RoleInfluencer || payload["is_banned"] != true {
		t.Fatalf("unexpected payload %v", payload)
	}
	if err := (UserForm{RoleID: 7}).Validate(); err == nil {
		t.Fatalf("role 7 must be rejected")
	}
}

func TestPayoutDecisionNeedsReasonToReject(t *testing.T) {
	if err := (PayoutDecision{Action: PayoutReject}).Validate(); err == nil || err.Error() != "reason is required" {
		t.Fatalf("unexpected error %v", err)
	}
	reject := PayoutDecision{Action: PayoutReject, Reason: " bank details invalid "}
	if err := reject.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p := reject.Payload(); p["status"] != models.PayoutRejected || p["rejection_reason"] != "bank details invalid" {
		t.Fatalf("unexpected payload %v", p)
	}
	approve := PayoutDecision{Action: PayoutApprove}
	if err := approve.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p := approve.Payload(); len(p) != 1 || p["status"] != models.PayoutApproved {
		t.Fatalf("unexpected payload %v", p)
	}
}

func TestStoryFormContentRules(t *testing.T) {
	cases := []struct {
		form  StoryForm
		field string
	}{
		{StoryForm{Type: "image"}, "media"},
		{StoryForm{Type: "text"}, "text_content"},
		{StoryForm{Type: "product"}, "product_id"},
		{StoryForm{Type: "poll"}, "type"},
		{StoryForm{Type: "video", MediaURL: "not a url"}, "media_url"},
	}
	for _, tc := range cases {
		var verrs ValidationErrors
		if err := tc.form.Validate(); !errors.As(err, &verrs) || verrs[tc.field] == "" {
			t.Fatalf("%+v: expected error on %s, got %v", tc.form, tc.field, err)
		}
	}

	upload := StoryForm{Type: "video", HasUpload: true, TextContent: "ignored"}
	if err := upload.Validate(); err != nil {
		t.Fatalf("upload-backed story rejected: %v", err)
	}
	payload := upload.WithMedia("https://cdn.example.com/v.mp4").Payload()
	if payload["media_url"] != "https://cdn.example.com/v.mp4" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if _, ok := payload["text_content"]; ok {
		t.Fatalf("video story carries text: %v", payload)
	}
}

func TestSettingsFormRules(t *testing.T) {
	ok := SettingsForm{Values: map[string]string{"commission_rate": "12.5", "delivery_fee": "0", "support_email": "x@y.z"}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	bad := SettingsForm{Values: map[string]string{"Commission Rate": "1", "commission_rate": "120", "delivery_fee": "-2"}}
	var verrs ValidationErrors
	if err := bad.Validate(); !errors.As(err, &verrs) || len(verrs) != 3 {
		t.Fatalf("expected three errors, got %v", err)
	}
	if verrs["commission_rate"] != "commission_rate must be at most 100" {
		t.Fatalf("unexpected rate error %q", verrs["commission_rate"])
	}
}

func TestEditorKeepsDialogOpenOnFailure(t *testing.T) {
	center := notify.NewCenter(10)
	editor := NewEditor[ShippingCompanyForm](center)
	editor.Open(ShippingCompanyForm{})

	calls := 0
	submit := func(context.Context, ShippingCompanyForm) error {
		calls++
		return errors.New("duplicate name")
	}

	invalid := ShippingCompanyForm{Name: "", ShippingCost: "5"}
	if err := editor.Submit(context.Background(), invalid, submit); err == nil {
		t.Fatalf("expected validation error")
	}
	if calls != 0 {
		t.Fatalf("invalid form reached the network")
	}
	if center.Recent(1)[0].Message != "name is required" {
		t.Fatalf("unexpected notification %+v", center.Recent(1))
	}

	typed := ShippingCompanyForm{Name: "FastX", ShippingCost: "5", DeliveryTime: "2 days"}
	if err := editor.Submit(context.Background(), typed, submit); err == nil {
		t.Fatalf("expected submit error")
	}
	if editor.State() != DialogOpen || editor.Form() != typed {
		t.Fatalf("dialog lost its values: %s %+v", editor.State(), editor.Form())
	}

	if err := editor.Submit(context.Background(), typed, func(context.Context, ShippingCompanyForm) error { return nil }); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if editor.State() != DialogClosed || editor.Err() != nil {
		t.Fatalf("expected closed dialog, got %s %v", editor.State(), editor.Err())
	}
}

func TestBlankNamesAreRequired(t *testing.T) {
	product := ProductForm{Name: "   ", Status: models.ProductActive, Price: "10"}
	var verrs ValidationErrors
	if err := product.Validate(); !errors.As(err, &verrs) || verrs["name"] == "" {
		t.Fatalf("blank product name accepted: %v", err)
	}

	shipping := ShippingCompanyForm{Name: "\t ", ShippingCost: "5"}
	verrs = nil
	if err := shipping.Validate(); !errors.As(err, &verrs) || verrs["name"] == "" {
		t.Fatalf("blank shipping company name accepted: %v", err)
	}
}
