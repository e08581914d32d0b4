package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	if v["name"] != "required" {
		t.Fatalf("expected required violation, got %v", v)
	}
	v2 := Violations{}
	Required("name", "Jane", v2)
	if !v2.Empty() {
		t.Fatalf("expected no violations, got %v", v2)
	}
}

func TestEmail(t *testing.T) {
	v := Violations{}
	Email("email", "not-an-email", v)
	if v["email"] != "invalid_email" {
		t.Fatalf("expected invalid_email, got %v", v)
	}
	v2 := Violations{}
	Email("email", "jane@example.com", v2)
	Email("email2", "", v2) // empty is not this validator's concern
	if !v2.Empty() {
		t.Fatalf("expected no violations, got %v", v2)
	}
}

func TestContactChannel(t *testing.T) {
	v := Violations{}
	ContactChannel("", "  ", v)
	if v["contact"] != "contact_channel_required" {
		t.Fatalf("expected contact violation, got %v", v)
	}
	v2 := Violations{}
	ContactChannel("", "+254700000000", v2)
	if !v2.Empty() {
		t.Fatalf("phone alone should satisfy the channel rule, got %v", v2)
	}
	v3 := Violations{}
	ContactChannel("jane@example.com", "", v3)
	if !v3.Empty() {
		t.Fatalf("email alone should satisfy the channel rule, got %v", v3)
	}
}

func TestOneOf(t *testing.T) {
	v := Violations{}
	OneOf("request_type", "quote", []string{"quote", "service", "parts", "general"}, v)
	if !v.Empty() {
		t.Fatalf("quote should be accepted, got %v", v)
	}
	OneOf("request_type", "spam", []string{"quote", "service", "parts", "general"}, v)
	if v["request_type"] != "invalid_value" {
		t.Fatalf("expected invalid_value, got %v", v)
	}
}
