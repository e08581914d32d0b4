package links

import (
	"net/url"
	"strings"
	"testing"

	"github.com/wingseng/parts-catalog/internal/models"
)

func TestWhatsAppLink(t *testing.T) {
	got := WhatsApp("+254 718 234 222", "Hi, I need parts & pricing")
	if !strings.HasPrefix(got, "https://wa.me/254718234222?text=") {
		t.Fatalf("unexpected link: %s", got)
	}
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Query().Get("text") != "Hi, I need parts & pricing" {
		t.Fatalf("message did not round-trip: %q", u.Query().Get("text"))
	}
}

func TestProductQuoteMessage(t *testing.T) {
	p := models.Product{Name: "Oil Filter", PartNumber: "LP-201"}
	got := ProductQuoteMessage(p)
	if !strings.Contains(got, "Oil Filter") || !strings.Contains(got, "Part #LP-201") {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestTelAndMailto(t *testing.T) {
	if got := Tel("+254 718 234 222"); got != "tel:+254718234222" {
		t.Fatalf("tel: %s", got)
	}
	if got := Mailto("sales@wingsengineeringservices.com"); got != "mailto:sales@wingsengineeringservices.com" {
		t.Fatalf("mailto: %s", got)
	}
}
