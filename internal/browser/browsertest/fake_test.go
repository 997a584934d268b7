package browsertest

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

func TestPage_LocatorReturnsFakeElement(t *testing.T) {
	// GIVEN
	page := NewPage("http://app.test/")
	page.Element("#name").Show("Valid User")

	// WHEN
	var loc playwright.Locator = page.Locator("#name").First()
	text, err := loc.InnerText()

	// THEN
	if err != nil {
		t.Fatalf("InnerText: %v", err)
	}
	if text != "Valid User" {
		t.Errorf("expected 'Valid User', got %q", text)
	}
	if _, ok := loc.(*Element); !ok {
		t.Errorf("expected *Element, got %T", loc)
	}
}
