package service

import (
	"context"
	"errors"
	"testing"
)

func TestContactServiceDefaultsAndDerivedFields(t *testing.T) {
	svc := NewContactService(setupServiceStore(t), nil)
	ctx := context.Background()

	address, err := svc.Create(ctx, ContactInput{Label: "Main Office", Content: "123 Photography Lane", IsMain: true})
	if err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	if address.ContactType != ContactAddress || address.Icon != "lucide:map-pin" || address.Href != "" {
		t.Fatalf("unexpected address contact: %+v", address)
	}

	email, err := svc.Create(ctx, ContactInput{ContactType: "Email", Label: "General", Content: "info@visualarea.com", IsMain: true})
	if err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	if email.Href != "mailto:info@visualarea.com" || email.TypeLabel != "Email" {
		t.Fatalf("unexpected email contact: %+v", email)
	}

	result := svc.List(ctx)
	main := 0
	for _, item := range result.Items {
		if item.IsMain {
			main++
		}
	}
	if main != 2 {
		t.Fatalf("isMain is not exclusive, expected 2 main contacts, got %d", main)
	}
}

func TestContactServiceValidation(t *testing.T) {
	svc := NewContactService(setupServiceStore(t), nil)
	ctx := context.Background()

	inputs := []ContactInput{
		{ContactType: "fax", Label: "Fax", Content: "123"},
		{ContactType: "phone", Label: "", Content: "123"},
		{ContactType: "phone", Label: "Support", Content: " "},
	}
	for _, input := range inputs {
		if _, err := svc.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestDecodeContactMissingIsMain(t *testing.T) {
	st := setupServiceStore(t)
	ctx := context.Background()
	id, err := st.Add(ctx, CollectionContacts, map[string]any{"contactType": "phone", "label": "Support", "content": "+1 (555) 123-4567"})
	if err != nil {
		t.Fatalf("seed contact failed: %v", err)
	}

	contact, err := NewContactService(st, nil).Get(ctx, id)
	if err != nil {
		t.Fatalf("get contact failed: %v", err)
	}
	if contact.IsMain {
		t.Fatalf("missing isMain should default to false")
	}
	if contact.Href != "tel:+1 (555) 123-4567" {
		t.Fatalf("unexpected href: %s", contact.Href)
	}
}
