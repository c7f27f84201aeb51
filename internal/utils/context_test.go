// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-indie-chat/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAddressCtxKey(t *testing.T) {
	if AddressCtxKey.String() != "address" {
		t.Errorf("expected 'address', got '%s'", AddressCtxKey.String())
	}
}

func TestGetAddressFromContext_Success(t *testing.T) {
	want := models.Address("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	ctx := context.WithValue(context.Background(), AddressCtxKey, want)

	got, ok := GetAddressFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestGetAddressFromContext_Missing(t *testing.T) {
	if _, ok := GetAddressFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetAddressFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AddressCtxKey, "0xabc")

	if _, ok := GetAddressFromContext(ctx); ok {
		t.Error("expected ok=false for plain string value")
	}
}

func TestGetAddressFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), AddressCtxKey, models.Address(""))

	if _, ok := GetAddressFromContext(ctx); ok {
		t.Error("expected ok=false for empty address")
	}
}

func TestGetEnvironmentFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), EnvironmentCtxKey, models.EnvironmentLocal)

	env, ok := GetEnvironmentFromContext(ctx)

	if !ok || env != models.EnvironmentLocal {
		t.Errorf("expected local/true, got %s/%v", env, ok)
	}
	if _, ok := GetEnvironmentFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
