// Copyright 2026 The Makebridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secrets

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func newMockedStore(t *testing.T) *TokenStore {
	t.Helper()
	keyring.MockInit()
	return NewTokenStore()
}

func TestTokenStore_SetGetDelete(t *testing.T) {
	store := newMockedStore(t)

	if !store.Available() {
		t.Fatal("mocked keyring should be available")
	}

	if err := store.Set("secret-token"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	token, err := store.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != "secret-token" {
		t.Errorf("Get() = %q, want %q", token, "secret-token")
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = store.Get()
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("Get() after delete: error = %v, want ErrTokenNotFound", err)
	}
}

func TestTokenStore_GetMissing(t *testing.T) {
	store := newMockedStore(t)

	_, err := store.Get()
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("Get() error = %v, want ErrTokenNotFound", err)
	}
}

func TestTokenStore_SetEmptyToken(t *testing.T) {
	store := newMockedStore(t)

	if err := store.Set(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestTokenStore_DeleteMissing(t *testing.T) {
	store := newMockedStore(t)

	err := store.Delete()
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("Delete() error = %v, want ErrTokenNotFound", err)
	}
}

func TestTokenStore_Unavailable(t *testing.T) {
	store := &TokenStore{available: false}

	if store.Available() {
		t.Error("store should report unavailable")
	}
	if _, err := store.Get(); !errors.Is(err, ErrKeychainUnavailable) {
		t.Errorf("Get() error = %v, want ErrKeychainUnavailable", err)
	}
	if err := store.Set("x"); !errors.Is(err, ErrKeychainUnavailable) {
		t.Errorf("Set() error = %v, want ErrKeychainUnavailable", err)
	}
	if err := store.Delete(); !errors.Is(err, ErrKeychainUnavailable) {
		t.Errorf("Delete() error = %v, want ErrKeychainUnavailable", err)
	}
}

func TestIsKeychainUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "locked keychain", err: errors.New("keychain is locked"), want: true},
		{name: "no dbus session", err: errors.New("cannot autolaunch D-Bus without X11"), want: true},
		{name: "plain failure", err: errors.New("item has wrong type"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isKeychainUnavailableError(tt.err); got != tt.want {
				t.Errorf("isKeychainUnavailableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
