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

// Package secrets stores the Make API token in the operating system
// keychain so it never has to live in a config file or shell history.
//
// Supported platforms:
//   - macOS: Keychain Access
//   - Linux: Secret Service API (GNOME Keyring, KWallet)
//   - Windows: Credential Manager
package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// keychainService is the service name used for keychain entries.
	keychainService = "makebridge"

	// tokenKey is the keychain entry holding the Make API token.
	tokenKey = "make-api-token"
)

var (
	// ErrTokenNotFound is returned when no token is stored.
	ErrTokenNotFound = errors.New("secrets: API token not found in keychain")

	// ErrKeychainUnavailable is returned when the keyring service cannot
	// be reached (locked keychain, missing desktop session, etc.).
	ErrKeychainUnavailable = errors.New("secrets: keychain service unavailable")
)

// TokenStore reads and writes the Make API token in the system keychain.
type TokenStore struct {
	available bool
}

// NewTokenStore creates a token store.
// It probes the keyring service so unavailability is detected early.
func NewTokenStore() *TokenStore {
	store := &TokenStore{available: true}

	// Probing a key that never exists distinguishes "service reachable
	// but empty" from "service unreachable".
	_, err := keyring.Get(keychainService, "__makebridge_availability_test__")
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		store.available = false
	}

	return store
}

// Available returns true if the keychain service is accessible.
func (s *TokenStore) Available() bool {
	return s.available
}

// Get retrieves the stored API token.
func (s *TokenStore) Get() (string, error) {
	if !s.available {
		return "", ErrKeychainUnavailable
	}

	value, err := keyring.Get(keychainService, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		if isKeychainUnavailableError(err) {
			return "", fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return "", fmt.Errorf("secrets: keychain error: %w", err)
	}

	return value, nil
}

// Set stores the API token.
func (s *TokenStore) Set(token string) error {
	if !s.available {
		return ErrKeychainUnavailable
	}
	if token == "" {
		return fmt.Errorf("secrets: token must not be empty")
	}

	if err := keyring.Set(keychainService, tokenKey, token); err != nil {
		if isKeychainUnavailableError(err) {
			return fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return fmt.Errorf("secrets: keychain error: %w", err)
	}

	return nil
}

// Delete removes the stored API token.
func (s *TokenStore) Delete() error {
	if !s.available {
		return ErrKeychainUnavailable
	}

	if err := keyring.Delete(keychainService, tokenKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrTokenNotFound
		}
		if isKeychainUnavailableError(err) {
			return fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return fmt.Errorf("secrets: keychain error: %w", err)
	}

	return nil
}

// isKeychainUnavailableError recognizes error messages indicating a locked
// or inaccessible keychain rather than a missing entry.
func isKeychainUnavailableError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, keyword := range []string{
		"locked",
		"no such interface",
		"cannot autolaunch",
		"connection refused",
		"access denied",
	} {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
