// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides thread-safe OS keychain operations for dremioctl.
// It stores the Dremio password and personal access token of the configured
// account; everything else lives in the plain config file.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "dremioctl"

// Keys used for storing secrets in the OS keychain.
const (
	KeyPassword = "dremio_password"
	KeyPAT      = "dremio_pat"
)

// ErrNotFound is returned when no secret is stored under a key.
var ErrNotFound = errors.New("secret not found in keychain")

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a keychain manager backed by the native OS keyring.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return NewManagerWithRing(ring), nil
}

// NewManagerWithRing wraps an already opened keyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If initialization fails, it is retried on the next call.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}
	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
func openRing() (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// pass is the fallback when the login Keychain is locked to us
		allowed = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowed = []keyring.BackendType{keyring.WinCredBackend}
	case "linux", "freebsd", "openbsd":
		allowed = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure storage not supported on " + runtime.GOOS)
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowed,
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
	}
	return keyring.Open(cfg)
}

func (m *Manager) set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value), Label: ServiceName + " " + key})
}

func (m *Manager) get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// SavePassword stores the account password.
func (m *Manager) SavePassword(password string) error { return m.set(KeyPassword, password) }

// LoadPassword returns the stored password or ErrNotFound.
func (m *Manager) LoadPassword() (string, error) { return m.get(KeyPassword) }

// SavePAT stores a personal access token.
func (m *Manager) SavePAT(pat string) error { return m.set(KeyPAT, pat) }

// LoadPAT returns the stored personal access token or ErrNotFound.
func (m *Manager) LoadPAT() (string, error) { return m.get(KeyPAT) }

// Remove deletes the secret stored under key. A missing key is not an error.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(key)
}

func (m *Manager) remove(key string) error {
	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// ClearAll removes every dremioctl secret. Missing keys are not an error.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range []string{KeyPassword, KeyPAT} {
		if err := m.remove(k); err != nil {
			return err
		}
	}
	return nil
}
