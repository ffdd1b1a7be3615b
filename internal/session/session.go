// Package session remembers who is signed in. Sign-in is by handle only;
// there are no credentials to verify, so the keyring stores nothing more
// sensitive than the last-used username.
package session

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	serviceName = "lockin"
	handleKey   = "last-handle"
)

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/lockin/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("lockin-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// LastHandle returns the username that last signed in on this machine,
// or an error if none is remembered.
func LastHandle() (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(handleKey)
	if err != nil {
		return "", fmt.Errorf("getting remembered handle: %w", err)
	}
	return string(item.Data), nil
}

// RememberHandle stores the username so the next run can skip sign-in.
func RememberHandle(username string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	if err := ring.Set(keyring.Item{Key: handleKey, Data: []byte(username)}); err != nil {
		return fmt.Errorf("remembering handle: %w", err)
	}
	return nil
}

// Forget clears the remembered handle (sign-out).
func Forget() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	if err := ring.Remove(handleKey); err != nil {
		return fmt.Errorf("forgetting handle: %w", err)
	}
	return nil
}
