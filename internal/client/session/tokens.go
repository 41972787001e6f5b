package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNoTokens is returned by TokenStore.Load when nothing is stored.
var ErrNoTokens = errors.New("no stored tokens")

// Tokens is the persisted credential pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// TokenStore keeps tokens between process runs.
type TokenStore interface {
	Load() (Tokens, error)
	Save(t Tokens) error
	Clear() error
}

const (
	keyAccess  = "access_token"
	keyRefresh = "refresh_token"
)

// DiskTokens stores the token pair as two files under a private directory.
type DiskTokens struct {
	d *diskv.Diskv
}

// NewDiskTokens stores tokens under dir, creating it with owner-only permissions.
func NewDiskTokens(dir string) *DiskTokens {
	return &DiskTokens{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 0,
		PathPerm:     0o700,
		FilePerm:     0o600,
	})}
}

func (s *DiskTokens) Load() (Tokens, error) {
	if !s.d.Has(keyRefresh) {
		return Tokens{}, ErrNoTokens
	}
	refresh, err := s.d.Read(keyRefresh)
	if err != nil {
		return Tokens{}, fmt.Errorf("read refresh token: %w", err)
	}
	access, err := s.d.Read(keyAccess)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Tokens{}, fmt.Errorf("read access token: %w", err)
	}
	if len(refresh) == 0 {
		return Tokens{}, ErrNoTokens
	}
	return Tokens{AccessToken: string(access), RefreshToken: string(refresh)}, nil
}

func (s *DiskTokens) Save(t Tokens) error {
	if err := s.d.Write(keyAccess, []byte(t.AccessToken)); err != nil {
		return fmt.Errorf("write access token: %w", err)
	}
	if err := s.d.Write(keyRefresh, []byte(t.RefreshToken)); err != nil {
		return fmt.Errorf("write refresh token: %w", err)
	}
	return nil
}

func (s *DiskTokens) Clear() error {
	for _, k := range []string{keyAccess, keyRefresh} {
		if err := s.d.Erase(k); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("erase %s: %w", k, err)
		}
	}
	return nil
}

type memoryTokens struct{}

func (memoryTokens) Load() (Tokens, error) { return Tokens{}, ErrNoTokens }
func (memoryTokens) Save(Tokens) error     { return nil }
func (memoryTokens) Clear() error          { return nil }
