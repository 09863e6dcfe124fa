// Package userstore persists the set of distinct bot users as a JSON
// file, used for broadcast targeting.
package userstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"idhash-telebot/internal/config"
)

// NoUsername is stored when Telegram reports no username for a user.
const NoUsername = "ندارد"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Store struct {
	path   string
	admins config.AdminSet
	log    *slog.Logger
}

func New(path string, admins config.AdminSet, log *slog.Logger) *Store {
	return &Store{path: path, admins: admins, log: log}
}

// Save appends the user to the persisted set unless the id is already
// present. Admin identities are never persisted. A corrupt store is
// logged and treated as empty rather than aborting the save.
func (s *Store) Save(id int64, username string) error {
	if s.admins.Contains(id) {
		return nil
	}

	var users []User
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &users); err != nil {
			s.log.Error("failed to read users file, starting with empty list", "path", s.path, "err", err)
			users = nil
		}
	case os.IsNotExist(err):
	default:
		s.log.Error("failed to read users file, starting with empty list", "path", s.path, "err", err)
	}

	for _, u := range users {
		if u.ID == id {
			return nil
		}
	}

	if username == "" {
		username = NoUsername
	}
	users = append(users, User{ID: id, Username: username})

	out, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	s.log.Info("saved user", "user_id", id)
	return nil
}

// LoadAll returns every stored user. A missing file yields an empty
// set; an unreadable or corrupt file is an error, so a broadcast never
// silently goes to nobody.
func (s *Store) LoadAll() ([]User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}
