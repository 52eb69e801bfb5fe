/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"errors"
	"strings"
	"sync"

	"github.com/gorest-automation/users/pkg/openapi"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email has already been taken")
)

// Store is an in-memory user table with a unique email index.
type Store struct {
	lock   sync.RWMutex
	nextID int64
	users  map[int64]openapi.User
	// emails maps a lower cased address to its owner.
	emails map[string]int64
}

// NewStore returns an empty store that hands out IDs from firstID upwards.
func NewStore(firstID int64) *Store {
	return &Store{
		nextID: firstID,
		users:  map[int64]openapi.User{},
		emails: map[string]int64{},
	}
}

func emailKey(email string) string {
	return strings.ToLower(email)
}

func (s *Store) Create(in openapi.UserWrite) (openapi.User, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := emailKey(in.Email)

	if _, ok := s.emails[key]; ok {
		return openapi.User{}, ErrEmailTaken
	}

	user := openapi.User{
		Id:     s.nextID,
		Name:   in.Name,
		Email:  in.Email,
		Gender: in.Gender,
		Status: in.Status,
	}

	s.nextID++

	s.users[user.Id] = user
	s.emails[key] = user.Id

	return user, nil
}

func (s *Store) Get(id int64) (openapi.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return openapi.User{}, ErrNotFound
	}

	return user, nil
}

// Update applies only the fields set in the update.
func (s *Store) Update(id int64, update openapi.UserUpdate) (openapi.User, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[id]
	if !ok {
		return openapi.User{}, ErrNotFound
	}

	if update.Email != nil {
		key := emailKey(*update.Email)

		if owner, ok := s.emails[key]; ok && owner != id {
			return openapi.User{}, ErrEmailTaken
		}

		delete(s.emails, emailKey(user.Email))
		s.emails[key] = id

		user.Email = *update.Email
	}

	if update.Name != nil {
		user.Name = *update.Name
	}

	if update.Gender != nil {
		user.Gender = *update.Gender
	}

	if update.Status != nil {
		user.Status = *update.Status
	}

	s.users[id] = user

	return user, nil
}

func (s *Store) Delete(id int64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.users, id)
	delete(s.emails, emailKey(user.Email))

	return nil
}
