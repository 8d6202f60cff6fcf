/*
Copyright 2026 the PetFriends QA Authors.

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

package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a pet does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when a pet belongs to another user.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized is returned for unknown credentials or keys.
	ErrUnauthorized = errors.New("unauthorized")
)

// User is a registered account.
type User struct {
	ID       string
	Email    string
	Password string
	Key      string
}

// Pet is a pet record as the service stores it.  Age is kept verbatim,
// the service performs no numeric validation.
type Pet struct {
	ID         string
	UserID     string
	Name       string
	AnimalType string
	Age        string
	Photo      string
	CreatedAt  time.Time
}

// PetUpdate carries the attributes to change, nil fields are left alone.
type PetUpdate struct {
	Name       *string
	AnimalType *string
	Age        *string
}

// Memory is a concurrency safe, in memory user and pet store.
type Memory struct {
	lock  sync.RWMutex
	users map[string]*User
	keys  map[string]*User
	pets  map[string]Pet
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users: map[string]*User{},
		keys:  map[string]*User{},
		pets:  map[string]Pet{},
		now:   time.Now,
	}
}

// AddUser registers a user and issues its key.  Keys are stable for the
// lifetime of the store.
func (m *Memory) AddUser(email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrUnauthorized)
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.users[email]; ok {
		return nil, fmt.Errorf("user %s already exists", email)
	}

	user := &User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
		Key:      strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
	}

	m.users[email] = user
	m.keys[user.Key] = user

	return user, nil
}

// Authenticate returns the user matching the credentials.
func (m *Memory) Authenticate(email, password string) (*User, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	user, ok := m.users[email]
	if !ok || user.Password != password {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// UserByKey resolves an API key.
func (m *Memory) UserByKey(key string) (*User, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	user, ok := m.keys[key]
	if !ok {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// CreatePet stores a new pet owned by the user.
func (m *Memory) CreatePet(userID, name, animalType, age, photo string) Pet {
	m.lock.Lock()
	defer m.lock.Unlock()

	pet := Pet{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		AnimalType: animalType,
		Age:        age,
		Photo:      photo,
		CreatedAt:  m.now(),
	}

	m.pets[pet.ID] = pet

	return pet
}

// ListPets returns pets newest first, optionally limited to one owner.
func (m *Memory) ListPets(userID string) []Pet {
	m.lock.RLock()
	defer m.lock.RUnlock()

	out := make([]Pet, 0, len(m.pets))

	for _, pet := range m.pets {
		if userID != "" && pet.UserID != userID {
			continue
		}

		out = append(out, pet)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}

		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// owned looks up a pet and checks ownership, the caller must hold the lock.
func (m *Memory) owned(userID, petID string) (Pet, error) {
	pet, ok := m.pets[petID]
	if !ok {
		return Pet{}, ErrNotFound
	}

	if pet.UserID != userID {
		return Pet{}, ErrForbidden
	}

	return pet, nil
}

// UpdatePet applies the update to one of the user's pets.
func (m *Memory) UpdatePet(userID, petID string, update PetUpdate) (Pet, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	pet, err := m.owned(userID, petID)
	if err != nil {
		return Pet{}, err
	}

	if update.Name != nil {
		pet.Name = *update.Name
	}

	if update.AnimalType != nil {
		pet.AnimalType = *update.AnimalType
	}

	if update.Age != nil {
		pet.Age = *update.Age
	}

	m.pets[petID] = pet

	return pet, nil
}

// SetPhoto replaces the photo of one of the user's pets.
func (m *Memory) SetPhoto(userID, petID, photo string) (Pet, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	pet, err := m.owned(userID, petID)
	if err != nil {
		return Pet{}, err
	}

	pet.Photo = photo
	m.pets[petID] = pet

	return pet, nil
}

// DeletePet removes one of the user's pets.  Deleting a pet that does not
// exist is not an error.
func (m *Memory) DeletePet(userID, petID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, err := m.owned(userID, petID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}

		return err
	}

	delete(m.pets, petID)

	return nil
}
