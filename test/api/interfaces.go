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

package api

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

// PetsInterface is the set of PetFriends operations fixtures are built on.
type PetsInterface interface {
	GetAPIKey(ctx context.Context, email, password string) (*Response, error)
	GetListOfPets(ctx context.Context, authKey, filter string) (*Response, error)
	AddNewPet(ctx context.Context, authKey string, pet PetForm, photoPath string) (*Response, error)
	AddNewPetNoPhoto(ctx context.Context, authKey string, pet PetForm) (*Response, error)
	AddPhotoToPet(ctx context.Context, authKey, petID, photoPath string) (*Response, error)
	UpdatePetInfo(ctx context.Context, authKey, petID string, pet PetForm) (*Response, error)
	DeletePet(ctx context.Context, authKey, petID string) (*Response, error)
	AddNewPetWithInvalidAuthKey(ctx context.Context, authKey string, pet PetForm, photoPath string) (*Response, error)
}
