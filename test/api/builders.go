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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"k8s.io/utils/ptr"
)

var ErrNoPetID = errors.New("pet record has no id")

// PetFormBuilder builds pet forms for testing.
type PetFormBuilder struct {
	form PetForm
}

// NewPetForm creates a new pet form builder with a unique name.
func NewPetForm() *PetFormBuilder {
	return &PetFormBuilder{
		form: PetForm{
			Name:       ptr.To(GenerateTestID()),
			AnimalType: ptr.To("кот"),
			Age:        ptr.To("3"),
		},
	}
}

// WithName sets the pet name.
func (b *PetFormBuilder) WithName(name string) *PetFormBuilder {
	b.form.Name = ptr.To(name)
	return b
}

// WithAnimalType sets the animal type.
func (b *PetFormBuilder) WithAnimalType(animalType string) *PetFormBuilder {
	b.form.AnimalType = ptr.To(animalType)
	return b
}

// WithAge sets the age, the service takes it as free text.
func (b *PetFormBuilder) WithAge(age string) *PetFormBuilder {
	b.form.Age = ptr.To(age)
	return b
}

// WithoutName omits the name.
func (b *PetFormBuilder) WithoutName() *PetFormBuilder {
	b.form.Name = nil
	return b
}

// WithoutAnimalType omits the animal type.
func (b *PetFormBuilder) WithoutAnimalType() *PetFormBuilder {
	b.form.AnimalType = nil
	return b
}

// WithoutAge omits the age.
func (b *PetFormBuilder) WithoutAge() *PetFormBuilder {
	b.form.Age = nil
	return b
}

// Build returns the completed pet form.
func (b *PetFormBuilder) Build() PetForm {
	return b.form
}

// PetID returns the id of a pet record.
func PetID(pet map[string]interface{}) (string, error) {
	id, ok := pet["id"].(string)
	if !ok || id == "" {
		return "", ErrNoPetID
	}

	return id, nil
}

// PetIDs collects the ids of a pet listing.
func PetIDs(listing *Response) set.Set[string] {
	pets := listing.Pets()

	ids := make([]string, 0, len(pets))

	for _, pet := range pets {
		if id, err := PetID(pet); err == nil {
			ids = append(ids, id)
		}
	}

	return set.New[string](ids...)
}

// FindOrCreateOwnPet returns the id of the first pet owned by the caller,
// creating one when the caller has none.  created reports whether the pet
// was made here so the caller can schedule its removal.
func FindOrCreateOwnPet(ctx context.Context, client PetsInterface, authKey string, pet PetForm, photoPath string) (string, bool, error) {
	listing, err := client.GetListOfPets(ctx, authKey, FilterMyPets)
	if err != nil {
		return "", false, fmt.Errorf("listing own pets: %w", err)
	}

	if listing.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("listing own pets: unexpected status %d: %s", listing.StatusCode, listing.Text)
	}

	if pets := listing.Pets(); len(pets) > 0 {
		id, err := PetID(pets[0])
		if err != nil {
			return "", false, err
		}

		return id, false, nil
	}

	var created *Response

	if photoPath == "" {
		created, err = client.AddNewPetNoPhoto(ctx, authKey, pet)
	} else {
		created, err = client.AddNewPet(ctx, authKey, pet, photoPath)
	}

	if err != nil {
		return "", false, fmt.Errorf("creating own pet: %w", err)
	}

	if created.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("creating own pet: unexpected status %d: %s", created.StatusCode, created.Text)
	}

	id, err := PetID(created.Body)
	if err != nil {
		return "", false, err
	}

	return id, true, nil
}

// GetAuthKey logs in and returns the issued key.
func GetAuthKey(ctx context.Context, client PetsInterface, credentials Credentials) string {
	resp, err := client.GetAPIKey(ctx, credentials.Email, credentials.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "login failed: %s", resp.Text)
	Expect(resp.Body).To(HaveKey("key"))

	key := resp.String("key")
	Expect(key).NotTo(BeEmpty())

	return key
}

// scheduleDelete removes a pet once the test finishes, pass or fail.
func scheduleDelete(ctx context.Context, client PetsInterface, authKey, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		resp, err := client.DeletePet(ctx, authKey, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if resp.StatusCode != http.StatusOK {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, resp.StatusCode)
		}
	})
}

// CreatePetWithCleanup creates a pet, with a photo if a path is given, and
// schedules automatic cleanup.
func CreatePetWithCleanup(ctx context.Context, client PetsInterface, authKey string, pet PetForm, photoPath string) (*Response, string) {
	var (
		resp *Response
		err  error
	)

	if photoPath == "" {
		resp, err = client.AddNewPetNoPhoto(ctx, authKey, pet)
	} else {
		resp, err = client.AddNewPet(ctx, authKey, pet, photoPath)
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", resp.Text)

	petID, err := PetID(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created pet with ID: %s\n", petID)

	scheduleDelete(ctx, client, authKey, petID)

	return resp, petID
}

// EnsureOwnPet returns one of the caller's pets, creating and scheduling the
// cleanup of one when there are none.
func EnsureOwnPet(ctx context.Context, client PetsInterface, authKey, photoPath string) string {
	petID, created, err := FindOrCreateOwnPet(ctx, client, authKey, NewPetForm().Build(), photoPath)
	Expect(err).NotTo(HaveOccurred())

	if created {
		GinkgoWriter.Printf("No own pets, created pet with ID: %s\n", petID)
		scheduleDelete(ctx, client, authKey, petID)
	}

	return petID
}

// matchingIDs returns the wanted ids that appear in a listing.
func matchingIDs(listing *Response, petIDs ...string) []string {
	var found []string

	for id := range PetIDs(listing).Intersection(set.New[string](petIDs...)).All() {
		found = append(found, id)
	}

	return found
}

// VerifyPetPresence verifies that a pet is in the listing.
func VerifyPetPresence(listing *Response, petID string) {
	Expect(matchingIDs(listing, petID)).To(ConsistOf(petID), "Expected pet ID %s to be present in the list", petID)
}

// VerifyPetAbsence verifies that a pet is not in the listing.
func VerifyPetAbsence(listing *Response, petID string) {
	Expect(matchingIDs(listing, petID)).To(BeEmpty(), "Expected pet ID %s to be absent from the list", petID)
}

// VerifyPetNamed verifies that a listing holds a pet with the name.
func VerifyPetNamed(listing *Response, name string) {
	names := make([]interface{}, 0, len(listing.Pets()))

	for _, pet := range listing.Pets() {
		names = append(names, pet["name"])
	}

	Expect(names).To(ContainElement(name), "Expected a pet named %q in the list", name)
}
