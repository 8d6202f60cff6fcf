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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/api-tests/test/api"
)

var _ = Describe("Contract Conformance", func() {
	var authKey string

	BeforeEach(func() {
		if !config.ValidateContract {
			Skip("contract validation disabled")
		}

		authKey = api.GetAuthKey(ctx, client, config.ValidCredentials)
	})

	It("should describe the key response", func() {
		resp, err := client.GetAPIKey(ctx, config.ValidCredentials.Email, config.ValidCredentials.Password)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		Expect(resp.ContractError).NotTo(HaveOccurred())
	})

	It("should describe both listings", func() {
		for _, filter := range []string{api.FilterAll, api.FilterMyPets} {
			resp, err := client.GetListOfPets(ctx, authKey, filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(resp.ContractError).NotTo(HaveOccurred(), "filter %q", filter)
		}
	})

	It("should describe the pet lifecycle", func() {
		created, petID := api.CreatePetWithCleanup(ctx, client, authKey, api.NewPetForm().Build(), config.ImagePath(api.CatJPEG))
		Expect(created.ContractError).NotTo(HaveOccurred())

		simple, _ := api.CreatePetWithCleanup(ctx, client, authKey, api.NewPetForm().Build(), "")
		Expect(simple.ContractError).NotTo(HaveOccurred())

		photo, err := client.AddPhotoToPet(ctx, authKey, petID, config.ImagePath(api.DogJPEG))
		Expect(err).NotTo(HaveOccurred())
		Expect(photo.StatusCode).To(Equal(http.StatusOK))
		Expect(photo.ContractError).NotTo(HaveOccurred())

		updated, err := client.UpdatePetInfo(ctx, authKey, petID, api.NewPetForm().WithName("Василий").Build())
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.StatusCode).To(Equal(http.StatusOK))
		Expect(updated.ContractError).NotTo(HaveOccurred())

		deleted, err := client.DeletePet(ctx, authKey, petID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted.StatusCode).To(Equal(http.StatusOK))
		Expect(deleted.ContractError).NotTo(HaveOccurred())
	})
})
