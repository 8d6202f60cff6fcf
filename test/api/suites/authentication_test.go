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

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should issue a key", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidCredentials.Email, config.ValidCredentials.Password)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKey("key"))
				Expect(resp.String("key")).NotTo(BeEmpty())
			})

			It("should issue the same key on every login", func() {
				first := api.GetAuthKey(ctx, client, config.ValidCredentials)
				second := api.GetAuthKey(ctx, client, config.ValidCredentials)

				Expect(second).To(Equal(first))
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject the login", func() {
				resp, err := client.GetAPIKey(ctx, config.InvalidCredentials.Email, config.InvalidCredentials.Password)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Body).NotTo(HaveKey("key"))
			})

			It("should reject a valid email with the wrong password", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidCredentials.Email, config.InvalidCredentials.Password)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Body).NotTo(HaveKey("key"))
			})
		})
	})

	Context("When using a key the service never issued", func() {
		var (
			authKey string
			petID   string
		)

		BeforeEach(func() {
			authKey = api.GetAuthKey(ctx, client, config.ValidCredentials)
			petID = api.EnsureOwnPet(ctx, client, authKey, "")
		})

		It("should reject pet creation", func() {
			resp, err := client.AddNewPetWithInvalidAuthKey(ctx, "", api.NewPetForm().Build(), config.ImagePath(api.CatJPEG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject listing", func() {
			resp, err := client.GetListOfPets(ctx, api.InvalidAuthKey, api.FilterAll)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject updates", func() {
			resp, err := client.UpdatePetInfo(ctx, api.InvalidAuthKey, petID, api.NewPetForm().WithName("Василий").Build())
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject photo uploads", func() {
			resp, err := client.AddPhotoToPet(ctx, api.InvalidAuthKey, petID, config.ImagePath(api.DogJPEG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("should reject deletion and leave the pet in place", func() {
			resp, err := client.DeletePet(ctx, api.InvalidAuthKey, petID)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

			listing, err := client.GetListOfPets(ctx, authKey, api.FilterMyPets)
			Expect(err).NotTo(HaveOccurred())
			Expect(listing.StatusCode).To(Equal(http.StatusOK))

			api.VerifyPetPresence(listing, petID)
		})
	})
})
