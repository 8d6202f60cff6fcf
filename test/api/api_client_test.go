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
//nolint:revive // dot imports standard for Ginkgo
package api_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/api-tests/test/api"
)

const baseURL = "http://petfriends.test"

// recorder answers with a fixed response and keeps the request.
type recorder struct {
	request *http.Request
	form    map[string][]string
	files   map[string]string
}

func (r *recorder) responder(status int, body interface{}) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		r.request = req
		r.files = map[string]string{}

		if err := req.ParseMultipartForm(1 << 20); err == nil {
			r.form = req.MultipartForm.Value

			for name, headers := range req.MultipartForm.File {
				r.files[name] = headers[0].Header.Get("Content-Type")
			}
		}

		if text, ok := body.(string); ok {
			return httpmock.NewStringResponse(status, text), nil
		}

		return httpmock.NewJsonResponse(status, body)
	}
}

var _ = Describe("APIClient", func() {
	var (
		ctx    context.Context
		config *api.TestConfig
		client *api.APIClient
		rec    *recorder
	)

	BeforeEach(func() {
		httpmock.Reset()
		httpmock.ZeroCallCounters()

		ctx = context.Background()
		config = &api.TestConfig{
			BaseURL:        baseURL + "/",
			ImagesDir:      "suites/images",
			RequestTimeout: time.Second,
		}
		rec = &recorder{}

		var err error

		client, err = api.NewAPIClientWithConfig(config)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("When requesting a key", func() {
		It("should send the credentials as headers", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/key", rec.responder(http.StatusOK, map[string]string{"key": "abc"}))

			resp, err := client.GetAPIKey(ctx, "user@example.com", "hunter2")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.String("key")).To(Equal("abc"))
			Expect(rec.request.Header.Get("email")).To(Equal("user@example.com"))
			Expect(rec.request.Header.Get("password")).To(Equal("hunter2"))
			Expect(rec.request.Header.Get("Traceparent")).To(HavePrefix("00-"))
		})

		It("should return a rejection without an error", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/key", rec.responder(http.StatusForbidden, "<h1>Forbidden</h1>"))

			resp, err := client.GetAPIKey(ctx, "allert@com", "123")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			Expect(resp.Body).To(BeEmpty())
			Expect(resp.Text).To(ContainSubstring("Forbidden"))
		})
	})

	Context("When listing pets", func() {
		It("should send the filter and the key", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/pets", rec.responder(http.StatusOK, map[string]interface{}{
				"pets": []map[string]string{
					{"id": "p1", "name": "Кот"},
					{"id": "p2", "name": "Дог"},
				},
			}))

			resp, err := client.GetListOfPets(ctx, "abc", api.FilterMyPets)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Pets()).To(HaveLen(2))
			Expect(rec.request.URL.Query().Get("filter")).To(Equal("my_pets"))
			Expect(rec.request.Header.Get("auth_key")).To(Equal("abc"))
			Expect(httpmock.GetCallCountInfo()).To(HaveKeyWithValue("GET "+baseURL+"/api/pets", 1))
		})
	})

	Context("When creating a pet", func() {
		It("should post the attributes and the photo", func() {
			httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/pets", rec.responder(http.StatusOK, map[string]string{"id": "p1", "name": "Кот"}))

			pet := api.NewPetForm().WithName("Кот").WithAnimalType("кот").WithAge("3").Build()

			resp, err := client.AddNewPet(ctx, "abc", pet, config.ImagePath(api.CatJPEG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.String("name")).To(Equal("Кот"))
			Expect(rec.form).To(HaveKeyWithValue("name", []string{"Кот"}))
			Expect(rec.form).To(HaveKeyWithValue("animal_type", []string{"кот"}))
			Expect(rec.form).To(HaveKeyWithValue("age", []string{"3"}))
			Expect(rec.files).To(HaveKeyWithValue("pet_photo", "image/jpeg"))
		})

		It("should leave out attributes that are not set", func() {
			httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/create_pet_simple", rec.responder(http.StatusBadRequest, "missing name"))

			resp, err := client.AddNewPetNoPhoto(ctx, "abc", api.NewPetForm().WithoutName().Build())
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(rec.form).NotTo(HaveKey("name"))
			Expect(rec.form).To(HaveKey("animal_type"))
			Expect(rec.files).To(BeEmpty())
		})

		It("should answer a missing photo locally", func() {
			pet := api.NewPetForm().WithName("//////").WithAnimalType("******").WithAge("Four").Build()

			resp, err := client.AddNewPet(ctx, "abc", pet, config.ImagePath(api.MissingImage))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.String("name")).To(Equal("//////"))
			Expect(resp.String("animal_type")).To(Equal("******"))
			Expect(resp.String("age")).To(Equal("Four"))
			Expect(resp.String("error")).To(ContainSubstring(api.MissingImage))
			Expect(httpmock.GetTotalCallCount()).To(BeZero())
		})

		It("should send the invalid key by default", func() {
			httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/pets", rec.responder(http.StatusForbidden, "bad key"))

			resp, err := client.AddNewPetWithInvalidAuthKey(ctx, "", api.NewPetForm().Build(), config.ImagePath(api.Cat1JPG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			Expect(rec.request.Header.Get("auth_key")).To(Equal(api.InvalidAuthKey))
		})
	})

	Context("When changing a pet", func() {
		It("should upload the photo to the pet", func() {
			httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/pets/set_photo/p1", rec.responder(http.StatusOK, map[string]string{"id": "p1", "pet_photo": "data:image/jpeg;base64,AA=="}))

			resp, err := client.AddPhotoToPet(ctx, "abc", "p1", config.ImagePath(api.DogJPEG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.String("pet_photo")).NotTo(BeEmpty())
			Expect(rec.files).To(HaveKey("pet_photo"))
		})

		It("should put the new attributes", func() {
			httpmock.RegisterResponder(http.MethodPut, baseURL+"/api/pets/p1", rec.responder(http.StatusOK, map[string]string{"id": "p1", "name": "Василий"}))

			resp, err := client.UpdatePetInfo(ctx, "abc", "p1", api.NewPetForm().WithName("Василий").WithAge("5").Build())
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(rec.form).To(HaveKeyWithValue("name", []string{"Василий"}))
			Expect(rec.form).To(HaveKeyWithValue("age", []string{"5"}))
		})

		It("should delete the pet", func() {
			httpmock.RegisterResponder(http.MethodDelete, baseURL+"/api/pets/p1", rec.responder(http.StatusOK, ""))

			resp, err := client.DeletePet(ctx, "abc", "p1")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Body).To(BeEmpty())
			Expect(resp.Text).To(BeEmpty())
		})
	})

	Context("When the transport fails", func() {
		It("should return an error", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/key", httpmock.NewErrorResponder(errors.New("connection refused")))

			_, err := client.GetAPIKey(ctx, "user@example.com", "hunter2")
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})
	})

	Context("When validating the contract", func() {
		BeforeEach(func() {
			config.ValidateContract = true

			var err error

			client, err = api.NewAPIClientWithConfig(config)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should accept a conforming response", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/key", rec.responder(http.StatusOK, map[string]string{"key": "abc"}))

			resp, err := client.GetAPIKey(ctx, "user@example.com", "hunter2")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.ContractError).NotTo(HaveOccurred())
		})

		It("should record a violation without failing the call", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/pets", rec.responder(http.StatusOK, map[string]interface{}{
				"pets": []map[string]string{
					{"name": "Кот"},
				},
			}))

			resp, err := client.GetListOfPets(ctx, "abc", api.FilterAll)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.ContractError).To(HaveOccurred())
		})

		It("should accept undocumented error bodies", func() {
			httpmock.RegisterResponder(http.MethodGet, baseURL+"/api/key", rec.responder(http.StatusForbidden, "<h1>Forbidden</h1>"))

			resp, err := client.GetAPIKey(ctx, "allert@com", "123")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.ContractError).NotTo(HaveOccurred())
		})
	})
})
