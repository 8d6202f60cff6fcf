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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
)

// Image fixtures, relative to TestConfig.ImagesDir.
const (
	CatJPEG = "cat.jpeg"
	Cat1JPG = "cat1.jpg"
	DogJPEG = "dog.jpeg"
	CatGIF  = "cat2.gif"

	// MissingImage is deliberately absent from the fixtures.
	MissingImage = "cat5.jpg"
)

// ImagePath returns the location of an image fixture.
func (c *TestConfig) ImagePath(name string) string {
	return filepath.Join(c.ImagesDir, name)
}

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}
