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

// Package api provides black box test utilities for the PetFriends API.
//
// # Client
//
// APIClient is a thin HTTP client that never turns a status code into an
// error.  Every call returns the status and the decoded body so the suites
// can assert on failure paths as readily as on success.  Only transport and
// request construction failures are returned as errors.
//
// When contract validation is enabled each response is also checked against
// the embedded OpenAPI description and any violation is recorded on the
// response rather than failing the call.
//
// # Missing Photos
//
// A photo path that does not exist never reaches the service.  The client
// answers with a 400 that echoes the submitted attributes, matching what the
// service does when the photo part is absent.
//
// # Stand-in Service
//
// When API_BASE_URL is unset the suites start the in memory service from
// pkg/server and run against that instead, see LoadTestConfig.
package api
