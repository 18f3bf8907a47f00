// Copyright 2026 The Makebridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import "testing"

func TestRateLimiter_ExhaustsCallBucket(t *testing.T) {
	rl := NewRateLimiter(30, 3)

	for i := 0; i < 3; i++ {
		if !rl.AllowCall() {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}
	if rl.AllowCall() {
		t.Error("call beyond the bucket capacity should be denied")
	}
}

func TestRateLimiter_MutationBucketIsSeparate(t *testing.T) {
	rl := NewRateLimiter(1, 120)

	if !rl.AllowMutation() {
		t.Fatal("first mutation should be allowed")
	}
	if rl.AllowMutation() {
		t.Error("second mutation should be denied")
	}
	// The general call bucket is unaffected by mutation exhaustion.
	if !rl.AllowCall() {
		t.Error("non-mutating call should still be allowed")
	}
}
