/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package guardrail validates generated rationale text against the
// prohibited-language policy. Recommendations whose rationale fails the
// check are never returned to the caller.
package guardrail

import (
	"strings"

	"github.com/wso2/financial-insights-service/internal/system/config"
)

// defaultProhibitedPhrases is the built-in policy, applied when the
// deployment configuration does not override it. Matching is
// case-insensitive substring matching.
var defaultProhibitedPhrases = []string{
	"overspending",
	"bad habits",
	"poor choices",
	"irresponsible",
	"wasteful",
	"you're overspending",
	"bad habit",
	"poor choice",
}

// Result is the outcome of a tone check for one piece of text.
type Result struct {
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations,omitempty"`
}

// Validator checks text against a set of prohibited phrases.
type Validator struct {
	phrases []string
}

// NewValidator builds a validator with the given phrases. An empty slice
// falls back to the built-in policy.
func NewValidator(phrases []string) *Validator {

	if len(phrases) == 0 {
		phrases = defaultProhibitedPhrases
	}
	lowered := make([]string, len(phrases))
	for i, phrase := range phrases {
		lowered[i] = strings.ToLower(phrase)
	}
	return &Validator{phrases: lowered}
}

// Default builds a validator from the deployment configuration.
func Default() *Validator {
	return NewValidator(config.GetFISRuntime().Config.Guardrail.ProhibitedPhrases)
}

// Validate reports whether the text passes the tone policy, together with
// every prohibited phrase found. Empty text passes.
func (v *Validator) Validate(text string) Result {

	if text == "" {
		return Result{Passed: true}
	}

	textLower := strings.ToLower(text)
	var violations []string
	for _, phrase := range v.phrases {
		if strings.Contains(textLower, phrase) {
			violations = append(violations, phrase)
		}
	}
	return Result{Passed: len(violations) == 0, Violations: violations}
}
