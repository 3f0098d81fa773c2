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

package model

import "time"

// SignalUsed records one feature-set value substituted into a rationale,
// keyed by its dot-notation path.
type SignalUsed struct {
	Signal string      `json:"signal" bson:"signal"`
	Value  interface{} `json:"value" bson:"value"`
}

// GuardrailTrace captures the guardrail outcomes for one recommendation.
type GuardrailTrace struct {
	ToneCheck        bool     `json:"tone_check" bson:"tone_check"`
	ToneViolations   []string `json:"tone_violations,omitempty" bson:"tone_violations,omitempty"`
	EligibilityCheck bool     `json:"eligibility_check" bson:"eligibility_check"`
}

// DecisionTrace explains why a recommendation was produced: the matched
// persona, the content item, every signal value used in the rationale and
// the guardrail outcomes.
type DecisionTrace struct {
	PersonaMatch     string         `json:"persona_match" bson:"persona_match"`
	ContentId        string         `json:"content_id" bson:"content_id"`
	SignalsUsed      []SignalUsed   `json:"signals_used" bson:"signals_used"`
	GuardrailsPassed GuardrailTrace `json:"guardrails_passed" bson:"guardrails_passed"`
	Timestamp        time.Time      `json:"timestamp" bson:"timestamp"`
}

// Recommendation is one generated education or offer recommendation.
// Immutable once created; regeneration replaces the whole set for the
// user and window.
type Recommendation struct {
	RecommendationId string        `json:"recommendation_id" bson:"recommendation_id"`
	UserId           string        `json:"user_id" bson:"user_id"`
	TimeWindow       string        `json:"time_window" bson:"time_window"`
	Type             string        `json:"type" bson:"type"`
	ContentId        string        `json:"content_id" bson:"content_id"`
	Title            string        `json:"title" bson:"title"`
	Rationale        string        `json:"rationale" bson:"rationale"`
	DecisionTrace    DecisionTrace `json:"decision_trace" bson:"decision_trace"`
	ShownAt          time.Time     `json:"shown_at" bson:"shown_at"`
}
