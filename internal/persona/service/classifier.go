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

package service

import (
	"math"

	signalModel "github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
)

// Classification thresholds. Utilization, growth and share values are
// decimals here, not percentages.
const (
	highUtilizationThreshold = 0.50
	lowUtilizationCeiling    = 0.30
	payGapThresholdDays      = 45.0
	bufferThresholdMonths    = 1.0
	recurringCountThreshold  = 3
	monthlySpendThreshold    = 50.0
	shareThreshold           = 0.10
	growthThreshold          = 0.02
	inflowThreshold          = 200.0
)

// Rule criteria descriptions recorded in criteria_met.
const (
	criteriaHighUtilization   = "credit_utilization >= 0.50 OR interest_charged > 0 OR minimum_payment_only OR is_overdue"
	criteriaVariableIncome    = "(median_pay_gap > 45 days OR irregular_frequency) AND cash_flow_buffer < 1.0"
	criteriaSubscriptionHeavy = "recurring_merchants >= 3 AND (monthly_recurring >= 50 OR subscription_share >= 0.10)"
	criteriaSavingsBuilder    = "(savings_growth_rate >= 0.02 OR net_savings_inflow >= 200) AND all_credit_utilization < 0.30"
	criteriaInsufficientData  = "insufficient data"
)

type personaRule struct {
	persona  string
	criteria string
	matches  func(*signalModel.FeatureSet) bool
	score    func(*signalModel.FeatureSet) float64
}

// personaRules are evaluated in priority order; the first match wins.
var personaRules = []personaRule{
	{constants.PersonaHighUtilization, criteriaHighUtilization, matchesHighUtilization, scoreHighUtilization},
	{constants.PersonaVariableIncome, criteriaVariableIncome, matchesVariableIncome, scoreVariableIncome},
	{constants.PersonaSubscriptionHeavy, criteriaSubscriptionHeavy, matchesSubscriptionHeavy, scoreSubscriptionHeavy},
	{constants.PersonaSavingsBuilder, criteriaSavingsBuilder, matchesSavingsBuilder, scoreSavingsBuilder},
}

// Classify evaluates the ordered persona rules against a feature set and
// returns the primary persona, the satisfied criteria and the independent
// 0-100 match score for every persona. A nil feature set classifies as
// general wellness with an insufficient-data marker.
func Classify(featureSet *signalModel.FeatureSet) (string, []string, map[string]float64) {

	scores := make(map[string]float64, len(constants.AllPersonas))
	if featureSet == nil {
		for _, persona := range constants.AllPersonas {
			scores[persona] = 0
		}
		scores[constants.PersonaGeneralWellness] = 100
		return constants.PersonaGeneralWellness, []string{criteriaInsufficientData}, scores
	}

	maxOther := 0.0
	for _, rule := range personaRules {
		score := round2(rule.score(featureSet) * 100)
		scores[rule.persona] = score
		maxOther = math.Max(maxOther, score)
	}
	scores[constants.PersonaGeneralWellness] = round2(math.Max(0, 100-maxOther))

	for _, rule := range personaRules {
		if rule.matches(featureSet) {
			return rule.persona, []string{rule.criteria}, scores
		}
	}
	return constants.PersonaGeneralWellness, nil, scores
}

func matchesHighUtilization(fs *signalModel.FeatureSet) bool {

	credit := fs.Credit
	if credit == nil || !credit.Applicable {
		return false
	}
	if credit.TotalUtilization/100 >= highUtilizationThreshold {
		return true
	}
	if credit.InterestCharged > 0 || credit.MinimumPaymentOnly || credit.IsOverdue {
		return true
	}
	for _, account := range credit.Accounts {
		if account.Utilization/100 >= highUtilizationThreshold {
			return true
		}
	}
	return false
}

func matchesVariableIncome(fs *signalModel.FeatureSet) bool {

	income := fs.Income
	if income == nil || !income.HasData {
		return false
	}
	irregular := income.MedianPayGapDays > payGapThresholdDays || income.Frequency == "irregular"
	return irregular && income.CashFlowBuffer < bufferThresholdMonths
}

func matchesSubscriptionHeavy(fs *signalModel.FeatureSet) bool {

	subs := fs.Subscriptions
	if subs == nil || !subs.HasData {
		return false
	}
	if subs.SubscriptionCount < recurringCountThreshold {
		return false
	}
	return subs.MonthlyRecurringSpend >= monthlySpendThreshold ||
		subs.SubscriptionShare/100 >= shareThreshold
}

func matchesSavingsBuilder(fs *signalModel.FeatureSet) bool {

	savings := fs.Savings
	if savings == nil || !savings.HasData {
		return false
	}
	active := savings.GrowthRate/100 >= growthThreshold || savings.NetInflow >= inflowThreshold
	if !active {
		return false
	}
	credit := fs.Credit
	if credit == nil || !credit.Applicable {
		// No credit accounts satisfies the low-utilization requirement.
		return true
	}
	if credit.TotalUtilization/100 >= lowUtilizationCeiling {
		return false
	}
	for _, account := range credit.Accounts {
		if account.Utilization/100 >= lowUtilizationCeiling {
			return false
		}
	}
	return true
}

// Match scores. Each criterion contributes a 0-1 component that reaches 0.5
// at its rule threshold and 1.0 at twice the threshold, so a user far past a
// threshold scores higher than one barely past it. OR-groups take the best
// component; AND-groups average their groups.

func component(value, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	return clamp01(value / (2 * threshold))
}

// inverseComponent scores criteria where lower values are stronger. It
// reaches 0.5 at the threshold and 1.0 at zero.
func inverseComponent(value, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	return clamp01((2*threshold - value) / (2 * threshold))
}

func boolComponent(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func scoreHighUtilization(fs *signalModel.FeatureSet) float64 {

	credit := fs.Credit
	if credit == nil || !credit.Applicable {
		return 0
	}
	maxUtilization := credit.TotalUtilization / 100
	for _, account := range credit.Accounts {
		maxUtilization = math.Max(maxUtilization, account.Utilization/100)
	}
	return math.Max(
		math.Max(component(maxUtilization, highUtilizationThreshold), boolComponent(credit.InterestCharged > 0)),
		math.Max(boolComponent(credit.MinimumPaymentOnly), boolComponent(credit.IsOverdue)),
	)
}

func scoreVariableIncome(fs *signalModel.FeatureSet) float64 {

	income := fs.Income
	if income == nil || !income.HasData {
		return 0
	}
	irregular := math.Max(
		component(income.MedianPayGapDays, payGapThresholdDays),
		boolComponent(income.Frequency == "irregular"),
	)
	bufferLow := inverseComponent(income.CashFlowBuffer, bufferThresholdMonths)
	return (irregular + bufferLow) / 2
}

func scoreSubscriptionHeavy(fs *signalModel.FeatureSet) float64 {

	subs := fs.Subscriptions
	if subs == nil || !subs.HasData {
		return 0
	}
	count := component(float64(subs.SubscriptionCount), float64(recurringCountThreshold))
	spend := math.Max(
		component(subs.MonthlyRecurringSpend, monthlySpendThreshold),
		component(subs.SubscriptionShare/100, shareThreshold),
	)
	return (count + spend) / 2
}

func scoreSavingsBuilder(fs *signalModel.FeatureSet) float64 {

	savings := fs.Savings
	if savings == nil || !savings.HasData {
		return 0
	}
	activity := math.Max(
		component(savings.GrowthRate/100, growthThreshold),
		component(savings.NetInflow, inflowThreshold),
	)

	utilizationLow := 1.0
	if credit := fs.Credit; credit != nil && credit.Applicable {
		maxUtilization := credit.TotalUtilization / 100
		for _, account := range credit.Accounts {
			maxUtilization = math.Max(maxUtilization, account.Utilization/100)
		}
		utilizationLow = inverseComponent(maxUtilization, lowUtilizationCeiling)
	}
	return (activity + utilizationLow) / 2
}
