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

package constants

const ApiBasePath = "/api/v1"

// Time windows supported for signal computation.
const (
	Window30d  = "30d"
	Window180d = "180d"
)

// WindowDays maps a time window identifier to its length in days.
var WindowDays = map[string]int{
	Window30d:  30,
	Window180d: 180,
}

// AllowedTimeWindows defines the valid set of time window identifiers.
var AllowedTimeWindows = map[string]bool{
	Window30d:  true,
	Window180d: true,
}

// Signal types produced by the detectors.
const (
	SignalSubscriptions     = "subscriptions"
	SignalCreditUtilization = "credit_utilization"
	SignalSavingsBehavior   = "savings_behavior"
	SignalIncomeStability   = "income_stability"
)

// AllSignalTypes lists every detector output stored per user and window.
var AllSignalTypes = []string{
	SignalSubscriptions,
	SignalCreditUtilization,
	SignalSavingsBehavior,
	SignalIncomeStability,
}

// Persona labels, in priority order. High utilization always outranks the
// softer signals; general wellness is the default.
const (
	PersonaHighUtilization   = "high_utilization"
	PersonaVariableIncome    = "variable_income"
	PersonaSubscriptionHeavy = "subscription_heavy"
	PersonaSavingsBuilder    = "savings_builder"
	PersonaGeneralWellness   = "general_wellness"
)

// AllPersonas lists personas in evaluation priority order.
var AllPersonas = []string{
	PersonaHighUtilization,
	PersonaVariableIncome,
	PersonaSubscriptionHeavy,
	PersonaSavingsBuilder,
	PersonaGeneralWellness,
}

// Account types and subtypes recognized by the detectors.
const (
	AccountTypeDepository = "depository"
	AccountTypeCredit     = "credit"
	AccountTypeLoan       = "loan"

	SubtypeChecking    = "checking"
	SubtypeSavings     = "savings"
	SubtypeMoneyMarket = "money market"
	SubtypeHSA         = "hsa"
)

// SavingsSubtypes defines account subtypes treated as savings-like.
var SavingsSubtypes = map[string]bool{
	SubtypeSavings:     true,
	SubtypeMoneyMarket: true,
	SubtypeHSA:         true,
}

// Recommendation types.
const (
	RecommendationEducation = "education"
	RecommendationOffer     = "partner_offer"
)

// Trigger signal identifiers referenced by the content catalog.
const (
	TriggerCreditUtilizationHigh     = "credit_utilization_high"
	TriggerMinimumPaymentOnly        = "minimum_payment_only"
	TriggerInterestCharged           = "interest_charged"
	TriggerIsOverdue                 = "is_overdue"
	TriggerIrregularFrequency        = "irregular_frequency"
	TriggerMedianPayGapHigh          = "median_pay_gap_high"
	TriggerCashFlowBufferLow         = "cash_flow_buffer_low"
	TriggerSubscriptionCountHigh     = "subscription_count_high"
	TriggerMonthlyRecurringHigh      = "monthly_recurring_high"
	TriggerSavingsGrowthRatePositive = "savings_growth_rate_positive"
	TriggerEmergencyFundAdequate     = "emergency_fund_adequate"
	TriggerSavingsBalancePositive    = "savings_balance_positive"
)

// Roles carried in API tokens.
const (
	RoleOperator = "operator"
	RoleConsumer = "consumer"
)

// Storage backend identifiers.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Caps applied by the content matcher.
const (
	MaxEducationItems = 5
	MaxOfferItems     = 3
)

// DefaultQueueSize is used for the refresh worker queue when the deployment
// configuration does not set one.
const DefaultQueueSize = 100

