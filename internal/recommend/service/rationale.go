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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wso2/financial-insights-service/internal/recommend/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
)

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// GenerateRationale substitutes every placeholder in the template with a
// formatted value from the feature set and records each raw value used.
// A placeholder that cannot be resolved fails the whole rationale; the
// caller skips that recommendation and continues with the rest.
func GenerateRationale(template string, featureSet *signalmodel.FeatureSet) (string, []model.SignalUsed, error) {

	rationale := template
	signalsUsed := []model.SignalUsed{}

	for _, placeholder := range placeholderPattern.FindAllString(template, -1) {
		name := strings.Trim(placeholder, "{}")
		formatted, used, err := resolvePlaceholder(name, featureSet)
		if err != nil {
			return "", nil, err
		}
		rationale = strings.ReplaceAll(rationale, placeholder, formatted)
		signalsUsed = append(signalsUsed, used)
	}
	return strings.TrimSpace(rationale), signalsUsed, nil
}

func resolvePlaceholder(name string, featureSet *signalmodel.FeatureSet) (string, model.SignalUsed, error) {

	if featureSet == nil {
		return "", model.SignalUsed{}, errors.Errorf("no feature set available to resolve placeholder %s", name)
	}
	credit := featureSet.Credit
	subscriptions := featureSet.Subscriptions
	savings := featureSet.Savings
	income := featureSet.Income

	switch name {
	case "card_name":
		if credit == nil || !credit.Applicable || len(credit.Accounts) == 0 {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization.accounts")
		}
		cardName := formatCardName(credit.Accounts[0])
		return cardName, signalUsed("credit_utilization.accounts[0]", cardName), nil
	case "utilization":
		if credit == nil || !credit.Applicable {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization")
		}
		value := credit.TotalUtilization
		path := "credit_utilization.total_utilization"
		if len(credit.Accounts) > 0 {
			value = credit.Accounts[0].Utilization
			path = "credit_utilization.accounts[0].utilization"
		}
		return FormatPercent(value), signalUsed(path, value), nil
	case "balance":
		if credit == nil || !credit.Applicable || len(credit.Accounts) == 0 {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization.accounts")
		}
		value := credit.Accounts[0].Balance
		return FormatCurrency(value), signalUsed("credit_utilization.accounts[0].balance", value), nil
	case "limit":
		if credit == nil || !credit.Applicable || len(credit.Accounts) == 0 {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization.accounts")
		}
		value := credit.Accounts[0].CreditLimit
		return FormatCurrency(value), signalUsed("credit_utilization.accounts[0].credit_limit", value), nil
	case "interest_charged":
		if credit == nil || !credit.Applicable {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization")
		}
		value := credit.InterestCharged
		return FormatCurrency(value), signalUsed("credit_utilization.interest_charged", value), nil
	case "total_balance":
		if credit == nil || !credit.Applicable {
			return "", model.SignalUsed{}, missingSignal(name, "credit_utilization")
		}
		value := credit.TotalBalance
		return FormatCurrency(value), signalUsed("credit_utilization.total_balance", value), nil
	case "subscription_count":
		if subscriptions == nil {
			return "", model.SignalUsed{}, missingSignal(name, "subscriptions")
		}
		value := subscriptions.SubscriptionCount
		return strconv.Itoa(value), signalUsed("subscriptions.subscription_count", value), nil
	case "monthly_recurring":
		if subscriptions == nil {
			return "", model.SignalUsed{}, missingSignal(name, "subscriptions")
		}
		value := subscriptions.MonthlyRecurringSpend
		return FormatCurrency(value), signalUsed("subscriptions.monthly_recurring_spend", value), nil
	case "total_savings":
		if savings == nil || !savings.HasData {
			return "", model.SignalUsed{}, missingSignal(name, "savings_behavior")
		}
		value := savings.SavingsBalance
		return FormatCurrency(value), signalUsed("savings_behavior.savings_balance", value), nil
	case "growth_rate":
		if savings == nil || !savings.HasData {
			return "", model.SignalUsed{}, missingSignal(name, "savings_behavior")
		}
		value := savings.GrowthRate
		return FormatPercent(value), signalUsed("savings_behavior.growth_rate", value), nil
	case "cash_flow_buffer":
		if income == nil || !income.HasData {
			return "", model.SignalUsed{}, missingSignal(name, "income_stability")
		}
		value := income.CashFlowBuffer
		return strconv.FormatFloat(value, 'f', 1, 64), signalUsed("income_stability.cash_flow_buffer", value), nil
	case "median_pay_gap":
		if income == nil || !income.HasData {
			return "", model.SignalUsed{}, missingSignal(name, "income_stability")
		}
		value := income.MedianPayGapDays
		return strconv.Itoa(int(math.Round(value))), signalUsed("income_stability.median_pay_gap_days", value), nil
	default:
		return "", model.SignalUsed{}, errors.Errorf("unknown rationale placeholder %s", name)
	}
}

func signalUsed(path string, value interface{}) model.SignalUsed {
	return model.SignalUsed{Signal: path, Value: value}
}

func missingSignal(placeholder, signal string) error {
	return errors.Errorf("placeholder %s cannot be resolved, signal %s is absent", placeholder, signal)
}

func formatCardName(account signalmodel.AccountUtilization) string {

	subtype := account.Subtype
	if subtype == "" {
		subtype = "card"
	}
	subtype = titleCase(subtype)
	if account.Mask != "" && account.Mask != "****" {
		return fmt.Sprintf("%s ending in %s", subtype, account.Mask)
	}
	return fmt.Sprintf("%s card", subtype)
}

func titleCase(s string) string {

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// FormatCurrency renders an amount as a dollar string with comma grouping,
// for example $3,400.00.
func FormatCurrency(amount float64) string {

	negative := amount < 0
	formatted := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)

	parts := strings.SplitN(formatted, ".", 2)
	integer := parts[0]
	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	result := "$" + grouped.String() + "." + parts[1]
	if negative {
		return "-" + result
	}
	return result
}

// FormatPercent renders a raw percent value as a whole-number percentage,
// for example 68%.
func FormatPercent(value float64) string {
	return strconv.FormatFloat(math.Round(value), 'f', -1, 64) + "%"
}
