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

package detect

import (
	"math"
	"strings"

	"github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

const (
	utilizationHighPct   = 50.0
	utilizationMediumPct = 30.0
	overdueUtilPct       = 90.0

	// Minimum payment heuristic: the greater of 2% of balance or $25,
	// matched within $5 of the most recent payment.
	minPaymentBalanceRate = 0.02
	minPaymentFloor       = 25.0
	minPaymentTolerance   = 5.0
)

// DetectCreditUtilization computes per-account and overall utilization for
// the user's credit accounts, sums interest and fee charges, and applies the
// minimum-payment heuristic. Applicable is false when the user holds no
// credit accounts with a positive limit.
func DetectCreditUtilization(accounts []txmodel.Account, transactions []txmodel.Transaction) model.CreditSignal {

	var creditAccounts []txmodel.Account
	for _, account := range accounts {
		if account.Type == constants.AccountTypeCredit && account.CreditLimit != nil && *account.CreditLimit > 0 {
			creditAccounts = append(creditAccounts, account)
		}
	}
	if len(creditAccounts) == 0 {
		return model.CreditSignal{UtilizationLevel: "low"}
	}

	// Most recent payment and summed interest charges per credit account.
	// Transactions arrive ordered oldest first, so the last positive amount
	// seen per account is the latest payment.
	lastPayment := make(map[string]float64)
	hasPayment := make(map[string]bool)
	interestByAccount := make(map[string]float64)
	creditAccountIds := make(map[string]bool, len(creditAccounts))
	for _, account := range creditAccounts {
		creditAccountIds[account.AccountId] = true
	}

	for _, txn := range transactions {
		if !creditAccountIds[txn.AccountId] {
			continue
		}
		if txn.Amount > 0 {
			lastPayment[txn.AccountId] = txn.Amount
			hasPayment[txn.AccountId] = true
			continue
		}
		if isInterestOrFee(txn) {
			interestByAccount[txn.AccountId] += math.Abs(txn.Amount)
		}
	}

	signal := model.CreditSignal{Applicable: true}
	totalInterest := 0.0

	for _, account := range creditAccounts {
		limit := *account.CreditLimit
		utilization := account.Balance / limit * 100

		minimumOnly := false
		if hasPayment[account.AccountId] {
			estimatedMin := math.Max(account.Balance*minPaymentBalanceRate, minPaymentFloor)
			if math.Abs(lastPayment[account.AccountId]-estimatedMin) <= minPaymentTolerance {
				minimumOnly = true
			}
		}

		signal.Accounts = append(signal.Accounts, model.AccountUtilization{
			AccountId:          account.AccountId,
			Subtype:            account.Subtype,
			Mask:               account.Mask,
			Balance:            account.Balance,
			CreditLimit:        limit,
			Utilization:        round2(utilization),
			UtilizationLevel:   utilizationLevel(utilization),
			MinimumPaymentOnly: minimumOnly,
		})

		signal.TotalBalance += account.Balance
		signal.TotalLimit += limit
		totalInterest += interestByAccount[account.AccountId]
		if minimumOnly {
			signal.MinimumPaymentOnly = true
		}
	}

	overall := signal.TotalBalance / signal.TotalLimit * 100
	signal.TotalUtilization = round2(overall)
	signal.UtilizationLevel = utilizationLevel(overall)
	signal.InterestCharged = round2(totalInterest)
	signal.IsOverdue = overall >= overdueUtilPct || totalInterest > 0
	return signal
}

func utilizationLevel(utilizationPct float64) string {
	switch {
	case utilizationPct >= utilizationHighPct:
		return "high"
	case utilizationPct >= utilizationMediumPct:
		return "medium"
	default:
		return "low"
	}
}

func isInterestOrFee(txn txmodel.Transaction) bool {
	if txn.CategoryContains("interest") || txn.CategoryContains("fee") {
		return true
	}
	return strings.Contains(strings.ToLower(txn.MerchantName), "interest")
}
