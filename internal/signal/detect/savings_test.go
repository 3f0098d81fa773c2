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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

func TestDetectSavingsBehaviorNoSavingsAccounts(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_1", Type: "depository", Subtype: "checking", Balance: 900},
	}

	signal := DetectSavingsBehavior(accounts, nil, 180)

	assert.False(t, signal.HasData)
	assert.Equal(t, "low", signal.EmergencyFundAdequacy)
}

func TestDetectSavingsBehaviorGrowthAndCoverage(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_sav", Type: "depository", Subtype: "savings", Balance: 6000},
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 1500},
	}
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	txns := []txmodel.Transaction{
		{TransactionId: "d1", AccountId: "acc_sav", Date: date, Amount: 600},
		{TransactionId: "d2", AccountId: "acc_sav", Date: date.AddDate(0, 1, 0), Amount: 600},
		{TransactionId: "w1", AccountId: "acc_sav", Date: date.AddDate(0, 2, 0), Amount: -200},
		// Checking spend: 3000 over 180 days = 500/month.
		{TransactionId: "e1", AccountId: "acc_chk", Date: date, Amount: -3000},
	}

	signal := DetectSavingsBehavior(accounts, txns, 180)

	assert.True(t, signal.HasData)
	assert.InDelta(t, 6000.0, signal.SavingsBalance, 0.01)
	assert.InDelta(t, 1000.0, signal.NetInflow, 0.01)
	assert.InDelta(t, 5000.0, signal.BalanceStartOfWindow, 0.01)
	assert.InDelta(t, 20.0, signal.GrowthRate, 0.01)
	assert.InDelta(t, 500.0, signal.AvgMonthlyExpenses, 0.01)
	assert.InDelta(t, 12.0, signal.EmergencyFundMonths, 0.01)
	assert.Equal(t, "excellent", signal.EmergencyFundAdequacy)
}

func TestDetectSavingsBehaviorAdequacyLevels(t *testing.T) {

	tests := []struct {
		name     string
		balance  float64
		adequacy string
	}{
		{"excellent at six months", 3000, "excellent"},
		{"good at three months", 1500, "good"},
		{"building below three months", 500, "building"},
	}

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			accounts := []txmodel.Account{
				{AccountId: "acc_sav", Type: "depository", Subtype: "savings", Balance: tc.balance},
				{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 100},
			}
			// 3000 spend over 180 days = 500/month.
			txns := []txmodel.Transaction{
				{TransactionId: "e1", AccountId: "acc_chk", Date: date, Amount: -3000},
			}
			signal := DetectSavingsBehavior(accounts, txns, 180)
			assert.Equal(t, tc.adequacy, signal.EmergencyFundAdequacy)
		})
	}
}

func TestDetectSavingsBehaviorNoExpenseData(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_sav", Type: "depository", Subtype: "hsa", Balance: 2000},
	}

	signal := DetectSavingsBehavior(accounts, nil, 180)

	assert.True(t, signal.HasData)
	assert.Equal(t, 0.0, signal.EmergencyFundMonths)
	assert.Equal(t, "low", signal.EmergencyFundAdequacy)
}

func TestDetectSavingsBehaviorGrowthFromZeroStart(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_sav", Type: "depository", Subtype: "money market", Balance: 1000},
	}
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	txns := []txmodel.Transaction{
		{TransactionId: "d1", AccountId: "acc_sav", Date: date, Amount: 1000},
	}

	signal := DetectSavingsBehavior(accounts, txns, 180)

	// Window started at zero balance; growth is capped at 100%.
	assert.InDelta(t, 100.0, signal.GrowthRate, 0.01)
}
