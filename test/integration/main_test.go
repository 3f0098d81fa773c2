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

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/wso2/financial-insights-service/internal/system/config"
	"github.com/wso2/financial-insights-service/internal/system/log"
	"github.com/wso2/financial-insights-service/test/setup"
)

var testDB *setup.TestPostgres

func TestMain(m *testing.M) {
	ctx := context.Background()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		fmt.Println("Failed to resolve repository root:", err)
		os.Exit(1)
	}

	pg, err := setup.SetupTestPostgres(ctx, filepath.Join(repoRoot, "dbscripts", "postgres.sql"))
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}
	testDB = pg

	user, password, database := pg.Credentials()
	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "debug",
		},
		DataSource: config.DataSourceConfig{
			Hostname: pg.Host,
			Port:     pg.Port,
			Name:     database,
			Username: user,
			Password: password,
			SSLMode:  "disable",
		},
		Catalog: config.CatalogConfig{
			Path: filepath.Join("repository", "conf", "catalog.yaml"),
		},
	}
	if err := config.InitializeFISRuntime(repoRoot, &conf); err != nil {
		fmt.Println("Failed to initialize runtime:", err)
		os.Exit(1)
	}
	_ = log.Init("debug")

	code := m.Run()

	_ = pg.Container.Terminate(ctx)
	os.Exit(code)
}
