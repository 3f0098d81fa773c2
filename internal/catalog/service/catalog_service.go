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
	"os"
	"path"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/wso2/financial-insights-service/internal/catalog/model"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"

	"github.com/wso2/financial-insights-service/internal/system/config"
)

var (
	catalog     *model.Catalog
	catalogOnce sync.Once
	catalogErr  error
)

// GetCatalog returns the content catalog, loading it from the configured
// catalog file on first use. The catalog is static for the lifetime of the
// server.
func GetCatalog() (*model.Catalog, error) {

	catalogOnce.Do(func() {
		runtime := config.GetFISRuntime()
		catalogPath := path.Join(runtime.FISHome, runtime.Config.Catalog.Path)
		catalog, catalogErr = loadCatalog(catalogPath)
	})
	if catalogErr != nil {
		return nil, errors2.NewServerError(errors2.CATALOG_LOAD, catalogErr)
	}
	return catalog, nil
}

// OverrideCatalog replaces the loaded catalog. Intended for tests.
func OverrideCatalog(c *model.Catalog) {

	catalogOnce.Do(func() {})
	catalog = c
	catalogErr = nil
}

func loadCatalog(filePath string) (*model.Catalog, error) {

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", filePath)
	}

	var c model.Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog file")
	}
	if len(c.Education) == 0 {
		return nil, errors.Errorf("catalog file %s contains no education items", filePath)
	}
	return &c, nil
}
