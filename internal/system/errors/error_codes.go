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

package errors

const errorPrefix = "FIS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	FETCH_TRANSACTIONS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching transactions.",
	}

	FETCH_ACCOUNTS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching accounts.",
	}

	WRITE_SIGNALS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while writing computed signals.",
	}

	FETCH_SIGNALS = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while fetching computed signals.",
	}

	WRITE_PERSONA_ASSIGNMENT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while writing persona assignment.",
	}

	FETCH_PERSONA_ASSIGNMENT = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching persona assignment.",
	}

	WRITE_RECOMMENDATION = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while writing recommendation.",
	}

	FETCH_RECOMMENDATIONS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching recommendations.",
	}

	CATALOG_LOAD = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while loading content catalog.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while un-marshalling JSON.",
	}

	FETCH_TRACES = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while fetching audit traces.",
	}

	DOC_STORE_INIT = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Unable to initialize document store client.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "16001",
		Message: "Invalid request.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "16002",
		Message: "Unauthorized request.",
	}

	INVALID_TIME_WINDOW = ErrorMessage{
		Code:    errorPrefix + "16003",
		Message: "Invalid time window. Allowed values are 30d and 180d.",
	}

	USER_ID_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "16004",
		Message: "user_id is required.",
	}

	PERSONA_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16005",
		Message: "Persona assignment not found.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "16006",
		Message: "Error while parsing the token.",
	}
)
