/*
 * Copyright (c) 2026, Vendra Labs Pvt Ltd. (https://www.vendra.io).
 *
 * Vendra Labs licenses this file to you under the Apache License,
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

const errorPrefix = "SFS-"

var (
	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Invalid request body.",
	}

	INVALID_RULE = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Smart rule validation failed.",
	}

	INVALID_RULE_TYPE = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Unknown smart rule type.",
	}

	INVALID_FILTER_FIELD = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Filter field is not allowed for this rule type.",
	}

	MISSING_REQUIRED_FILTER = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "A required filter is missing for this rule type.",
	}

	INVALID_FILTER_OPERATOR = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Unknown filter operator.",
	}

	MISSING_RANGE_BOUND = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Range operator requires a second bound.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Smart rule not found.",
	}

	PAGE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Storefront page not found.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Authentication failed.",
	}

	// Server error codes

	ADD_SMART_RULE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding smart rule.",
	}

	GET_SMART_RULE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching smart rule(s).",
	}

	UPDATE_SMART_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating smart rule.",
	}

	DELETE_SMART_RULE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting smart rule.",
	}

	EXECUTE_SMART_RULE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while executing smart rule.",
	}

	QUERY_PRODUCTS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while querying the product catalog.",
	}

	QUERY_TAXONOMY = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while querying the taxonomy.",
	}

	GET_STOREFRONT_PAGE = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching storefront page.",
	}

	UPDATE_STOREFRONT_PAGE = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while updating storefront page.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while initializing the database client.",
	}
)
