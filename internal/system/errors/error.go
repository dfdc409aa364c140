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

import (
	"fmt"
	"net/http"
)

// ErrorMessage carries the coded, human-readable description of a failure.
type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description,omitempty"`
}

// ClientError represents a caller mistake and maps to a 4xx response.
type ClientError struct {
	ErrorMessage
	StatusCode int
}

// ServerError represents an internal failure and maps to a 500 response.
type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

// NewClientError creates a client error with an explicit HTTP status code.
func NewClientError(msg ErrorMessage, statusCode int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   statusCode,
	}
}

// NewValidationError creates a client error classified as a bad request,
// carrying the given description.
func NewValidationError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   http.StatusBadRequest,
	}
}

// NewNotFoundError creates a client error classified as not found.
func NewNotFoundError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   http.StatusNotFound,
	}
}

// NewServerError wraps an internal failure with a coded message.
func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}
