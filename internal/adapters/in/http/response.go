package http

import (
	"fmt"
	"net/http"
	"reflect"

	"laborders/internal/core/application/usecase"
	"laborders/internal/pkg/errs"
)

// Response is a transport-neutral status code and body.
// A nil Body is written as an empty response.
type Response struct {
	StatusCode int
	Body       any
}

// SuccessFormatter turns a success value into a Response.
type SuccessFormatter func(value any) Response

// OK is the default success formatter.
func OK(value any) Response {
	return Response{StatusCode: http.StatusOK, Body: value}
}

// Created is used by the creation paths.
func Created(value any) Response {
	return Response{StatusCode: http.StatusCreated, Body: value}
}

// NoContent drops the value.
func NoContent(any) Response {
	return Response{StatusCode: http.StatusNoContent}
}

// ErrorBody is the JSON body of every failure.
type ErrorBody struct {
	ErrorMessage string                `json:"errorMessage"`
	Data         []errs.FieldViolation `json:"data,omitempty"`
}

func getStatusCodes() map[errs.Kind]int {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[errs.Kind]int{
		errs.InvalidInput:  http.StatusBadRequest,
		errs.NotFound:      http.StatusNotFound,
		errs.Conflict:      http.StatusConflict,
		errs.Unauthorized:  http.StatusUnauthorized,
		errs.Unprocessable: http.StatusUnprocessableEntity,
		errs.CreateFailed:  http.StatusInternalServerError,
		errs.GetFailed:     http.StatusInternalServerError,
		errs.ListFailed:    http.StatusInternalServerError,
		errs.UpdateFailed:  http.StatusInternalServerError,
		errs.LoginFailed:   http.StatusInternalServerError,
	}
}

// ToResponse converts a use case result into a Response.
// Failures are resolved with a single lookup by kind; successes use the first
// formatter given, or OK. A nil success value is always NoContent.
func ToResponse[T any](result usecase.Result[T], formatter ...SuccessFormatter) Response {
	if failure := result.Err(); failure != nil {
		return errorResponse(failure)
	}
	if isNil(result.Value()) {
		return NoContent(nil)
	}

	format := OK
	if len(formatter) > 0 && formatter[0] != nil {
		format = formatter[0]
	}
	return format(result.Value())
}

func errorResponse(failure *errs.Error) Response {
	status, ok := getStatusCodes()[failure.Kind()]
	if !ok {
		status = http.StatusInternalServerError
	}
	return Response{
		StatusCode: status,
		Body: ErrorBody{
			ErrorMessage: failure.PublicMessage(),
			Data:         failure.Violations(),
		},
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// CheckExhaustive returns an error naming the first kind without a status code.
func CheckExhaustive() error {
	codes := getStatusCodes()
	for _, kind := range errs.Kinds() {
		if _, ok := codes[kind]; !ok {
			return fmt.Errorf("no status code for error kind %s", kind)
		}
	}
	return nil
}

// MustBeExhaustive panics when CheckExhaustive fails. Called once at startup.
func MustBeExhaustive() {
	if err := CheckExhaustive(); err != nil {
		panic(err)
	}
}
