package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"
)

//**********************************************************
// generic handler mapping
//**********************************************************

func ReadRequestBody[T any](r *http.Request) (T, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error(err.Error())
		var t T
		return t, err
	}
	var req T
	err = json.Unmarshal(data, &req)
	if err != nil {
		slog.Error(err.Error())
		var t T
		return t, err
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func MapPost[F any](app *mux.Router, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			slog.Error("failed POST " + err.Error())
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusInternalServerError)
			return
		}
		res := handler(body)
		if res.status != http.StatusOK {
			slog.Error("failed POST " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			slog.Info("successfully finished POST")
			WriteResponse(w, res.result, res.status)
		}
	}).Methods(http.MethodPost)
}
