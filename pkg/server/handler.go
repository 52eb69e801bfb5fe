/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gorest-automation/users/pkg/openapi"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	// The status is already on the wire, nothing useful can be done on failure.
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, openapi.MessageEnvelope{
		Data: openapi.ErrorMessage{
			Message: message,
		},
	})
}

func writeFieldErrors(w http.ResponseWriter, errs openapi.FieldErrorList) {
	writeJSON(w, http.StatusUnprocessableEntity, openapi.FieldErrorEnvelope{
		Data: errs,
	})
}

func writeUser(w http.ResponseWriter, user openapi.User) {
	writeJSON(w, http.StatusOK, openapi.UserEnvelope{
		Data: user,
	})
}

// userID parses the path parameter, anything that is not a positive integer
// cannot name a user.
func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func validateName(name string, errs openapi.FieldErrorList) openapi.FieldErrorList {
	if strings.TrimSpace(name) == "" {
		errs = append(errs, openapi.FieldError{Field: "name", Message: openapi.FieldMessageBlank})
	}

	return errs
}

func validateEmail(email string, errs openapi.FieldErrorList) openapi.FieldErrorList {
	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, openapi.FieldError{Field: "email", Message: openapi.FieldMessageBlank})
	case !openapi.ValidEmail(email):
		errs = append(errs, openapi.FieldError{Field: "email", Message: openapi.FieldMessageInvalid})
	}

	return errs
}

func validateGender(gender openapi.Gender, errs openapi.FieldErrorList) openapi.FieldErrorList {
	if gender.Validate() != nil {
		errs = append(errs, openapi.FieldError{Field: "gender", Message: openapi.FieldMessageGenderBlank})
	}

	return errs
}

func validateStatus(status openapi.Status, errs openapi.FieldErrorList) openapi.FieldErrorList {
	switch {
	case status == "":
		errs = append(errs, openapi.FieldError{Field: "status", Message: openapi.FieldMessageBlank})
	case status.Validate() != nil:
		errs = append(errs, openapi.FieldError{Field: "status", Message: openapi.FieldMessageInvalid})
	}

	return errs
}

func validateWrite(in *openapi.UserWrite) openapi.FieldErrorList {
	var errs openapi.FieldErrorList

	errs = validateName(in.Name, errs)
	errs = validateEmail(in.Email, errs)
	errs = validateGender(in.Gender, errs)
	errs = validateStatus(in.Status, errs)

	return errs
}

func validateUpdate(in *openapi.UserUpdate) openapi.FieldErrorList {
	var errs openapi.FieldErrorList

	if in.Name != nil {
		errs = validateName(*in.Name, errs)
	}

	if in.Email != nil {
		errs = validateEmail(*in.Email, errs)
	}

	if in.Gender != nil {
		errs = validateGender(*in.Gender, errs)
	}

	if in.Status != nil {
		errs = validateStatus(*in.Status, errs)
	}

	return errs
}

var errMalformedBody = openapi.FieldErrorList{
	{Field: "body", Message: openapi.FieldMessageInvalid},
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in openapi.UserWrite

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFieldErrors(w, errMalformedBody)
		return
	}

	if errs := validateWrite(&in); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	user, err := s.store.Create(in)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			writeFieldErrors(w, openapi.FieldErrorList{{Field: "email", Message: openapi.FieldMessageAlreadyTaken}})
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	s.logger.Info("user created", "id", user.Id)

	writeUser(w, user)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	user, err := s.store.Get(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	writeUser(w, user)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	if _, err := s.store.Get(id); err != nil {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	var in openapi.UserUpdate

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFieldErrors(w, errMalformedBody)
		return
	}

	if errs := validateUpdate(&in); len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	user, err := s.store.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		case errors.Is(err, ErrEmailTaken):
			writeFieldErrors(w, openapi.FieldErrorList{{Field: "email", Message: openapi.FieldMessageAlreadyTaken}})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeUser(w, user)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	if err := s.store.Delete(id); err != nil {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
		return
	}

	s.logger.Info("user deleted", "id", id)

	writeJSON(w, http.StatusOK, openapi.EmptyEnvelope{})
}
